package gateway

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"mafia-lab/contract"
	"mafia-lab/domain/event"
)

// WarnText is the private reprimand sent to the author of a censored message.
const WarnText = "don't do that again!"

var _ contract.EventSink = (*CensorSink)(nil)

// CensorSink reacts to MessageCensored events: the offending message is
// deleted from the group and its author privately warned.
type CensorSink struct {
	log    *slog.Logger
	client TelegramClient
}

func NewCensorSink(log *slog.Logger, client TelegramClient) *CensorSink {
	return &CensorSink{log: log, client: client}
}

func (s *CensorSink) Consume(_ context.Context, e event.GameEvent) error {
	evt, ok := e.(event.MessageCensored)
	if !ok {
		return nil
	}

	if _, err := s.client.Request(tgbotapi.NewDeleteMessage(evt.Chat, evt.MessageID)); err != nil {
		s.log.Error("Failed to delete censored message",
			"chat_id", evt.Chat,
			"message_id", evt.MessageID,
			"error", err)
	}
	if _, err := s.client.Send(tgbotapi.NewMessage(evt.User, WarnText)); err != nil {
		s.log.Error("Failed to warn author", "user_id", evt.User, "error", err)
	}
	return nil
}
