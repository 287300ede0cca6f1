package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"

	"mafia-lab/contract"
	"mafia-lab/domain/event"
	"mafia-lab/moderation"
)

var _ contract.Worker = (*ModerationWorker)(nil)

// ModerationWorker screens plain group messages against the banned-word
// list. A clean message produces nothing; a match produces a
// MessageCensored event for the transport to act on (delete + warn).
type ModerationWorker struct {
	moderator moderation.Moderator
	messages  chan event.GroupMessage
	events    chan event.GameEvent
	log       *slog.Logger
}

func NewModerationWorker(moderator moderation.Moderator,
	messages chan event.GroupMessage, events chan event.GameEvent,
	log *slog.Logger) *ModerationWorker {
	return &ModerationWorker{
		moderator: moderator,
		messages:  messages,
		events:    events,
		log:       log,
	}
}

func (w *ModerationWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case msg, ok := <-w.messages:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			censored, found := w.censor(msg)
			if len(found) == 0 {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.events <- censored:
			}
		}
	}
}

func (w *ModerationWorker) censor(msg event.GroupMessage) (event.MessageCensored, []string) {
	info := whatlanggo.Detect(msg.Text)
	langCode := info.Lang.Iso6391()

	sanitized, foundWords := w.moderator.Censor(msg.Text)
	if len(foundWords) > 0 {
		w.log.Warn("Banned words detected",
			"chat_id", msg.Chat,
			"author", msg.User,
			"lang", langCode,
			"words", foundWords)
	}

	return event.MessageCensored{
		Chat:      msg.Chat,
		User:      msg.User,
		MessageID: msg.MessageID,
		Censored:  sanitized,
		Words:     foundWords,
		Lang:      langCode,
		At:        time.Now().UTC(),
	}, foundWords
}
