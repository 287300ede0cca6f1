// Package gateway is the Telegram side of the bot: it recognizes commands
// and message patterns, turns them into core commands, and sends back the
// delivery instructions the core returns. No game rules live here.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/go-playground/validator/v10"

	"mafia-lab/contract"
	"mafia-lab/domain"
	"mafia-lab/domain/event"
	"mafia-lab/membership"
)

// TelegramClient is the slice of *tgbotapi.BotAPI the gateway needs.
type TelegramClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

var _ contract.Worker = (*Gateway)(nil)

type Gateway struct {
	log      *slog.Logger
	client   TelegramClient
	game     contract.IGameService
	tracker  *membership.Tracker
	joinWord string
	validate *validator.Validate
}

func New(log *slog.Logger, client TelegramClient, game contract.IGameService,
	tracker *membership.Tracker, joinWord string) *Gateway {
	return &Gateway{
		log:      log,
		client:   client,
		game:     game,
		tracker:  tracker,
		joinWord: joinWord,
		validate: validator.New(),
	}
}

// Run long-polls Telegram until the context is canceled.
func (g *Gateway) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	cfg.AllowedUpdates = []string{
		tgbotapi.UpdateTypeMessage,
		tgbotapi.UpdateTypeMyChatMember,
		tgbotapi.UpdateTypeChatMember,
	}

	updates := g.client.GetUpdatesChan(cfg)
	for {
		select {
		case <-ctx.Done():
			g.client.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			g.HandleUpdate(update)
		}
	}
}

// HandleUpdate routes one Telegram update. Exposed for tests.
func (g *Gateway) HandleUpdate(update tgbotapi.Update) {
	switch {
	case update.MyChatMember != nil:
		g.trackBotMembership(*update.MyChatMember)
	case update.ChatMember != nil:
		g.greetMember(*update.ChatMember)
	case update.Message != nil:
		g.handleMessage(*update.Message)
	}
}

func (g *Gateway) handleMessage(msg tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil {
		return
	}

	if msg.IsCommand() {
		g.handleCommand(msg)
		return
	}

	if strings.Contains(msg.Text, g.joinWord) {
		g.handleJoin(msg)
		return
	}

	if msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() {
		g.game.ScanMessage(event.GroupMessage{
			Chat:      msg.Chat.ID,
			User:      msg.From.ID,
			MessageID: msg.MessageID,
			Text:      msg.Text,
			At:        msg.Time(),
		})
	}
}

func (g *Gateway) handleCommand(msg tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		g.send(g.game.StartGame(domain.StartGameCommand{Chat: msg.Chat.ID}))
	case "end_join":
		deliveries, err := g.game.FinishJoining(domain.FinishJoiningCommand{Chat: msg.Chat.ID})
		if err != nil {
			// No game was ever started here: stay silent, like the chat
			// expects from an unknown command.
			g.log.Debug("end_join ignored", "chat_id", msg.Chat.ID, "reason", err)
			return
		}
		g.send(deliveries)
	case "stop":
		deliveries, err := g.game.EndGame(domain.EndGameCommand{Chat: msg.Chat.ID})
		if err != nil {
			g.log.Debug("stop ignored", "chat_id", msg.Chat.ID, "reason", err)
			return
		}
		g.send(deliveries)
	}
}

func (g *Gateway) handleJoin(msg tgbotapi.Message) {
	cmd := domain.JoinGameCommand{
		Chat:        msg.Chat.ID,
		User:        msg.From.ID,
		DisplayName: displayName(msg.From),
	}
	if err := g.validate.Struct(cmd); err != nil {
		g.log.Warn("Rejecting malformed join", "chat_id", msg.Chat.ID, "error", err)
		return
	}
	g.send(g.game.JoinGame(cmd))
}

func (g *Gateway) trackBotMembership(upd tgbotapi.ChatMemberUpdated) {
	was, is := statusChange(upd)
	g.tracker.Update(membership.Change{
		Chat:      upd.Chat.ID,
		Kind:      chatKind(upd.Chat),
		ChatTitle: upd.Chat.Title,
		Actor:     displayName(&upd.From),
		WasMember: was,
		IsMember:  is,
	})
}

func (g *Gateway) greetMember(upd tgbotapi.ChatMemberUpdated) {
	was, is := statusChange(upd)
	member := displayName(upd.NewChatMember.User)
	actor := displayName(&upd.From)
	g.send(membership.Greetings(upd.Chat.ID, member, actor, was, is))
}

// send delivers the core's instructions through the Telegram API.
// Private deliveries go to the user's own chat, whose id equals the user id.
func (g *Gateway) send(deliveries []domain.Delivery) {
	for _, d := range deliveries {
		target := int64(d.Chat)
		if d.Kind == domain.TargetUser {
			target = int64(d.User)
		}
		if _, err := g.client.Send(tgbotapi.NewMessage(target, d.Text)); err != nil {
			g.log.Error("Failed to send delivery", "target", target, "error", err)
		}
	}
}

func statusChange(upd tgbotapi.ChatMemberUpdated) (wasMember, isMember bool) {
	return hasMembership(upd.OldChatMember), hasMembership(upd.NewChatMember)
}

func hasMembership(m tgbotapi.ChatMember) bool {
	switch m.Status {
	case "member", "creator", "administrator":
		return true
	case "restricted":
		return m.IsMember
	}
	return false
}

func chatKind(chat tgbotapi.Chat) membership.ChatKind {
	switch {
	case chat.IsGroup() || chat.IsSuperGroup():
		return membership.KindGroup
	case chat.IsChannel():
		return membership.KindChannel
	}
	return membership.KindPrivate
}

func displayName(u *tgbotapi.User) string {
	if u == nil {
		return ""
	}
	if name := strings.TrimSpace(fmt.Sprintf("%s %s", u.FirstName, u.LastName)); name != "" {
		return name
	}
	return u.UserName
}
