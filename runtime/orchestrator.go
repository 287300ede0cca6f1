package runtime

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"mafia-lab/contract"
	"mafia-lab/domain"
	"mafia-lab/domain/event"
	"mafia-lab/errors"
	"mafia-lab/moderation"
	"mafia-lab/runtime/workers"
)

//go:embed banned/*.txt
var bannedFolder embed.FS

// Orchestrator applies inbound commands to the per-chat sessions and
// publishes the resulting game events. Delivery instructions go straight
// back to the caller; events flow through the fanout worker to the sinks.
type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	permanentSinks []contract.EventSink
	rawMessages    chan event.GroupMessage
	gameEvents     chan event.GameEvent

	charReplacement   rune
	telemetryInterval time.Duration
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, bufferSize int,
	charReplacement rune, telemetryInterval time.Duration) *Orchestrator {
	return &Orchestrator{
		log:               log,
		supervisor:        supervisor,
		registry:          registry,
		rawMessages:       make(chan event.GroupMessage, bufferSize),
		gameEvents:        make(chan event.GameEvent, bufferSize),
		charReplacement:   charReplacement,
		telemetryInterval: telemetryInterval,
	}
}

func (o *Orchestrator) AddSinks(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// StartGame opens (or reopens) the joining phase for a chat. A fresh
// session is created on the chat's first start; any game in progress,
// closed or not, is reset.
func (o *Orchestrator) StartGame(cmd domain.StartGameCommand) []domain.Delivery {
	var deliveries []domain.Delivery
	o.registry.WithSession(cmd.ChatID(), func(s *domain.Session) {
		deliveries = s.Start()
	})
	o.publish(event.GameStarted{Chat: cmd.Chat, At: time.Now().UTC()})
	return deliveries
}

// JoinGame adds a player to a chat's roster. A chat that never started a
// game, or one past its joining phase, ignores the join silently.
func (o *Orchestrator) JoinGame(cmd domain.JoinGameCommand) []domain.Delivery {
	var (
		deliveries []domain.Delivery
		rosterSize int
		joined     bool
	)
	known := o.registry.WithExisting(cmd.ChatID(), func(s *domain.Session) {
		var err error
		deliveries, err = s.Join(domain.Player{
			ID:          domain.UserID(cmd.User),
			DisplayName: cmd.DisplayName,
		})
		joined = err == nil
		rosterSize = len(s.Players())
	})
	if !known {
		return nil
	}
	if joined {
		o.publish(event.PlayerJoined{
			Chat:        cmd.Chat,
			User:        cmd.User,
			DisplayName: cmd.DisplayName,
			RosterSize:  rosterSize,
			At:          time.Now().UTC(),
		})
	}
	return deliveries
}

// FinishJoining closes the roster and deals the roles. ErrNoActiveGame is
// returned when the chat never started a game or is not in its joining
// phase; the caller treats it as a no-op.
func (o *Orchestrator) FinishJoining(cmd domain.FinishJoiningCommand) ([]domain.Delivery, error) {
	var (
		deliveries []domain.Delivery
		err        error
		assigned   []domain.Player
	)
	known := o.registry.WithExisting(cmd.ChatID(), func(s *domain.Session) {
		deliveries, err = s.FinishJoining()
		if err == nil && s.Phase() == domain.PhaseAssigning {
			assigned = s.Players()
		}
	})
	if !known {
		return nil, errors.ErrNoActiveGame
	}
	if err != nil {
		return nil, err
	}
	if assigned != nil {
		o.publish(event.RolesAssigned{
			ID:   uuid.New(),
			Chat: cmd.Chat,
			Assignments: lo.Map(assigned, func(p domain.Player, _ int) event.Assignment {
				return event.Assignment{
					User:        int64(p.ID),
					DisplayName: p.DisplayName,
					Role:        p.Role,
				}
			}),
			At: time.Now().UTC(),
		})
	}
	return deliveries, nil
}

// EndGame closes a chat's session explicitly.
func (o *Orchestrator) EndGame(cmd domain.EndGameCommand) ([]domain.Delivery, error) {
	var deliveries []domain.Delivery
	known := o.registry.WithExisting(cmd.ChatID(), func(s *domain.Session) {
		deliveries = s.Close()
	})
	if !known {
		return nil, errors.ErrNoActiveGame
	}
	o.publish(event.GameClosed{Chat: cmd.Chat, At: time.Now().UTC()})
	return deliveries, nil
}

// ScanMessage hands a plain group message to the moderation worker.
// Best effort: a full channel drops the message rather than blocking the
// transport loop.
func (o *Orchestrator) ScanMessage(msg event.GroupMessage) {
	select {
	case o.rawMessages <- msg:
	default:
		o.log.Warn(fmt.Sprintf("Moderation channel full for chat %d, dropping message", msg.Chat))
	}
}

// Start initiates the orchestrator by preparing all components (workers,
// moderation, telemetry) and then starting the supervisor. Heavy setup
// (file loading, Aho-Corasick build) happens before the short lock.
func (o *Orchestrator) Start(ctx context.Context) error {
	moderationWorker, err := o.prepareModeration("banned", o.charReplacement)
	if err != nil {
		return err
	}

	fanout := workers.NewEventFanout(o.log, o.gameEvents)
	telemetry := workers.NewTelemetryWorker(o.log, o.registry, o.telemetryInterval)

	o.mu.Lock()
	fanout.Add(o.permanentSinks)
	o.supervisor.Add(moderationWorker, fanout, telemetry)
	o.mu.Unlock()

	go o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) Stop() {
	o.supervisor.Stop()
}

func (o *Orchestrator) publish(evt event.GameEvent) {
	select {
	case o.gameEvents <- evt:
	default:
		o.log.Warn(fmt.Sprintf("Game event channel full for chat %d, dropping event", evt.ChatID()))
	}
}

// prepareModeration loads the embedded banned-word list and builds the
// moderation worker around it.
func (o *Orchestrator) prepareModeration(dir string, charReplacement rune) (*workers.ModerationWorker, error) {
	files, err := bannedFolder.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var words []string
	for _, f := range files {
		raw, err := bannedFolder.ReadFile(dir + "/" + f.Name())
		if err != nil {
			return nil, err
		}
		for _, line := range strings.Split(string(raw), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				words = append(words, line)
			}
		}
	}
	if len(words) == 0 {
		return nil, errors.ErrEmptyWords
	}

	moderator, err := moderation.NewModerator(words, charReplacement, o.log)
	if err != nil {
		return nil, err
	}
	return workers.NewModerationWorker(moderator, o.rawMessages, o.gameEvents, o.log), nil
}
