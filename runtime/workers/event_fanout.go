package workers

import (
	"context"
	"log/slog"

	"mafia-lab/contract"
	"mafia-lab/domain/event"
)

// Ensure *EventFanout implements the contract.Worker interface at compile time.
var _ contract.Worker = (*EventFanout)(nil)

// EventFanout broadcasts game events to multiple in-process consumers.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanout is not a message broker.
//
// It is intended for side effects around the game (persistence, transport
// reactions, projections), not for the session state machine itself.
type EventFanout struct {
	log    *slog.Logger
	events chan event.GameEvent
	sinks  []contract.EventSink
}

func NewEventFanout(log *slog.Logger, events chan event.GameEvent) *EventFanout {
	return &EventFanout{log: log, events: events}
}

// Add registers sinks. Call before the worker starts running.
func (w *EventFanout) Add(sinks []contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.fanout(ctx, evt)
		}
	}
}

// fanout One sink for each event
func (w *EventFanout) fanout(ctx context.Context, evt event.GameEvent) {
	for _, sink := range w.sinks {
		if err := sink.Consume(ctx, evt); err != nil {
			w.log.Error("Sink failed to consume event",
				"chat_id", evt.ChatID(),
				"error", err)
		}
	}
}
