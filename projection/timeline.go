// Package projection builds local views from observed game events.
// Handles ordering and aggregation; does not emit events itself.
package projection

import (
	"context"
	"sync"

	"mafia-lab/domain"
	"mafia-lab/domain/event"
)

// Entry is one observed step of a chat's game.
type Entry struct {
	Kind    string
	Detail  string
	Players int
}

// Timeline keeps a per-chat history of game lifecycle steps. It is an
// in-process view for tooling and debugging, never consulted by the
// session state machine.
type Timeline struct {
	mu    sync.RWMutex
	chats map[domain.ChatID][]Entry
}

func NewTimeline() *Timeline {
	return &Timeline{chats: make(map[domain.ChatID][]Entry)}
}

func (t *Timeline) Consume(_ context.Context, e event.GameEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch evt := e.(type) {
	case event.GameStarted:
		t.append(e.ChatID(), Entry{Kind: "started"})
	case event.PlayerJoined:
		t.append(e.ChatID(), Entry{Kind: "joined", Detail: evt.DisplayName, Players: evt.RosterSize})
	case event.RolesAssigned:
		t.append(e.ChatID(), Entry{Kind: "assigned", Players: len(evt.Assignments)})
	case event.GameClosed:
		t.append(e.ChatID(), Entry{Kind: "closed"})
	}
	return nil
}

// Entries returns the chat's history in observation order.
func (t *Timeline) Entries(chat domain.ChatID) []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, len(t.chats[chat]))
	copy(out, t.chats[chat])
	return out
}

func (t *Timeline) append(chat domain.ChatID, e Entry) {
	t.chats[chat] = append(t.chats[chat], e)
}
