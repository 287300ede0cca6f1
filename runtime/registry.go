// Package runtime routes commands to game sessions and fans resulting
// events out to sinks. It orchestrates the system without containing
// business logic or domain rules.
package runtime

import (
	"sync"

	"mafia-lab/domain"
)

type entry struct {
	mu      sync.Mutex
	session *domain.Session
}

// Registry maps chat ids to game sessions. Each entry carries its own
// mutex so that operations on one chat fully serialize while different
// chats proceed independently; the registry-wide lock is only held for
// the insert-if-absent step.
type Registry struct {
	mu      sync.RWMutex
	entries map[domain.ChatID]*entry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[domain.ChatID]*entry)}
}

// WithSession runs fn under the chat's entry lock, creating an idle
// session on first access.
func (r *Registry) WithSession(chat domain.ChatID, fn func(*domain.Session)) {
	e := r.getOrCreate(chat)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
}

// WithExisting runs fn under the chat's entry lock only when a session
// already exists for that chat. It reports whether the chat was known,
// which is how "no game was ever started here" is detected.
func (r *Registry) WithExisting(chat domain.ChatID, fn func(*domain.Session)) bool {
	r.mu.RLock()
	e, ok := r.entries[chat]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.session)
	return true
}

// Len reports how many chats ever started a session. Entries are never
// expired; an abandoned Joining phase simply persists.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) getOrCreate(chat domain.ChatID) *entry {
	r.mu.RLock()
	e, ok := r.entries[chat]
	r.mu.RUnlock()
	if ok {
		return e
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok = r.entries[chat]; ok {
		return e
	}
	e = &entry{session: domain.NewSession(chat)}
	r.entries[chat] = e
	return e
}
