// Package membership keeps the bot's own view of where it lives: which
// private chats, groups, and channels currently have it as a member.
// Pure bookkeeping; nothing here touches the transport.
package membership

import (
	"fmt"
	"log/slog"
	"sync"
)

type ChatKind int

const (
	KindPrivate ChatKind = iota
	KindGroup
	KindChannel
)

// Change describes one bot-membership transition in a chat, as reported by
// the transport.
type Change struct {
	Chat      int64
	Kind      ChatKind
	ChatTitle string
	Actor     string // display name of the user who caused the change
	WasMember bool
	IsMember  bool
}

type set map[int64]struct{}

// Tracker is safe for concurrent use.
type Tracker struct {
	mu       sync.RWMutex
	log      *slog.Logger
	users    set
	groups   set
	channels set
}

func NewTracker(log *slog.Logger) *Tracker {
	return &Tracker{
		log:      log,
		users:    make(set),
		groups:   make(set),
		channels: make(set),
	}
}

// Update applies a membership transition. Transitions that change nothing
// (member to member, gone to gone) are ignored.
func (t *Tracker) Update(c Change) {
	if c.WasMember == c.IsMember {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	target := t.setFor(c.Kind)
	if c.IsMember {
		target[c.Chat] = struct{}{}
	} else {
		delete(target, c.Chat)
	}
	t.log.Info(fmt.Sprintf("%s %s the bot in %s", c.Actor, verb(c.IsMember), describe(c)))
}

func (t *Tracker) Users() int    { return t.count(KindPrivate) }
func (t *Tracker) Groups() int   { return t.count(KindGroup) }
func (t *Tracker) Channels() int { return t.count(KindChannel) }

// InGroup reports whether the bot currently sits in the given group.
func (t *Tracker) InGroup(chat int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.groups[chat]
	return ok
}

func (t *Tracker) count(kind ChatKind) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.setFor(kind))
}

func (t *Tracker) setFor(kind ChatKind) set {
	switch kind {
	case KindGroup:
		return t.groups
	case KindChannel:
		return t.channels
	}
	return t.users
}

func verb(isMember bool) string {
	if isMember {
		return "added"
	}
	return "removed"
}

func describe(c Change) string {
	switch c.Kind {
	case KindGroup:
		return fmt.Sprintf("group %q", c.ChatTitle)
	case KindChannel:
		return fmt.Sprintf("channel %q", c.ChatTitle)
	}
	return "a private chat"
}
