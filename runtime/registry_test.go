package runtime

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"mafia-lab/domain"
)

func TestRegistry_WithSessionCreatesOnFirstAccess(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	req.Zero(registry.Len())

	var phase domain.Phase
	registry.WithSession(100, func(s *domain.Session) {
		phase = s.Phase()
	})

	req.Equal(domain.PhaseIdle, phase)
	req.Equal(1, registry.Len())

	// Second access reuses the same session.
	registry.WithSession(100, func(s *domain.Session) {
		s.Start()
	})
	registry.WithSession(100, func(s *domain.Session) {
		phase = s.Phase()
	})
	req.Equal(domain.PhaseJoining, phase)
	req.Equal(1, registry.Len())
}

func TestRegistry_WithExistingReportsUnknownChat(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	called := false
	known := registry.WithExisting(100, func(*domain.Session) { called = true })
	req.False(known)
	req.False(called)

	registry.WithSession(100, func(*domain.Session) {})
	known = registry.WithExisting(100, func(*domain.Session) { called = true })
	req.True(known)
	req.True(called)
}

func TestRegistry_ChatsAreIsolated(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	registry.WithSession(100, func(s *domain.Session) { s.Start() })
	registry.WithSession(200, func(*domain.Session) {})

	var phase100, phase200 domain.Phase
	registry.WithSession(100, func(s *domain.Session) { phase100 = s.Phase() })
	registry.WithSession(200, func(s *domain.Session) { phase200 = s.Phase() })

	req.Equal(domain.PhaseJoining, phase100)
	req.Equal(domain.PhaseIdle, phase200)
	req.Equal(2, registry.Len())
}

// Concurrent joins on one chat must serialize: every join lands and the
// roster size is exact.
func TestRegistry_ConcurrentJoinsSameChat(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	registry.WithSession(100, func(s *domain.Session) { s.Start() })

	const joiners = 50
	var wg sync.WaitGroup
	for i := 1; i <= joiners; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			registry.WithSession(100, func(s *domain.Session) {
				_, _ = s.Join(domain.Player{ID: domain.UserID(id), DisplayName: "p"})
			})
		}(int64(i))
	}
	wg.Wait()

	registry.WithSession(100, func(s *domain.Session) {
		req.Len(s.Players(), joiners)
	})
}

// getOrCreate races on a fresh chat id must still produce exactly one entry.
func TestRegistry_ConcurrentGetOrCreate(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	const chats = 10
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			registry.WithSession(domain.ChatID(i%chats), func(*domain.Session) {})
		}(i)
	}
	wg.Wait()

	req.Equal(chats, registry.Len())
}
