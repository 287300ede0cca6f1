package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mafia-lab/errors"
)

func joinPlayers(t *testing.T, s *Session, count int) {
	t.Helper()
	req := require.New(t)
	for i := 1; i <= count; i++ {
		_, err := s.Join(Player{ID: UserID(i), DisplayName: "Player"})
		req.NoError(err)
	}
}

func TestSession_StartOpensJoiningFromAnyPhase(t *testing.T) {
	req := require.New(t)
	s := NewSession(100)
	req.Equal(PhaseIdle, s.Phase())

	// From idle
	deliveries := s.Start()
	req.Equal(PhaseJoining, s.Phase())
	req.Len(deliveries, 1)
	req.Equal(TargetChat, deliveries[0].Kind)
	req.Equal(ChatID(100), deliveries[0].Chat)
	req.Equal(TextGameStarted, deliveries[0].Text)

	// A restart mid-joining destroys the roster
	joinPlayers(t, s, 4)
	s.Start()
	req.Equal(PhaseJoining, s.Phase())
	req.Empty(s.Players())

	// And a restart after assignment resets everything
	joinPlayers(t, s, 3)
	_, err := s.FinishJoining()
	req.NoError(err)
	req.Equal(PhaseAssigning, s.Phase())
	s.Start()
	req.Equal(PhaseJoining, s.Phase())
	req.Empty(s.Players())
	req.Nil(s.DealtRoles())
}

func TestSession_JoinOutsideJoiningIsSilentlyIgnored(t *testing.T) {
	req := require.New(t)
	s := NewSession(100)

	deliveries, err := s.Join(Player{ID: 1, DisplayName: "Ann"})
	req.ErrorIs(err, errors.ErrNotJoinable)
	req.Empty(deliveries)
	req.Empty(s.Players())
}

func TestSession_DuplicateJoin(t *testing.T) {
	req := require.New(t)
	s := NewSession(100)
	s.Start()

	deliveries, err := s.Join(Player{ID: 1, DisplayName: "Ann"})
	req.NoError(err)
	req.Len(deliveries, 1)
	req.Equal(TextYouAreIn, deliveries[0].Text)

	// Joining twice leaves the roster unchanged, both times.
	for i := 0; i < 2; i++ {
		deliveries, err = s.Join(Player{ID: 1, DisplayName: "Ann"})
		req.ErrorIs(err, errors.ErrAlreadyJoined)
		req.Len(deliveries, 1)
		req.Equal(TextAlreadyPlaying, deliveries[0].Text)
		req.Len(s.Players(), 1)
	}
}

func TestSession_FinishJoiningRefusesBadPlayerCount(t *testing.T) {
	req := require.New(t)
	s := NewSession(100)
	s.Start()
	joinPlayers(t, s, 2)

	deliveries, err := s.FinishJoining()
	req.NoError(err)
	req.Len(deliveries, 1)
	req.Equal(TargetChat, deliveries[0].Kind)
	req.Equal(TextBadPlayerCount, deliveries[0].Text)

	// Phase unchanged: the chat can add a player and retry.
	req.Equal(PhaseJoining, s.Phase())
	_, err = s.Join(Player{ID: 3, DisplayName: "Cid"})
	req.NoError(err)

	deliveries, err = s.FinishJoining()
	req.NoError(err)
	req.Len(deliveries, 3)
	req.Equal(PhaseAssigning, s.Phase())
}

func TestSession_FinishJoiningRefusesTooManyPlayers(t *testing.T) {
	req := require.New(t)
	s := NewSession(100)
	s.Start()
	joinPlayers(t, s, 12)

	deliveries, err := s.FinishJoining()
	req.NoError(err)
	req.Len(deliveries, 1)
	req.Equal(TextBadPlayerCount, deliveries[0].Text)
	req.Equal(PhaseJoining, s.Phase())
}

func TestSession_FinishJoiningDealsEveryAllocatedRoleExactlyOnce(t *testing.T) {
	req := require.New(t)

	for count := 3; count <= 11; count++ {
		s := NewSession(100)
		s.Start()
		joinPlayers(t, s, count)

		deliveries, err := s.FinishJoining()
		req.NoError(err)
		req.Len(deliveries, count)

		// Every player got exactly one private delivery with their role.
		seen := make(map[UserID]Role)
		for _, d := range deliveries {
			req.Equal(TargetUser, d.Kind)
			_, dup := seen[d.User]
			req.False(dup, "player %d notified twice", d.User)
			seen[d.User] = Role(d.Text)
		}

		// The assigned multiset equals the allocated multiset: nothing
		// created, lost, or duplicated by the draw.
		expected, err := RolesFor(count)
		req.NoError(err)
		assigned := make([]Role, 0, count)
		for _, p := range s.Players() {
			req.Equal(seen[p.ID], p.Role)
			assigned = append(assigned, p.Role)
		}
		req.Equal(countRoles(expected), countRoles(assigned), "count=%d", count)
	}
}

func TestSession_DrawRemovesSingleInstanceNotAllDuplicates(t *testing.T) {
	req := require.New(t)
	s := NewSession(100)
	s.Start()
	joinPlayers(t, s, 6) // two mafia in the multiset

	// Always pick index 0: with value-based removal the duplicate mafia
	// entries would collapse and the deal would run out of roles.
	s.pick = func(int) int { return 0 }

	deliveries, err := s.FinishJoining()
	req.NoError(err)
	req.Len(deliveries, 6)

	assigned := make([]Role, 0, 6)
	for _, p := range s.Players() {
		assigned = append(assigned, p.Role)
	}
	counts := countRoles(assigned)
	req.Equal(2, counts[RoleMafia])
	req.Equal(1, counts[RoleDetective])
	req.Equal(3, counts[RoleVillager])
}

func TestSession_JoinAfterAssignmentIsRejected(t *testing.T) {
	req := require.New(t)
	s := NewSession(100)
	s.Start()
	joinPlayers(t, s, 3)

	_, err := s.FinishJoining()
	req.NoError(err)
	req.Equal(PhaseAssigning, s.Phase())

	deliveries, err := s.Join(Player{ID: 99, DisplayName: "Late"})
	req.ErrorIs(err, errors.ErrNotJoinable)
	req.Empty(deliveries)
	req.Len(s.Players(), 3)
}

func TestSession_FinishJoiningOutsideJoiningPhase(t *testing.T) {
	req := require.New(t)
	s := NewSession(100)

	// Idle: nothing to finish.
	_, err := s.FinishJoining()
	req.ErrorIs(err, errors.ErrNoActiveGame)

	// Assigning is effectively terminal: a second finish is refused.
	s.Start()
	joinPlayers(t, s, 3)
	_, err = s.FinishJoining()
	req.NoError(err)
	_, err = s.FinishJoining()
	req.ErrorIs(err, errors.ErrNoActiveGame)
}

func TestSession_CloseThenRestart(t *testing.T) {
	req := require.New(t)
	s := NewSession(100)
	s.Start()
	joinPlayers(t, s, 3)

	deliveries := s.Close()
	req.Equal(PhaseClosed, s.Phase())
	req.Len(deliveries, 1)
	req.Equal(TextGameOver, deliveries[0].Text)

	_, err := s.Join(Player{ID: 9, DisplayName: "Late"})
	req.ErrorIs(err, errors.ErrNotJoinable)

	s.Start()
	req.Equal(PhaseJoining, s.Phase())
	req.Empty(s.Players())
}
