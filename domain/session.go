package domain

import (
	"math/rand/v2"

	"mafia-lab/errors"
)

// Phase is the session's position in the Idle/Joining/Assigning/Closed
// state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseJoining
	PhaseAssigning
	PhaseClosed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseJoining:
		return "joining"
	case PhaseAssigning:
		return "assigning"
	case PhaseClosed:
		return "closed"
	}
	return "unknown"
}

// User-facing texts produced by the session. Localization, if any, belongs
// to the transport layer.
const (
	TextGameStarted    = "the game has begun, send \"playing\" if you are in"
	TextYouAreIn       = "you are in"
	TextAlreadyPlaying = "you are already playing"
	TextBadPlayerCount = "not enough players or exceeds the allowed number"
	TextGameOver       = "the game is over"
)

// Session is one chat's run of the game, from start to role assignment.
// It is not safe for concurrent use; the registry serializes access per chat.
type Session struct {
	chat   ChatID
	phase  Phase
	roster *Roster
	dealt  []Role

	// pick returns a uniform index in [0,n). Overridable in tests.
	pick func(n int) int
}

func NewSession(chat ChatID) *Session {
	return &Session{
		chat:   chat,
		phase:  PhaseIdle,
		roster: NewRoster(),
		pick:   rand.IntN,
	}
}

func (s *Session) Chat() ChatID { return s.chat }

func (s *Session) Phase() Phase { return s.phase }

// Players exposes the roster in insertion order, with roles filled in once
// the session reached the Assigning phase.
func (s *Session) Players() []Player { return s.roster.Players() }

// DealtRoles returns the multiset chosen at assignment time, nil before that.
func (s *Session) DealtRoles() []Role {
	if s.dealt == nil {
		return nil
	}
	out := make([]Role, len(s.dealt))
	copy(out, s.dealt)
	return out
}

// Start opens a fresh joining phase. Valid from any phase: a new start
// always resets the roster, discarding any game in progress.
func (s *Session) Start() []Delivery {
	s.roster = NewRoster()
	s.dealt = nil
	s.phase = PhaseJoining
	return []Delivery{BroadcastTo(s.chat, TextGameStarted)}
}

// Join appends a player during the Joining phase.
// Outside that phase it reports ErrNotJoinable and produces nothing; a
// duplicate join reports ErrAlreadyJoined with the corresponding message
// and leaves the roster unchanged.
func (s *Session) Join(p Player) ([]Delivery, error) {
	if s.phase != PhaseJoining {
		return nil, errors.ErrNotJoinable
	}
	if err := s.roster.Append(p); err != nil {
		return []Delivery{BroadcastTo(s.chat, TextAlreadyPlaying)}, err
	}
	return []Delivery{BroadcastTo(s.chat, TextYouAreIn)}, nil
}

// FinishJoining deals the roles. With a player count outside [3,11] it
// broadcasts a single refusal and stays in Joining so the chat can retry.
// On success every player receives exactly one private delivery carrying
// their bare role token, and the phase advances to Assigning.
func (s *Session) FinishJoining() ([]Delivery, error) {
	if s.phase != PhaseJoining {
		return nil, errors.ErrNoActiveGame
	}

	count := s.roster.Size()
	if count < MinPlayers || count > MaxPlayers {
		return []Delivery{BroadcastTo(s.chat, TextBadPlayerCount)}, nil
	}

	dealt, err := RolesFor(count)
	if err != nil {
		return nil, err
	}

	// Uniform draw without replacement: pick a random index in the working
	// copy and remove that single instance. Removing by value would be
	// wrong here, the multiset holds duplicates.
	remaining := make([]Role, len(dealt))
	copy(remaining, dealt)

	deliveries := make([]Delivery, 0, count)
	for i := range s.roster.players {
		j := s.pick(len(remaining))
		role := remaining[j]
		remaining[j] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		s.roster.players[i].Role = role
		deliveries = append(deliveries, PrivateTo(s.roster.players[i].ID, string(role)))
	}

	s.dealt = dealt
	s.phase = PhaseAssigning
	return deliveries, nil
}

// Close ends the session explicitly. The next Start reopens it.
func (s *Session) Close() []Delivery {
	s.phase = PhaseClosed
	return []Delivery{BroadcastTo(s.chat, TextGameOver)}
}
