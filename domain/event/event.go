package event

import (
	"time"

	"github.com/google/uuid"

	"mafia-lab/domain"
)

type GameEvent interface {
	ChatID() domain.ChatID
}

type GameStarted struct {
	Chat int64
	At   time.Time
}

func (e GameStarted) ChatID() domain.ChatID { return domain.ChatID(e.Chat) }

type PlayerJoined struct {
	Chat        int64
	User        int64
	DisplayName string
	RosterSize  int
	At          time.Time
}

func (e PlayerJoined) ChatID() domain.ChatID { return domain.ChatID(e.Chat) }

// Assignment is one player's dealt role inside a RolesAssigned event.
type Assignment struct {
	User        int64
	DisplayName string
	Role        domain.Role
}

type RolesAssigned struct {
	ID          uuid.UUID
	Chat        int64
	Assignments []Assignment
	At          time.Time
}

func (e RolesAssigned) ChatID() domain.ChatID { return domain.ChatID(e.Chat) }

type GameClosed struct {
	Chat int64
	At   time.Time
}

func (e GameClosed) ChatID() domain.ChatID { return domain.ChatID(e.Chat) }

// GroupMessage is a plain chat message handed to the moderation pipeline.
type GroupMessage struct {
	Chat      int64
	User      int64
	MessageID int
	Text      string
	At        time.Time
}

func (e GroupMessage) ChatID() domain.ChatID { return domain.ChatID(e.Chat) }

// MessageCensored reports a group message that matched the banned-word list.
// The transport is expected to delete the message and warn its author.
type MessageCensored struct {
	Chat      int64
	User      int64
	MessageID int
	Censored  string
	Words     []string
	Lang      string
	At        time.Time
}

func (e MessageCensored) ChatID() domain.ChatID { return domain.ChatID(e.Chat) }
