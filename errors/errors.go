package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	// Game session taxonomy. All of these are per-chat and recoverable:
	// the caller re-issues a command, the process never stops because of them.
	ErrUnsupportedPlayerCount = fmt.Errorf("unsupported player count")
	ErrNotJoinable            = fmt.Errorf("game is not accepting players")
	ErrAlreadyJoined          = fmt.Errorf("player already joined")
	ErrNoActiveGame           = fmt.Errorf("no active game for this chat")
)
