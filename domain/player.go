// Package domain contains core concepts of the game session manager.
// No runtime, network, or UI logic should be added here.
package domain

// ChatID identifies one group chat. One game session exists per chat at most.
type ChatID int64

// UserID identifies a player inside the chat scope.
type UserID int64

// Player is created when a user joins during the Joining phase.
// The display name is used for messaging only; identity is the user id.
type Player struct {
	ID          UserID
	DisplayName string
	Role        Role // empty until roles are dealt
}
