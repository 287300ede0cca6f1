package domain

import "mafia-lab/errors"

// Roster is the ordered, duplicate-free list of players who joined a session.
// Insertion order is preserved. Owned exclusively by its Session.
type Roster struct {
	players []Player
	byID    map[UserID]int
}

func NewRoster() *Roster {
	return &Roster{byID: make(map[UserID]int)}
}

func (r *Roster) Contains(id UserID) bool {
	_, ok := r.byID[id]
	return ok
}

// Append adds a player, enforcing uniqueness by user id.
func (r *Roster) Append(p Player) error {
	if r.Contains(p.ID) {
		return errors.ErrAlreadyJoined
	}
	r.byID[p.ID] = len(r.players)
	r.players = append(r.players, p)
	return nil
}

func (r *Roster) Size() int {
	return len(r.players)
}

// Players returns a snapshot in insertion order.
func (r *Roster) Players() []Player {
	out := make([]Player, len(r.players))
	copy(out, r.players)
	return out
}
