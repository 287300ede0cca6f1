package domain

import (
	"fmt"

	"mafia-lab/errors"
)

// Role is the secret label dealt to exactly one player.
type Role string

const (
	RoleMafia     Role = "mafia"
	RoleVillager  Role = "villager"
	RoleDetective Role = "detective"
	RoleDoctor    Role = "doctor"

	// Reserved vocabulary. Present in the game's role set but never dealt
	// by RolesFor; kept until the intended design is confirmed.
	RoleManiac Role = "maniac"
	RoleLover  Role = "lover"
)

const (
	MinPlayers = 3
	MaxPlayers = 11
)

// RolesFor returns the multiset of roles dealt to count players.
// The order of the returned slice carries no meaning; the caller draws
// from it at random when handing roles out.
func RolesFor(count int) ([]Role, error) {
	switch {
	case count >= 3 && count <= 5:
		return padWithVillagers([]Role{RoleMafia}, count), nil
	case count >= 6 && count <= 8:
		return padWithVillagers([]Role{RoleMafia, RoleMafia, RoleDetective}, count), nil
	case count >= 9 && count <= 11:
		return padWithVillagers([]Role{RoleMafia, RoleMafia, RoleMafia, RoleDetective, RoleDoctor}, count), nil
	default:
		return nil, fmt.Errorf("%w: %d", errors.ErrUnsupportedPlayerCount, count)
	}
}

func padWithVillagers(roles []Role, total int) []Role {
	for len(roles) < total {
		roles = append(roles, RoleVillager)
	}
	return roles
}
