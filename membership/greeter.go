package membership

import (
	"fmt"

	"mafia-lab/domain"
)

// Greetings produces the welcome or farewell broadcast for a member
// transition in a group chat. A transition that changes nothing produces
// no delivery.
func Greetings(chat int64, member, actor string, wasMember, isMember bool) []domain.Delivery {
	switch {
	case !wasMember && isMember:
		text := fmt.Sprintf("%s was added by %s. Welcome!", member, actor)
		return []domain.Delivery{domain.BroadcastTo(domain.ChatID(chat), text)}
	case wasMember && !isMember:
		text := fmt.Sprintf("%s is no longer with us. Thanks a lot, %s ...", member, actor)
		return []domain.Delivery{domain.BroadcastTo(domain.ChatID(chat), text)}
	}
	return nil
}
