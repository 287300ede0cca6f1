package membership

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"mafia-lab/domain"
)

func TestTracker_TracksGroupsUsersAndChannels(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker(logs.GetLoggerFromLevel(slog.LevelDebug))

	tracker.Update(Change{Chat: 1, Kind: KindPrivate, Actor: "Ann", WasMember: false, IsMember: true})
	tracker.Update(Change{Chat: -100, Kind: KindGroup, ChatTitle: "Mafia Town", Actor: "Ann", WasMember: false, IsMember: true})
	tracker.Update(Change{Chat: -200, Kind: KindChannel, ChatTitle: "Announcements", Actor: "Bob", WasMember: false, IsMember: true})

	req.Equal(1, tracker.Users())
	req.Equal(1, tracker.Groups())
	req.Equal(1, tracker.Channels())
	req.True(tracker.InGroup(-100))

	// Removal empties the right set only.
	tracker.Update(Change{Chat: -100, Kind: KindGroup, ChatTitle: "Mafia Town", Actor: "Bob", WasMember: true, IsMember: false})
	req.Zero(tracker.Groups())
	req.False(tracker.InGroup(-100))
	req.Equal(1, tracker.Users())
}

func TestTracker_IgnoresNoopTransitions(t *testing.T) {
	req := require.New(t)
	tracker := NewTracker(logs.GetLoggerFromLevel(slog.LevelDebug))

	// member -> member (e.g. promoted to admin) changes nothing
	tracker.Update(Change{Chat: -100, Kind: KindGroup, WasMember: true, IsMember: true})
	req.Zero(tracker.Groups())

	// gone -> gone changes nothing either
	tracker.Update(Change{Chat: -100, Kind: KindGroup, WasMember: false, IsMember: false})
	req.Zero(tracker.Groups())
}

func TestGreetings(t *testing.T) {
	req := require.New(t)

	// A new member gets a welcome broadcast in the group.
	deliveries := Greetings(-100, "Ann", "Bob", false, true)
	req.Len(deliveries, 1)
	req.Equal(domain.TargetChat, deliveries[0].Kind)
	req.Equal(domain.ChatID(-100), deliveries[0].Chat)
	req.Equal("Ann was added by Bob. Welcome!", deliveries[0].Text)

	// A leaving member gets a farewell.
	deliveries = Greetings(-100, "Ann", "Bob", true, false)
	req.Len(deliveries, 1)
	req.Equal("Ann is no longer with us. Thanks a lot, Bob ...", deliveries[0].Text)

	// No transition, no delivery.
	req.Empty(Greetings(-100, "Ann", "Bob", true, true))
	req.Empty(Greetings(-100, "Ann", "Bob", false, false))
}
