package sink

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mafia-lab/domain"
	"mafia-lab/domain/event"
	"mafia-lab/mocks"
	"mafia-lab/repositories"
)

func TestRecordSink_PersistsFinishedGames(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIGameRecordRepository(ctrl)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	s := NewRecordSink(repository, log)

	id := uuid.New()
	at := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	evt := event.RolesAssigned{
		ID:   id,
		Chat: 100,
		At:   at,
		Assignments: []event.Assignment{
			{User: 1, DisplayName: "Ann", Role: domain.RoleMafia},
			{User: 2, DisplayName: "Bob", Role: domain.RoleVillager},
		},
	}

	repository.EXPECT().StoreRecord(repositories.GameRecord{
		ID:       id,
		Chat:     100,
		PlayedAt: at,
		Roles: []repositories.PlayerRole{
			{User: 1, DisplayName: "Ann", Role: "mafia"},
			{User: 2, DisplayName: "Bob", Role: "villager"},
		},
	}).Return(nil)

	req.NoError(s.Consume(context.Background(), evt))
}

func TestRecordSink_IgnoresOtherEvents(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIGameRecordRepository(ctrl)
	s := NewRecordSink(repository, logs.GetLoggerFromLevel(slog.LevelDebug))

	// No repository call expected.
	req.NoError(s.Consume(context.Background(), event.GameStarted{Chat: 100}))
	req.NoError(s.Consume(context.Background(), event.PlayerJoined{Chat: 100, User: 1}))
}
