package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) GameRecordRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewGameRecordRepository(db, logs.GetLoggerFromLevel(slog.LevelDebug))
}

func record(chat int64, at time.Time) GameRecord {
	return GameRecord{
		ID:       uuid.New(),
		Chat:     chat,
		PlayedAt: at,
		Roles: []PlayerRole{
			{User: 1, DisplayName: "Ann", Role: "mafia"},
			{User: 2, DisplayName: "Bob", Role: "villager"},
			{User: 3, DisplayName: "Cid", Role: "villager"},
		},
	}
}

func TestGameRecordRepository_StoreAndList(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	first := record(100, base)
	second := record(100, base.Add(time.Hour))
	other := record(200, base.Add(30*time.Minute))

	req.NoError(repository.StoreRecord(first))
	req.NoError(repository.StoreRecord(second))
	req.NoError(repository.StoreRecord(other))

	// Per-chat listing is chronological and scoped to the chat.
	records, err := repository.ListRecords(100)
	req.NoError(err)
	req.Len(records, 2)
	req.Equal(first.ID, records[0].ID)
	req.Equal(second.ID, records[1].ID)
	req.Len(records[0].Roles, 3)
	req.Equal("mafia", records[0].Roles[0].Role)

	// The global listing sees every chat.
	all, err := repository.ListAll()
	req.NoError(err)
	req.Len(all, 3)
}

func TestGameRecordRepository_ListUnknownChat(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	records, err := repository.ListRecords(999)
	req.NoError(err)
	req.Empty(records)
}
