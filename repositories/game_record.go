//go:generate go run go.uber.org/mock/mockgen -source=game_record.go -destination=../mocks/mock_game_record_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

type IGameRecordRepository interface {
	StoreRecord(rec GameRecord) error
	ListRecords(chat int64) ([]GameRecord, error)
	ListAll() ([]GameRecord, error)
}

// GameRecord is the journal entry written once per finished game. It is an
// audit trail for tooling; sessions are never rebuilt from it.
type GameRecord struct {
	ID       uuid.UUID
	Chat     int64
	PlayedAt time.Time
	Roles    []PlayerRole
}

type PlayerRole struct {
	User        int64
	DisplayName string
	Role        string
}

type GameRecordRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewGameRecordRepository(db *badger.DB, log *slog.Logger) GameRecordRepository {
	return GameRecordRepository{db: db, log: log}
}

// StoreRecord persists one finished game in BadgerDB.
// The key is formatted as "game:{chat_id}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two games
//     finish at the same nanosecond.
func (r GameRecordRepository) StoreRecord(rec GameRecord) error {
	key := fmt.Sprintf("game:%d:%019d:%s",
		rec.Chat,
		rec.PlayedAt.UnixNano(),
		rec.ID,
	)
	bytes, err := cbor.Marshal(rec)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListRecords returns the chat's finished games in chronological order.
func (r GameRecordRepository) ListRecords(chat int64) ([]GameRecord, error) {
	return r.scan(fmt.Sprintf("game:%d:", chat))
}

// ListAll returns every finished game across all chats.
func (r GameRecordRepository) ListAll() ([]GameRecord, error) {
	return r.scan("game:")
}

func (r GameRecordRepository) scan(prefix string) ([]GameRecord, error) {
	var records []GameRecord
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec GameRecord
				if err := cbor.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.Debug("Scanned game records", "prefix", prefix, "count", len(records))
	return records, nil
}
