package sink

import (
	"context"
	"log/slog"

	"github.com/samber/lo"

	"mafia-lab/contract"
	"mafia-lab/domain/event"
	"mafia-lab/repositories"
)

var _ contract.EventSink = (*RecordSink)(nil)

// RecordSink appends every finished game to the journal. Other events pass
// through untouched.
type RecordSink struct {
	repository repositories.IGameRecordRepository
	log        *slog.Logger
}

func NewRecordSink(repository repositories.IGameRecordRepository, log *slog.Logger) *RecordSink {
	return &RecordSink{repository: repository, log: log}
}

func (s *RecordSink) Consume(_ context.Context, e event.GameEvent) error {
	evt, ok := e.(event.RolesAssigned)
	if !ok {
		return nil
	}
	return s.repository.StoreRecord(repositories.GameRecord{
		ID:       evt.ID,
		Chat:     evt.Chat,
		PlayedAt: evt.At,
		Roles: lo.Map(evt.Assignments, func(a event.Assignment, _ int) repositories.PlayerRole {
			return repositories.PlayerRole{
				User:        a.User,
				DisplayName: a.DisplayName,
				Role:        string(a.Role),
			}
		}),
	})
}
