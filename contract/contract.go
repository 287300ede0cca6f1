//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"mafia-lab/domain"
	"mafia-lab/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.GameEvent) error
}

// IRegistry serializes all session mutations per chat id. The callback runs
// while that chat's entry lock is held; different chats never contend.
type IRegistry interface {
	WithSession(chat domain.ChatID, fn func(*domain.Session))
	WithExisting(chat domain.ChatID, fn func(*domain.Session)) bool
	Len() int
}

// IGameService is the inbound surface the transport invokes. Every call
// returns the delivery instructions the transport must send.
type IGameService interface {
	StartGame(cmd domain.StartGameCommand) []domain.Delivery
	JoinGame(cmd domain.JoinGameCommand) []domain.Delivery
	FinishJoining(cmd domain.FinishJoiningCommand) ([]domain.Delivery, error)
	EndGame(cmd domain.EndGameCommand) ([]domain.Delivery, error)
	ScanMessage(msg event.GroupMessage)
}
