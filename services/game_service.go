package services

import (
	"mafia-lab/contract"
	"mafia-lab/domain"
	"mafia-lab/domain/event"
	"mafia-lab/runtime"
)

var _ contract.IGameService = (*GameService)(nil)

// GameService fronts the orchestrator for the transport layer.
type GameService struct {
	orchestrator *runtime.Orchestrator
}

func NewGameService(o *runtime.Orchestrator) *GameService {
	return &GameService{orchestrator: o}
}

func (s *GameService) StartGame(cmd domain.StartGameCommand) []domain.Delivery {
	return s.orchestrator.StartGame(cmd)
}

func (s *GameService) JoinGame(cmd domain.JoinGameCommand) []domain.Delivery {
	return s.orchestrator.JoinGame(cmd)
}

func (s *GameService) FinishJoining(cmd domain.FinishJoiningCommand) ([]domain.Delivery, error) {
	return s.orchestrator.FinishJoining(cmd)
}

func (s *GameService) EndGame(cmd domain.EndGameCommand) ([]domain.Delivery, error) {
	return s.orchestrator.EndGame(cmd)
}

func (s *GameService) ScanMessage(msg event.GroupMessage) {
	s.orchestrator.ScanMessage(msg)
}
