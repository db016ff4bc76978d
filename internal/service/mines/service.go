package mines

import (
	"context"
	"fmt"

	"minigames_backend/internal/config"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/rng"
	"minigames_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	wallet    service.WalletService
	stateRepo repository.GameStateRepository
	txManager trm.Manager
	rnd       rng.Source
	gamesCfg  config.GamesConfig
}

func NewMinesService(
	wallet service.WalletService,
	stateRepo repository.GameStateRepository,
	txManager trm.Manager,
	rnd rng.Source,
	gamesCfg config.GamesConfig,
) service.MinesService {
	return &serv{
		wallet:    wallet,
		stateRepo: stateRepo,
		txManager: txManager,
		rnd:       rnd,
		gamesCfg:  gamesCfg,
	}
}

// Текущее состояние Mines пользователя, nil если активна другая игра или ее нет
func (s *serv) activeState(userID int) *model.MinesState {
	current, ok := s.stateRepo.Active(userID)
	if !ok {
		return nil
	}
	state, ok := current.(*model.MinesState)
	if !ok {
		return nil
	}
	return state
}

func (s *serv) State(ctx context.Context, userID int) (*model.MinesState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if state := s.activeState(userID); state != nil {
		return state, nil
	}
	return s.idleState(ctx, userID)
}

// Reset валиден из терминальных состояний, из Idle - тихий no-op
func (s *serv) Reset(ctx context.Context, userID int) (*model.MinesState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if current, ok := s.stateRepo.Active(userID); ok {
		if current.InFlight() {
			return nil, fmt.Errorf("%w: round in progress", model.ErrInvalidTransition)
		}
		if current.Kind() == model.GameMines {
			s.stateRepo.Clear(userID)
		}
	}

	return s.idleState(ctx, userID)
}

func (s *serv) idleState(ctx context.Context, userID int) (*model.MinesState, error) {
	balance, err := s.wallet.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.MinesState{
		Phase:   model.MinesPhaseIdle,
		Balance: balance,
	}, nil
}
