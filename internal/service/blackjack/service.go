package blackjack

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

func NewBlackjackService(
	wallet service.WalletService,
	stateRepo repository.GameStateRepository,
	txManager trm.Manager,
	rnd rng.Source,
	gamesCfg config.GamesConfig,
) service.BlackjackService {
	return &serv{
		wallet:    wallet,
		stateRepo: stateRepo,
		txManager: txManager,
		rnd:       rnd,
		gamesCfg:  gamesCfg,
	}
}

func (s *serv) activeState(userID int) *model.BlackjackState {
	current, ok := s.stateRepo.Active(userID)
	if !ok {
		return nil
	}
	state, ok := current.(*model.BlackjackState)
	if !ok {
		return nil
	}
	return state
}

func (s *serv) State(ctx context.Context, userID int) (*model.BlackjackState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if state := s.activeState(userID); state != nil {
		return state, nil
	}
	return s.idleState(ctx, userID)
}

// Reset собирает стол к новой раздаче. Валиден только из Finished или Betting
func (s *serv) Reset(ctx context.Context, userID int) (*model.BlackjackState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if current, ok := s.stateRepo.Active(userID); ok {
		if current.InFlight() {
			return nil, fmt.Errorf("%w: hand in progress", model.ErrInvalidTransition)
		}
		if current.Kind() == model.GameBlackjack {
			s.stateRepo.Clear(userID)
		}
	}

	return s.idleState(ctx, userID)
}

func (s *serv) idleState(ctx context.Context, userID int) (*model.BlackjackState, error) {
	balance, err := s.wallet.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.BlackjackState{
		Phase:   model.BlackjackPhaseBetting,
		Balance: balance,
	}, nil
}
