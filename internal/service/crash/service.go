package crash

import (
	"context"
	"fmt"

	"minigames_backend/internal/config"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/rng"
	"minigames_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

// Broadcaster - канал доставки кадров раунда клиенту (websocket-хаб)
type Broadcaster interface {
	Send(userID int, payload any)
}

// Кадр тика для подписчиков
type Frame struct {
	Type       string `json:"type"`
	RoundID    string `json:"round_id"`
	Multiplier string `json:"multiplier"`
	CrashPoint string `json:"crash_point,omitempty"`
}

const (
	frameTick  = "tick"
	frameCrash = "crash"
)

type serv struct {
	wallet      service.WalletService
	stateRepo   repository.GameStateRepository
	historyRepo repository.HistoryRepository
	txManager   trm.Manager
	rnd         rng.Source
	gamesCfg    config.GamesConfig
	broadcaster Broadcaster
}

func NewCrashService(
	wallet service.WalletService,
	stateRepo repository.GameStateRepository,
	historyRepo repository.HistoryRepository,
	txManager trm.Manager,
	rnd rng.Source,
	gamesCfg config.GamesConfig,
	broadcaster Broadcaster,
) service.CrashService {
	return &serv{
		wallet:      wallet,
		stateRepo:   stateRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		rnd:         rnd,
		gamesCfg:    gamesCfg,
		broadcaster: broadcaster,
	}
}

func (s *serv) activeState(userID int) *model.CrashState {
	current, ok := s.stateRepo.Active(userID)
	if !ok {
		return nil
	}
	state, ok := current.(*model.CrashState)
	if !ok {
		return nil
	}
	return state
}

func (s *serv) State(ctx context.Context, userID int) (*model.CrashState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if state := s.activeState(userID); state != nil {
		return state, nil
	}
	return s.idleState(ctx, userID)
}

func (s *serv) History(ctx context.Context, userID int) ([]decimal.Decimal, error) {
	return s.historyRepo.RecentCrashPoints(ctx, userID, s.gamesCfg.CrashHistorySize())
}

func (s *serv) idleState(ctx context.Context, userID int) (*model.CrashState, error) {
	balance, err := s.wallet.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.CrashState{
		Phase:      model.CrashPhaseIdle,
		Bettor:     model.CrashNoBet,
		Multiplier: decimal.NewFromInt(1),
		Balance:    balance,
	}, nil
}

func (s *serv) send(userID int, frame Frame) {
	if s.broadcaster != nil {
		s.broadcaster.Send(userID, frame)
	}
}

var errRoundInProgress = fmt.Errorf("%w: round in progress", model.ErrInvalidTransition)
