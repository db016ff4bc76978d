package crash

import (
	"context"
	"fmt"

	"minigames_backend/internal/model"
	"minigames_backend/internal/payout"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Place ставит на новый раунд. Точка краша фиксируется в момент ставки
// и не раскрывается клиенту до завершения раунда
func (s *serv) Place(ctx context.Context, userID int, amount decimal.Decimal) (*model.CrashState, error) {
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return nil, fmt.Errorf("%w: bet amount must be positive with at most 2 decimals", model.ErrInvalidParameter)
	}
	if amount.GreaterThan(s.gamesCfg.MaxBet()) {
		return nil, fmt.Errorf("%w: bet amount above max bet", model.ErrInvalidParameter)
	}

	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if current, ok := s.stateRepo.Active(userID); ok && current.InFlight() {
		return nil, errRoundInProgress
	}

	state := &model.CrashState{
		Phase:      model.CrashPhaseRunning,
		RoundID:    uuid.NewString(),
		Bet:        amount,
		Bettor:     model.CrashBet,
		CrashPoint: payout.CrashPoint(s.rnd.Float64()),
		Multiplier: decimal.NewFromInt(1),
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.wallet.Debit(txCtx, userID, amount)
		if err != nil {
			return err
		}

		state.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.stateRepo.SetActive(userID, state)
	return state, nil
}
