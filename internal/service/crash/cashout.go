package crash

import (
	"context"
	"fmt"

	"minigames_backend/internal/model"
	"minigames_backend/internal/payout"
)

// CashOut фиксирует выход игрока по текущему множителю.
// Выход необратим, раунд продолжает идти до своей точки краша
func (s *serv) CashOut(ctx context.Context, userID int) (*model.CrashState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	state := s.activeState(userID)
	if state == nil || state.Phase != model.CrashPhaseRunning {
		return nil, fmt.Errorf("%w: no crash round in progress", model.ErrInvalidTransition)
	}
	if state.Bettor != model.CrashBet {
		return nil, fmt.Errorf("%w: already cashed out", model.ErrInvalidTransition)
	}

	cashedOutAt := state.Multiplier
	payoutAmount := payout.Payout(state.Bet, cashedOutAt)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.wallet.Credit(txCtx, userID, payoutAmount)
		if err != nil {
			return err
		}

		state.Bettor = model.CrashCashedOut
		state.CashedOutAt = cashedOutAt
		state.Payout = payoutAmount
		state.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}
