package mines

import (
	"context"
	"fmt"

	"minigames_backend/internal/model"
	"minigames_backend/internal/payout"
)

// Reveal открывает клетку. Повторный клик по открытой клетке - тихий no-op.
// Мина завершает раунд без начисления, последняя безопасная клетка - с выигрышем
func (s *serv) Reveal(ctx context.Context, userID int, cell int) (*model.MinesState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	state := s.activeState(userID)
	if state == nil || state.Phase != model.MinesPhasePlaying {
		return nil, fmt.Errorf("%w: no mines round in progress", model.ErrInvalidTransition)
	}

	if cell < 0 || cell >= state.GridSize {
		return nil, fmt.Errorf("%w: cell out of range", model.ErrInvalidParameter)
	}

	if state.Revealed[cell] {
		return state, nil
	}

	if state.Mines[cell] {
		state.Phase = model.MinesPhaseLost
		return state, nil
	}

	state.Revealed[cell] = true
	state.RevealedCount++
	state.Multiplier = payout.MinesStep(state.Multiplier, state.SafeSpots(), state.RevealedCount)

	// Все безопасные клетки найдены
	if state.RevealedCount == state.SafeSpots() {
		if err := s.settle(ctx, userID, state); err != nil {
			return nil, err
		}
	}

	return state, nil
}

// CashOut досрочно завершает раунд с текущим множителем.
// Валиден только в Playing при хотя бы одной открытой клетке
func (s *serv) CashOut(ctx context.Context, userID int) (*model.MinesState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	state := s.activeState(userID)
	if state == nil || state.Phase != model.MinesPhasePlaying {
		return nil, fmt.Errorf("%w: no mines round in progress", model.ErrInvalidTransition)
	}
	if state.RevealedCount == 0 {
		return nil, fmt.Errorf("%w: nothing revealed yet", model.ErrInvalidTransition)
	}

	if err := s.settle(ctx, userID, state); err != nil {
		return nil, err
	}

	return state, nil
}

// Единственное начисление за раунд: переход в Won с выплатой
func (s *serv) settle(ctx context.Context, userID int, state *model.MinesState) error {
	state.Multiplier = state.Multiplier.Round(2)
	state.Payout = payout.Payout(state.Bet.Amount, state.Multiplier)

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.wallet.Credit(txCtx, userID, state.Payout)
		if err != nil {
			return err
		}

		state.Phase = model.MinesPhaseWon
		state.Balance = balance
		return nil
	})
}
