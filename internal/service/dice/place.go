package dice

import (
	"context"
	"fmt"

	"minigames_backend/internal/model"
	"minigames_backend/internal/payout"
)

// Place выполняет полный раунд Dice: списание, единственный бросок и расчет.
// Бросок фиксируется один раз и далее неизменен; задержка анимации - забота клиента
func (s *serv) Place(ctx context.Context, userID int, bet model.DiceBet) (*model.DiceState, error) {
	// Валидация до списания и до любого обращения к ГСЧ
	if !bet.Amount.IsPositive() || !bet.Amount.Equal(bet.Amount.Round(2)) {
		return nil, fmt.Errorf("%w: bet amount must be positive with at most 2 decimals", model.ErrInvalidParameter)
	}
	if bet.Amount.GreaterThan(s.gamesCfg.MaxBet()) {
		return nil, fmt.Errorf("%w: bet amount above max bet", model.ErrInvalidParameter)
	}
	if bet.Threshold < 1 || bet.Threshold > 6 {
		return nil, fmt.Errorf("%w: threshold must be in [1,6]", model.ErrInvalidParameter)
	}
	if bet.Direction != model.DiceOver && bet.Direction != model.DiceUnder {
		return nil, fmt.Errorf("%w: unknown direction", model.ErrInvalidParameter)
	}
	// Комбинация с нулевой вероятностью выигрыша не доходит до формулы множителя
	if payout.DiceWinProbability(bet.Threshold, bet.Direction).IsZero() {
		return nil, fmt.Errorf("%w: bet has zero win probability", model.ErrInvalidParameter)
	}

	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if current, ok := s.stateRepo.Active(userID); ok && current.InFlight() {
		return nil, fmt.Errorf("%w: another round in progress", model.ErrInvalidTransition)
	}

	state := &model.DiceState{
		Phase:      model.DicePhaseRolling,
		Bet:        bet,
		Multiplier: payout.DiceMultiplier(s.gamesCfg.DiceTargetRTP(), bet.Threshold, bet.Direction),
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Списание ставки
		balance, err := s.wallet.Debit(txCtx, userID, bet.Amount)
		if err != nil {
			return err
		}

		// Единственный бросок за раунд
		state.Roll = s.rnd.IntRange(1, 6)

		if bet.Direction == model.DiceOver {
			state.Win = state.Roll > bet.Threshold
		} else {
			state.Win = state.Roll <= bet.Threshold
		}

		// Начисление выигрыша
		if state.Win {
			state.Payout = payout.Payout(bet.Amount, state.Multiplier)
			balance, err = s.wallet.Credit(txCtx, userID, state.Payout)
			if err != nil {
				return err
			}
		}

		state.Phase = model.DicePhaseResult
		state.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.stateRepo.SetActive(userID, state)
	return state, nil
}

// Reset переводит игру в Idle. Сброс из Idle - тихий no-op
func (s *serv) Reset(ctx context.Context, userID int) (*model.DiceState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if current, ok := s.stateRepo.Active(userID); ok {
		if current.InFlight() {
			return nil, fmt.Errorf("%w: another round in progress", model.ErrInvalidTransition)
		}
		if current.Kind() == model.GameDice {
			s.stateRepo.Clear(userID)
		}
	}

	return s.idleState(ctx, userID)
}

func (s *serv) State(ctx context.Context, userID int) (*model.DiceState, error) {
	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if current, ok := s.stateRepo.Active(userID); ok {
		if state, ok := current.(*model.DiceState); ok {
			return state, nil
		}
	}

	return s.idleState(ctx, userID)
}

func (s *serv) idleState(ctx context.Context, userID int) (*model.DiceState, error) {
	balance, err := s.wallet.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.DiceState{
		Phase:   model.DicePhaseIdle,
		Balance: balance,
	}, nil
}
