package mines

import (
	"context"
	"fmt"

	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

// Start начинает раунд: списывает ставку и расставляет мины.
// Мины раскладываются равномерно без повторов через перестановку клеток
func (s *serv) Start(ctx context.Context, userID int, bet model.MinesBet) (*model.MinesState, error) {
	if !bet.Amount.IsPositive() || !bet.Amount.Equal(bet.Amount.Round(2)) {
		return nil, fmt.Errorf("%w: bet amount must be positive with at most 2 decimals", model.ErrInvalidParameter)
	}
	if bet.Amount.GreaterThan(s.gamesCfg.MaxBet()) {
		return nil, fmt.Errorf("%w: bet amount above max bet", model.ErrInvalidParameter)
	}
	if bet.MineCount < s.gamesCfg.MinesMinCount() || bet.MineCount > s.gamesCfg.MinesMaxCount() {
		return nil, fmt.Errorf("%w: mine count must be in [%d,%d]",
			model.ErrInvalidParameter, s.gamesCfg.MinesMinCount(), s.gamesCfg.MinesMaxCount())
	}

	s.stateRepo.Lock(userID)
	defer s.stateRepo.Unlock(userID)

	if current, ok := s.stateRepo.Active(userID); ok && current.InFlight() {
		return nil, fmt.Errorf("%w: another round in progress", model.ErrInvalidTransition)
	}

	gridSize := s.gamesCfg.MinesGridSize()

	state := &model.MinesState{
		Phase:      model.MinesPhasePlaying,
		Bet:        bet,
		GridSize:   gridSize,
		Mines:      make(map[int]bool, bet.MineCount),
		Revealed:   make(map[int]bool),
		Multiplier: decimal.NewFromInt(1),
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.wallet.Debit(txCtx, userID, bet.Amount)
		if err != nil {
			return err
		}

		// Раскладка мин после фиксации ставки
		cells := make([]int, gridSize)
		for i := range cells {
			cells[i] = i
		}
		s.rnd.Shuffle(gridSize, func(i, j int) {
			cells[i], cells[j] = cells[j], cells[i]
		})
		for _, cell := range cells[:bet.MineCount] {
			state.Mines[cell] = true
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
