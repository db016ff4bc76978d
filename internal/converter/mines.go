package converter

import (
	"fmt"
	"sort"

	dto "minigames_backend/internal/api/dto/mines"
	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToMinesBet(req dto.StartRequest) (model.MinesBet, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return model.MinesBet{}, fmt.Errorf("%w: malformed bet amount", model.ErrInvalidParameter)
	}

	return model.MinesBet{
		Amount:    amount,
		MineCount: req.MineCount,
	}, nil
}

// ToMinesStateResponse скрывает позиции мин, пока раунд идет
func ToMinesStateResponse(state *model.MinesState) dto.StateResponse {
	response := dto.StateResponse{
		Phase:         string(state.Phase),
		GridSize:      state.GridSize,
		Revealed:      sortedCells(state.Revealed),
		RevealedCount: state.RevealedCount,
		Multiplier:    state.Multiplier.StringFixed(2),
		Payout:        state.Payout.StringFixed(2),
		Balance:       state.Balance.StringFixed(2),
	}

	if state.Phase != model.MinesPhaseIdle {
		response.Amount = state.Bet.Amount.StringFixed(2)
		response.MineCount = state.Bet.MineCount
	}
	if state.Phase == model.MinesPhaseWon || state.Phase == model.MinesPhaseLost {
		response.Mines = sortedCells(state.Mines)
	}

	return response
}

func sortedCells(cells map[int]bool) []int {
	result := make([]int, 0, len(cells))
	for cell := range cells {
		result = append(result, cell)
	}
	sort.Ints(result)
	return result
}
