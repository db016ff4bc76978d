package converter

import (
	"fmt"

	dto "minigames_backend/internal/api/dto/crash"
	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToCrashAmount(req dto.PlaceRequest) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: malformed bet amount", model.ErrInvalidParameter)
	}
	return amount, nil
}

// ToCrashStateResponse скрывает точку краша, пока раунд идет
func ToCrashStateResponse(state *model.CrashState) dto.StateResponse {
	response := dto.StateResponse{
		Phase:      string(state.Phase),
		RoundID:    state.RoundID,
		Bettor:     string(state.Bettor),
		Multiplier: state.Multiplier.StringFixed(2),
		Payout:     state.Payout.StringFixed(2),
		Balance:    state.Balance.StringFixed(2),
	}

	if state.Phase != model.CrashPhaseIdle {
		response.Amount = state.Bet.StringFixed(2)
	}
	if state.Phase == model.CrashPhaseCrashed {
		response.CrashPoint = state.CrashPoint.StringFixed(2)
	}
	if state.Bettor == model.CrashCashedOut {
		response.CashedOutAt = state.CashedOutAt.StringFixed(2)
	}

	return response
}

func ToCrashHistoryResponse(points []decimal.Decimal) dto.HistoryResponse {
	result := make([]string, len(points))
	for i, point := range points {
		result[i] = point.StringFixed(2)
	}
	return dto.HistoryResponse{CrashPoints: result}
}
