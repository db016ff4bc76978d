package converter

import (
	"fmt"

	dto "minigames_backend/internal/api/dto/dice"
	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToDiceBet(req dto.PlaceRequest) (model.DiceBet, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return model.DiceBet{}, fmt.Errorf("%w: malformed bet amount", model.ErrInvalidParameter)
	}

	return model.DiceBet{
		Amount:    amount,
		Threshold: req.Threshold,
		Direction: model.DiceDirection(req.Direction),
	}, nil
}

func ToDiceStateResponse(state *model.DiceState) dto.StateResponse {
	response := dto.StateResponse{
		Phase:   string(state.Phase),
		Win:     state.Win,
		Payout:  state.Payout.StringFixed(2),
		Balance: state.Balance.StringFixed(2),
	}

	if state.Phase != model.DicePhaseIdle {
		response.Amount = state.Bet.Amount.StringFixed(2)
		response.Threshold = state.Bet.Threshold
		response.Direction = string(state.Bet.Direction)
		response.Multiplier = state.Multiplier.StringFixed(2)
	}
	if state.Phase == model.DicePhaseResult {
		response.Roll = state.Roll
	}

	return response
}
