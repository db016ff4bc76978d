package converter

import (
	"fmt"

	dto "minigames_backend/internal/api/dto/blackjack"
	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToBlackjackAmount(req dto.PlaceRequest) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: malformed bet amount", model.ErrInvalidParameter)
	}
	return amount, nil
}

// ToBlackjackStateResponse не отдает закрытую карту дилера до его хода
func ToBlackjackStateResponse(state *model.BlackjackState) dto.StateResponse {
	dealer := state.Dealer
	if state.Phase == model.BlackjackPhasePlayerTurn && len(dealer) > 1 {
		dealer = dealer[:1]
	}

	response := dto.StateResponse{
		Phase:       string(state.Phase),
		Player:      toCards(state.Player),
		Dealer:      toCards(dealer),
		PlayerScore: state.PlayerScore,
		DealerScore: state.DealerScore,
		Result:      string(state.Result),
		Payout:      state.Payout.StringFixed(2),
		Balance:     state.Balance.StringFixed(2),
	}

	if state.Phase != model.BlackjackPhaseBetting {
		response.Amount = state.Bet.StringFixed(2)
	}

	return response
}

func toCards(hand []model.Card) []dto.Card {
	result := make([]dto.Card, len(hand))
	for i, card := range hand {
		result[i] = dto.Card{Suit: card.Suit, Rank: card.Rank}
	}
	return result
}
