package blackjack

type PlaceRequest struct {
	Amount string `json:"amount"` // Сумма ставки, до двух знаков
}

type Card struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type StateResponse struct {
	Phase       string `json:"phase"`
	Amount      string `json:"amount,omitempty"`
	Player      []Card `json:"player"`
	Dealer      []Card `json:"dealer"` // Закрытая карта дилера не отдается до его хода
	PlayerScore int    `json:"player_score"`
	DealerScore int    `json:"dealer_score"`
	Result      string `json:"result,omitempty"`
	Payout      string `json:"payout"`
	Balance     string `json:"balance"`
}
