package dice

type PlaceRequest struct {
	Amount    string `json:"amount"`    // Сумма ставки, до двух знаков
	Threshold int    `json:"threshold"` // Порог 1-6
	Direction string `json:"direction"` // over | under
}

type StateResponse struct {
	Phase      string `json:"phase"`
	Amount     string `json:"amount,omitempty"`
	Threshold  int    `json:"threshold,omitempty"`
	Direction  string `json:"direction,omitempty"`
	Roll       int    `json:"roll,omitempty"` // Выпавшая грань, только в result
	Win        bool   `json:"win"`
	Multiplier string `json:"multiplier,omitempty"`
	Payout     string `json:"payout"`
	Balance    string `json:"balance"`
}
