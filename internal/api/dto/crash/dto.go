package crash

type PlaceRequest struct {
	Amount string `json:"amount"` // Сумма ставки, до двух знаков
}

type StateResponse struct {
	Phase       string `json:"phase"`
	RoundID     string `json:"round_id,omitempty"`
	Bettor      string `json:"bettor"`
	Amount      string `json:"amount,omitempty"`
	Multiplier  string `json:"multiplier"`
	CrashPoint  string `json:"crash_point,omitempty"` // Скрыта, пока раунд идет
	CashedOutAt string `json:"cashed_out_at,omitempty"`
	Payout      string `json:"payout"`
	Balance     string `json:"balance"`
}

type HistoryResponse struct {
	CrashPoints []string `json:"crash_points"` // Последние точки краша, новые первыми
}
