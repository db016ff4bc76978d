package mines

type StartRequest struct {
	Amount    string `json:"amount"`     // Сумма ставки, до двух знаков
	MineCount int    `json:"mine_count"` // Количество мин
}

type RevealRequest struct {
	Cell int `json:"cell"` // Индекс клетки 0..grid_size-1
}

type StateResponse struct {
	Phase         string `json:"phase"`
	GridSize      int    `json:"grid_size"`
	MineCount     int    `json:"mine_count,omitempty"`
	Amount        string `json:"amount,omitempty"`
	Revealed      []int  `json:"revealed"`
	Mines         []int  `json:"mines,omitempty"` // Позиции мин, только после завершения раунда
	RevealedCount int    `json:"revealed_count"`
	Multiplier    string `json:"multiplier"`
	Payout        string `json:"payout"`
	Balance       string `json:"balance"`
}
