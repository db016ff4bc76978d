package session

type CreateRequest struct {
	Name string `json:"name"` // Отображаемое имя игрока
}

type CreateResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int    `json:"user_id"`
	Name        string `json:"name"`
	Balance     string `json:"balance"` // Стартовый баланс сессии
}

type BalanceResponse struct {
	Balance string `json:"balance"`
}
