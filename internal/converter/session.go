package converter

import (
	dto "minigames_backend/internal/api/dto/session"
	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToCreateSessionResponse(data *model.AuthData) dto.CreateResponse {
	return dto.CreateResponse{
		AccessToken: data.AccessToken,
		UserID:      data.User.ID,
		Name:        data.User.Name,
		Balance:     data.User.Balance.StringFixed(2),
	}
}

func ToBalanceResponse(balance decimal.Decimal) dto.BalanceResponse {
	return dto.BalanceResponse{
		Balance: balance.StringFixed(2),
	}
}
