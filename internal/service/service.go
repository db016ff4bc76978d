package service

import (
	"context"

	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

// WalletService - леджер сессии. Единственная точка изменения баланса:
// ровно одно списание на принятую ставку и не более одного начисления на расчет
type WalletService interface {
	Debit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
	Credit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error)
	Balance(ctx context.Context, userID int) (decimal.Decimal, error)
}

type SessionService interface {
	Create(ctx context.Context, name string) (*model.AuthData, error)
	Logout(ctx context.Context, sessionID string) error
	Balance(ctx context.Context, userID int) (decimal.Decimal, error)
}

type DiceService interface {
	Place(ctx context.Context, userID int, bet model.DiceBet) (*model.DiceState, error)
	Reset(ctx context.Context, userID int) (*model.DiceState, error)
	State(ctx context.Context, userID int) (*model.DiceState, error)
}

type MinesService interface {
	Start(ctx context.Context, userID int, bet model.MinesBet) (*model.MinesState, error)
	Reveal(ctx context.Context, userID int, cell int) (*model.MinesState, error)
	CashOut(ctx context.Context, userID int) (*model.MinesState, error)
	Reset(ctx context.Context, userID int) (*model.MinesState, error)
	State(ctx context.Context, userID int) (*model.MinesState, error)
}

type CrashService interface {
	Place(ctx context.Context, userID int, amount decimal.Decimal) (*model.CrashState, error)
	CashOut(ctx context.Context, userID int) (*model.CrashState, error)
	// Tick - команда драйвера времени: продвигает все идущие раунды на один шаг
	Tick(ctx context.Context)
	State(ctx context.Context, userID int) (*model.CrashState, error)
	History(ctx context.Context, userID int) ([]decimal.Decimal, error)
}

type BlackjackService interface {
	Place(ctx context.Context, userID int, amount decimal.Decimal) (*model.BlackjackState, error)
	Hit(ctx context.Context, userID int) (*model.BlackjackState, error)
	Stand(ctx context.Context, userID int) (*model.BlackjackState, error)
	Reset(ctx context.Context, userID int) (*model.BlackjackState, error)
	State(ctx context.Context, userID int) (*model.BlackjackState, error)
}
