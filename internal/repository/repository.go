package repository

import (
	"context"

	"minigames_backend/internal/model"

	"github.com/shopspring/decimal"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)

	GetBalance(ctx context.Context, id int) (decimal.Decimal, error)
	UpdateBalance(ctx context.Context, id int, amount decimal.Decimal) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetUserIDBySessionID(ctx context.Context, sessionID string) (int, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// GameStateRepository - активные игровые состояния по пользователям.
// Lock/Unlock сериализуют команды одного пользователя: пока команда
// не обработана до конца, следующая не принимается
type GameStateRepository interface {
	Lock(userID int)
	Unlock(userID int)

	Active(userID int) (model.GameState, bool)
	SetActive(userID int, state model.GameState)
	Clear(userID int)

	// RunningCrashUsers - пользователи с идущим раундом crash (для драйвера тиков)
	RunningCrashUsers() []int
}

type HistoryRepository interface {
	PushCrashPoint(ctx context.Context, userID int, point decimal.Decimal, limit int) error
	RecentCrashPoints(ctx context.Context, userID int, n int) ([]decimal.Decimal, error)
}
