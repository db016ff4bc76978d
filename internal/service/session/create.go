package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"minigames_backend/internal/model"
	"minigames_backend/pkg/token"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Create - создание игровой сессии: пользователь со стартовым балансом,
// запись сессии и access токен
func (s *serv) Create(ctx context.Context, name string) (*model.AuthData, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", model.ErrInvalidParameter)
	}

	user := &model.User{
		Name:    name,
		Balance: s.gamesCfg.StartingBalance(),
	}

	var (
		sessionID   string
		accessToken string
	)

	// Начало транзакциии
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать пользователя в бд
		var err error
		user.ID, err = s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		// 2. Генерация sessionID
		sessionID = uuid.NewString()

		// 3. Создать сессию
		err = s.sessionRepo.CreateSession(ctx, &model.Session{
			ID:        sessionID,
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(s.jwtCfg.SessionDuration()),
		})
		if err != nil {
			return err
		}

		// 4. Создать access токен
		accessToken, err = token.GenerateAccessToken(
			user,
			s.jwtCfg.AccessTokenSecretKey(),
			s.jwtCfg.AccessTokenDuration())
		if err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken: accessToken,
		SessionID:   sessionID,
		User:        user,
	}, nil
}

// Logout - завершает сессию. Баланс остается в БД
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.sessionRepo.DeleteSession(ctx, sessionID)
}

func (s *serv) Balance(ctx context.Context, userID int) (decimal.Decimal, error) {
	return s.userRepo.GetBalance(ctx, userID)
}
