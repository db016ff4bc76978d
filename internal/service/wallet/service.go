package wallet

import (
	"context"
	"fmt"

	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"
	"minigames_backend/internal/service"

	"github.com/shopspring/decimal"
)

type serv struct {
	userRepo repository.UserRepository
}

// NewWalletService - леджер поверх репозитория пользователей.
// Вызывается игровыми сервисами внутри их транзакций
func NewWalletService(userRepo repository.UserRepository) service.WalletService {
	return &serv{
		userRepo: userRepo,
	}
}

// Debit - списание ставки. Если средств не хватает, баланс не трогается
func (s *serv) Debit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get user balance: %w", err)
	}

	if amount.GreaterThan(balance) {
		return decimal.Zero, model.ErrInsufficientBalance
	}

	balance = balance.Sub(amount)
	if err := s.userRepo.UpdateBalance(ctx, userID, balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to update user balance: %w", err)
	}

	return balance, nil
}

// Credit - начисление выплаты
func (s *serv) Credit(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get user balance: %w", err)
	}

	balance = balance.Add(amount)
	if err := s.userRepo.UpdateBalance(ctx, userID, balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to update user balance: %w", err)
	}

	return balance, nil
}

func (s *serv) Balance(ctx context.Context, userID int) (decimal.Decimal, error) {
	return s.userRepo.GetBalance(ctx, userID)
}
