package user_repo

import (
	"context"
	"database/sql"
	"errors"

	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table      = "users"
	colID      = "id"
	colName    = "name"
	colBalance = "balance"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Баланс хранится в центах (bigint), наружу отдается decimal с двумя знаками
func centsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

func amountToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).IntPart()
}

// CreateUser - создает нового пользователя в БД.
// Возвращает ID созданного пользователя
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colName, colBalance).
		Values(user.Name, amountToCents(user.Balance)).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// GetBalance - получение баланса пользователя по его ID
func (r *repo) GetBalance(ctx context.Context, id int) (decimal.Decimal, error) {
	// Формируем запрос
	query := sq.Select(colBalance).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var cents int64
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&cents)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return centsToAmount(cents), nil
}

// UpdateBalance - обновляет баланс пользователя.
// Принимает ID пользователя и новую сумму баланса
func (r *repo) UpdateBalance(ctx context.Context, id int, amount decimal.Decimal) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, amountToCents(amount)).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}
