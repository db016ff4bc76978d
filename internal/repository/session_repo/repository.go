package session_repo

import (
	"context"

	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "sessions"
	colSessionID   = "session_id"
	colUserID      = "user_id"
	colExpiredTime = "expired_time"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSessionRepository(dbc *pgxpool.Pool) repository.SessionRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateSession - создает сессию в БД
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colSessionID, colUserID, colExpiredTime).
		Values(session.ID, session.UserID, session.ExpiresAt).
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

// GetUserIDBySessionID - получить ID пользователя по session ID из БД
func (r *repo) GetUserIDBySessionID(ctx context.Context, sessionID string) (int, error) {
	// Формируем запрос
	query := sq.Select(colUserID).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var userID int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&userID)
	if err != nil {
		return 0, err
	}

	return userID, nil
}

// DeleteSession - удаляет сессию из БД.
// Принимает sessionID которую надо удалить
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colSessionID: sessionID}).
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
