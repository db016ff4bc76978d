package history_repo

import (
	"context"
	"fmt"

	"minigames_backend/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const crashHistoryKeyPrefix = "crash:history:"

// Реализация репозитория истории раундов поверх Redis
type repo struct {
	rdb *redis.Client
}

func NewHistoryRepository(rdb *redis.Client) repository.HistoryRepository {
	return &repo{
		rdb: rdb,
	}
}

func crashHistoryKey(userID int) string {
	return fmt.Sprintf("%s%d", crashHistoryKeyPrefix, userID)
}

// PushCrashPoint - добавляет точку краха в начало истории и обрезает ее до limit
func (r *repo) PushCrashPoint(ctx context.Context, userID int, point decimal.Decimal, limit int) error {
	key := crashHistoryKey(userID)

	pipe := r.rdb.TxPipeline()
	pipe.LPush(ctx, key, point.StringFixed(2))
	pipe.LTrim(ctx, key, 0, int64(limit-1))

	_, err := pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to push crash point: %w", err)
	}

	return nil
}

// RecentCrashPoints - последние n точек краха, от новых к старым
func (r *repo) RecentCrashPoints(ctx context.Context, userID int, n int) ([]decimal.Decimal, error) {
	raw, err := r.rdb.LRange(ctx, crashHistoryKey(userID), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read crash history: %w", err)
	}

	points := make([]decimal.Decimal, 0, len(raw))
	for _, item := range raw {
		point, err := decimal.NewFromString(item)
		if err != nil {
			return nil, fmt.Errorf("corrupt crash history entry %q: %w", item, err)
		}
		points = append(points, point)
	}

	return points, nil
}
