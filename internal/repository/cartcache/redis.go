package cartcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pizzaria-backend/internal/domain"

	"github.com/go-redis/redis/v8"
)

// cartTTL keeps abandoned carts around long enough to survive a browsing
// session without accumulating forever.
const cartTTL = 24 * time.Hour

type redisRepo struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) Repository {
	return &redisRepo{rdb: rdb}
}

func cartKey(pizzeriaID, sessionID string) string {
	return fmt.Sprintf("cart:%s:%s", pizzeriaID, sessionID)
}

func (r *redisRepo) Get(ctx context.Context, pizzeriaID, sessionID string) ([]domain.CartLine, error) {
	val, err := r.rdb.Get(ctx, cartKey(pizzeriaID, sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(val), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *redisRepo) Set(ctx context.Context, pizzeriaID, sessionID string, lines []domain.CartLine) error {
	payload, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, cartKey(pizzeriaID, sessionID), payload, cartTTL).Err()
}

func (r *redisRepo) Clear(ctx context.Context, pizzeriaID, sessionID string) error {
	return r.rdb.Del(ctx, cartKey(pizzeriaID, sessionID)).Err()
}
