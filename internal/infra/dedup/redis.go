package dedup

import (
	"context"
	"time"

	"webhook-gateway/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisClaimStore backs the ingestion gate's claim-or-reject step. SET NX EX
// is one indivisible server-side operation, which is the whole dedup
// guarantee; never replace it with a GET-then-SET pair.
type RedisClaimStore struct {
	client *redis.Client
}

func NewRedisClaimStore(client *redis.Client) *RedisClaimStore {
	return &RedisClaimStore{client: client}
}

func (s *RedisClaimStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	claimed, err := s.client.SetNX(ctx, key, 1, ttl).Result()
	if err != nil {
		return false, errs.Wrap(err, "dedup claim failed")
	}
	return claimed, nil
}
