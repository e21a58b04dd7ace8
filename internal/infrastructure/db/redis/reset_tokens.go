package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/residenthub/society-api/internal/core/domain"
)

const (
	resetTokenPrefix     = "pwreset:"
	resetTokenUserPrefix = "pwreset:user:"
)

// ResetTokenStore keeps password reset tokens in Redis with a TTL. A
// reverse key per user guarantees at most one live token: issuing a new
// token deletes the previous one.
type ResetTokenStore struct {
	client *redis.Client
}

func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

func (s *ResetTokenStore) Save(ctx context.Context, userID, token string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	previous, err := s.client.Get(ctx, resetTokenUserPrefix+userID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}

	pipe := s.client.TxPipeline()
	if previous != "" {
		pipe.Del(ctx, resetTokenPrefix+previous)
	}
	pipe.Set(ctx, resetTokenPrefix+token, userID, ttl)
	pipe.Set(ctx, resetTokenUserPrefix+userID, token, ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Lookup resolves a token to its user. Expired keys vanish from Redis, so
// unknown and expired tokens read the same.
func (s *ResetTokenStore) Lookup(ctx context.Context, token string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userID, err := s.client.Get(ctx, resetTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrInvalidResetToken
		}
		return "", err
	}
	return userID, nil
}

func (s *ResetTokenStore) Delete(ctx context.Context, userID, token string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, resetTokenPrefix+token)
	pipe.Del(ctx, resetTokenUserPrefix+userID)
	_, err := pipe.Exec(ctx)
	return err
}
