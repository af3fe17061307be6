// Package redis stores short-lived email verification codes.
package redis

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"brokerage/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

// codeTTL is how long a verification code stays valid. Registering again
// replaces the code and restarts the clock.
const codeTTL = 5 * time.Minute

const keyPrefix = "verify:"

// VerificationStore implements ports.VerificationCodes on Redis. Expiry is
// delegated to the key TTL; a matching code is deleted so it cannot be
// replayed.
type VerificationStore struct {
	client *redis.Client
}

// NewVerificationStore creates a store over the given Redis client.
func NewVerificationStore(client *redis.Client) *VerificationStore {
	return &VerificationStore{client: client}
}

// Store saves the code for the account, replacing any previous one.
func (s *VerificationStore) Store(ctx context.Context, accountID kernel.UUID, code string) error {
	return s.client.Set(ctx, keyPrefix+accountID.String(), code, codeTTL).Err()
}

// Verify checks the code and consumes it when it matches. An expired or
// missing code reports false without an error; a mismatch leaves the stored
// code in place so a typo does not force re-registration.
func (s *VerificationStore) Verify(ctx context.Context, accountID kernel.UUID, code string) (bool, error) {
	key := keyPrefix + accountID.String()

	stored, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return false, err
	}
	return true, nil
}
