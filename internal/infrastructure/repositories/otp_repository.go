package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// OTPRepositoryImpl implements domain.OTPRepository using Redis. Values are
// bcrypt hashes; the plaintext code never touches storage. Redis expiry is
// the challenge lifetime: a vanished key is indistinguishable from a
// challenge that was never issued.
type OTPRepositoryImpl struct {
	client *redis.Client
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(client *redis.Client) domain.OTPRepository {
	return &OTPRepositoryImpl{client: client}
}

// Save implements domain.OTPRepository. A second save under the same key
// overwrites the previous challenge and restarts its TTL (last-write-wins).
func (r *OTPRepositoryImpl) Save(ctx context.Context, key, hash string, ttl time.Duration) error {
	return r.client.Set(ctx, key, hash, ttl).Err()
}

// Get implements domain.OTPRepository
func (r *OTPRepositoryImpl) Get(ctx context.Context, key string) (string, error) {
	hash, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrOTPExpired
		}
		return "", err
	}
	return hash, nil
}

// Delete implements domain.OTPRepository. Deleting a consumed or missing
// challenge is a no-op.
func (r *OTPRepositoryImpl) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
