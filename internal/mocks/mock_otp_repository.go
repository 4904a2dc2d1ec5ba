package mocks

import (
	"context"
	"time"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockOTPRepository implements domain.OTPRepository interface for testing
type MockOTPRepository struct {
	SaveFunc   func(ctx context.Context, key, hash string, ttl time.Duration) error
	GetFunc    func(ctx context.Context, key string) (string, error)
	DeleteFunc func(ctx context.Context, key string) error
}

var _ domain.OTPRepository = (*MockOTPRepository)(nil)

// NewMockOTPRepository creates a new MockOTPRepository with default behaviors
func NewMockOTPRepository() *MockOTPRepository {
	return &MockOTPRepository{}
}

// Save stores a hashed OTP challenge
func (m *MockOTPRepository) Save(ctx context.Context, key, hash string, ttl time.Duration) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, key, hash, ttl)
	}
	return nil
}

// Get returns the stored hash for a key
func (m *MockOTPRepository) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return "", domain.ErrOTPExpired
}

// Delete removes a challenge
func (m *MockOTPRepository) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}
