package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockIdentityResolver implements domain.IdentityResolver interface for testing
type MockIdentityResolver struct {
	ResolveFunc func(ctx context.Context, userID string) (*domain.AuthIdentity, error)
}

var _ domain.IdentityResolver = (*MockIdentityResolver)(nil)

// NewMockIdentityResolver creates a new MockIdentityResolver with default behaviors
func NewMockIdentityResolver() *MockIdentityResolver {
	return &MockIdentityResolver{}
}

// Resolve loads an identity from the source of truth
func (m *MockIdentityResolver) Resolve(ctx context.Context, userID string) (*domain.AuthIdentity, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, userID)
	}
	return nil, domain.ErrUserNotFound
}
