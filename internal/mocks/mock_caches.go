package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockIdentityCache implements domain.IdentityCache interface for testing
type MockIdentityCache struct {
	GetFunc    func(ctx context.Context, userID string) (*domain.AuthIdentity, error)
	SetFunc    func(ctx context.Context, identity *domain.AuthIdentity) error
	DeleteFunc func(ctx context.Context, userID string) error
}

var _ domain.IdentityCache = (*MockIdentityCache)(nil)

// NewMockIdentityCache creates a new MockIdentityCache with default behaviors
func NewMockIdentityCache() *MockIdentityCache {
	return &MockIdentityCache{}
}

// Get returns a cached identity
func (m *MockIdentityCache) Get(ctx context.Context, userID string) (*domain.AuthIdentity, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	return nil, domain.ErrCacheMiss
}

// Set stores an identity
func (m *MockIdentityCache) Set(ctx context.Context, identity *domain.AuthIdentity) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, identity)
	}
	return nil
}

// Delete removes a cached identity
func (m *MockIdentityCache) Delete(ctx context.Context, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID)
	}
	return nil
}

// MockCompanyCache implements domain.CompanyCache interface for testing
type MockCompanyCache struct {
	GetFunc        func(ctx context.Context, companyID string) (*domain.Company, error)
	GetBySlugFunc  func(ctx context.Context, slug string) (*domain.Company, error)
	SetFunc        func(ctx context.Context, company *domain.Company) error
	InvalidateFunc func(ctx context.Context, companyID, slug string) error
}

var _ domain.CompanyCache = (*MockCompanyCache)(nil)

// NewMockCompanyCache creates a new MockCompanyCache with default behaviors
func NewMockCompanyCache() *MockCompanyCache {
	return &MockCompanyCache{}
}

// Get returns a cached company by ID
func (m *MockCompanyCache) Get(ctx context.Context, companyID string) (*domain.Company, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, companyID)
	}
	return nil, domain.ErrCacheMiss
}

// GetBySlug returns a cached company by slug
func (m *MockCompanyCache) GetBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrCacheMiss
}

// Set stores a company under both its ID and slug keys
func (m *MockCompanyCache) Set(ctx context.Context, company *domain.Company) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, company)
	}
	return nil
}

// Invalidate removes a company's cache entries
func (m *MockCompanyCache) Invalidate(ctx context.Context, companyID, slug string) error {
	if m.InvalidateFunc != nil {
		return m.InvalidateFunc(ctx, companyID, slug)
	}
	return nil
}
