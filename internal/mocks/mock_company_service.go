package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockCompanyService implements domain.CompanyService interface for testing
type MockCompanyService struct {
	CreateFunc    func(ctx context.Context, identity *domain.AuthIdentity, company *domain.Company, isEmployee bool) (*domain.Company, error)
	GetMineFunc   func(ctx context.Context, identity *domain.AuthIdentity) (*domain.Company, error)
	GetBySlugFunc func(ctx context.Context, identity *domain.AuthIdentity, slug string) (*domain.Company, error)
	UpdateFunc    func(ctx context.Context, identity *domain.AuthIdentity, slug string, changes *domain.Company) (*domain.Company, error)
	DeleteFunc    func(ctx context.Context, identity *domain.AuthIdentity, slug string) (*domain.Company, error)
}

var _ domain.CompanyService = (*MockCompanyService)(nil)

// NewMockCompanyService creates a new MockCompanyService with default behaviors
func NewMockCompanyService() *MockCompanyService {
	return &MockCompanyService{}
}

// Create creates a company
func (m *MockCompanyService) Create(ctx context.Context, identity *domain.AuthIdentity, company *domain.Company, isEmployee bool) (*domain.Company, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, identity, company, isEmployee)
	}
	company.ID = "company-1"
	return company, nil
}

// GetMine returns the caller's company
func (m *MockCompanyService) GetMine(ctx context.Context, identity *domain.AuthIdentity) (*domain.Company, error) {
	if m.GetMineFunc != nil {
		return m.GetMineFunc(ctx, identity)
	}
	return nil, domain.ErrNoCompany
}

// GetBySlug returns a company by slug
func (m *MockCompanyService) GetBySlug(ctx context.Context, identity *domain.AuthIdentity, slug string) (*domain.Company, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, identity, slug)
	}
	return nil, domain.ErrCompanyNotFound
}

// Update updates a company
func (m *MockCompanyService) Update(ctx context.Context, identity *domain.AuthIdentity, slug string, changes *domain.Company) (*domain.Company, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, identity, slug, changes)
	}
	return nil, domain.ErrCompanyNotFound
}

// Delete deletes a company
func (m *MockCompanyService) Delete(ctx context.Context, identity *domain.AuthIdentity, slug string) (*domain.Company, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, identity, slug)
	}
	return nil, domain.ErrCompanyNotFound
}
