package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockCompanyRepository implements domain.CompanyRepository interface for testing
type MockCompanyRepository struct {
	CreateFunc      func(ctx context.Context, company *domain.Company) error
	FindByIDFunc    func(ctx context.Context, id string) (*domain.Company, error)
	FindBySlugFunc  func(ctx context.Context, slug string) (*domain.Company, error)
	FindByOwnerFunc func(ctx context.Context, ownerID string) (*domain.Company, error)
	UpdateFunc      func(ctx context.Context, company *domain.Company) error
	DeleteFunc      func(ctx context.Context, id string) error
}

var _ domain.CompanyRepository = (*MockCompanyRepository)(nil)

// NewMockCompanyRepository creates a new MockCompanyRepository with default behaviors
func NewMockCompanyRepository() *MockCompanyRepository {
	return &MockCompanyRepository{}
}

// Create creates a new company
func (m *MockCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, company)
	}
	return nil
}

// FindByID finds a company by ID
func (m *MockCompanyRepository) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCompanyNotFound
}

// FindBySlug finds a company by slug
func (m *MockCompanyRepository) FindBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, domain.ErrCompanyNotFound
}

// FindByOwner finds a company by owner ID
func (m *MockCompanyRepository) FindByOwner(ctx context.Context, ownerID string) (*domain.Company, error) {
	if m.FindByOwnerFunc != nil {
		return m.FindByOwnerFunc(ctx, ownerID)
	}
	return nil, domain.ErrCompanyNotFound
}

// Update updates an existing company
func (m *MockCompanyRepository) Update(ctx context.Context, company *domain.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, company)
	}
	return nil
}

// Delete deletes a company and its dependent records
func (m *MockCompanyRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
