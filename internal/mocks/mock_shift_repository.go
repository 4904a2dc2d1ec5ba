package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockShiftRepository implements domain.ShiftRepository interface for testing
type MockShiftRepository struct {
	CreateFunc        func(ctx context.Context, shift *domain.Shift) error
	FindByIDFunc      func(ctx context.Context, id string) (*domain.Shift, error)
	ListByCompanyFunc func(ctx context.Context, companyID string) ([]*domain.Shift, error)
	UpdateFunc        func(ctx context.Context, shift *domain.Shift) error
	DeleteFunc        func(ctx context.Context, id string) error
}

var _ domain.ShiftRepository = (*MockShiftRepository)(nil)

// NewMockShiftRepository creates a new MockShiftRepository with default behaviors
func NewMockShiftRepository() *MockShiftRepository {
	return &MockShiftRepository{}
}

// Create creates a new shift
func (m *MockShiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, shift)
	}
	return nil
}

// FindByID finds a shift by ID
func (m *MockShiftRepository) FindByID(ctx context.Context, id string) (*domain.Shift, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrShiftNotFound
}

// ListByCompany lists all shifts of a company
func (m *MockShiftRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Shift, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

// Update updates an existing shift
func (m *MockShiftRepository) Update(ctx context.Context, shift *domain.Shift) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, shift)
	}
	return nil
}

// Delete deletes a shift
func (m *MockShiftRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
