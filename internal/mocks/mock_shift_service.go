package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockShiftService implements domain.ShiftService interface for testing
type MockShiftService struct {
	CreateFunc func(ctx context.Context, identity *domain.AuthIdentity, shift *domain.Shift) (*domain.Shift, error)
	GetFunc    func(ctx context.Context, identity *domain.AuthIdentity, shiftID string) (*domain.Shift, error)
	ListFunc   func(ctx context.Context, identity *domain.AuthIdentity) ([]*domain.Shift, error)
	UpdateFunc func(ctx context.Context, identity *domain.AuthIdentity, shiftID string, changes *domain.Shift) (*domain.Shift, error)
	DeleteFunc func(ctx context.Context, identity *domain.AuthIdentity, shiftID string) (*domain.Shift, error)
}

var _ domain.ShiftService = (*MockShiftService)(nil)

// NewMockShiftService creates a new MockShiftService with default behaviors
func NewMockShiftService() *MockShiftService {
	return &MockShiftService{}
}

// Create creates a shift
func (m *MockShiftService) Create(ctx context.Context, identity *domain.AuthIdentity, shift *domain.Shift) (*domain.Shift, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, identity, shift)
	}
	shift.ID = "shift-1"
	return shift, nil
}

// Get returns a shift by ID
func (m *MockShiftService) Get(ctx context.Context, identity *domain.AuthIdentity, shiftID string) (*domain.Shift, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, identity, shiftID)
	}
	return nil, domain.ErrShiftNotFound
}

// List returns the company's shifts
func (m *MockShiftService) List(ctx context.Context, identity *domain.AuthIdentity) ([]*domain.Shift, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, identity)
	}
	return nil, nil
}

// Update updates a shift
func (m *MockShiftService) Update(ctx context.Context, identity *domain.AuthIdentity, shiftID string, changes *domain.Shift) (*domain.Shift, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, identity, shiftID, changes)
	}
	return nil, domain.ErrShiftNotFound
}

// Delete deletes a shift
func (m *MockShiftService) Delete(ctx context.Context, identity *domain.AuthIdentity, shiftID string) (*domain.Shift, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, identity, shiftID)
	}
	return nil, domain.ErrShiftNotFound
}
