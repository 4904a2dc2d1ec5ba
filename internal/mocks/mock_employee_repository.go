package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockEmployeeRepository implements domain.EmployeeRepository interface for testing
type MockEmployeeRepository struct {
	CreateFunc        func(ctx context.Context, employee *domain.Employee) error
	FindByIDFunc      func(ctx context.Context, id string) (*domain.Employee, error)
	FindByPhoneFunc   func(ctx context.Context, phone string) (*domain.Employee, error)
	FindByUserIDFunc  func(ctx context.Context, userID string) (*domain.Employee, error)
	ListByCompanyFunc func(ctx context.Context, companyID string) ([]*domain.Employee, error)
	CountByShiftFunc  func(ctx context.Context, shiftID string) (int64, error)
	UpdateFunc        func(ctx context.Context, employee *domain.Employee) error
}

var _ domain.EmployeeRepository = (*MockEmployeeRepository)(nil)

// NewMockEmployeeRepository creates a new MockEmployeeRepository with default behaviors
func NewMockEmployeeRepository() *MockEmployeeRepository {
	return &MockEmployeeRepository{}
}

// Create creates a new employee
func (m *MockEmployeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, employee)
	}
	return nil
}

// FindByID finds an employee by ID
func (m *MockEmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrEmployeeNotFound
}

// FindByPhone finds an employee by phone number
func (m *MockEmployeeRepository) FindByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	if m.FindByPhoneFunc != nil {
		return m.FindByPhoneFunc(ctx, phone)
	}
	return nil, domain.ErrEmployeeNotFound
}

// FindByUserID finds an employee by its linked user ID
func (m *MockEmployeeRepository) FindByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, domain.ErrEmployeeNotFound
}

// ListByCompany lists all employees of a company
func (m *MockEmployeeRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Employee, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	return nil, nil
}

// CountByShift counts employees assigned to a shift
func (m *MockEmployeeRepository) CountByShift(ctx context.Context, shiftID string) (int64, error) {
	if m.CountByShiftFunc != nil {
		return m.CountByShiftFunc(ctx, shiftID)
	}
	return 0, nil
}

// Update updates an existing employee
func (m *MockEmployeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, employee)
	}
	return nil
}
