package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// EmployeeRepositoryImpl implements domain.EmployeeRepository using GORM
type EmployeeRepositoryImpl struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) domain.EmployeeRepository {
	return &EmployeeRepositoryImpl{db: db}
}

// Create implements domain.EmployeeRepository
func (r *EmployeeRepositoryImpl) Create(ctx context.Context, employee *domain.Employee) error {
	dbEmp := employeeToDB(employee)
	if dbEmp.ID == "" {
		dbEmp.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbEmp).Error; err != nil {
		return err
	}
	employee.ID = dbEmp.ID
	employee.CreatedAt = dbEmp.CreatedAt
	employee.UpdatedAt = dbEmp.UpdatedAt
	return nil
}

// FindByID implements domain.EmployeeRepository
func (r *EmployeeRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByPhone implements domain.EmployeeRepository
func (r *EmployeeRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.Employee, error) {
	return r.findOne(ctx, "phone = ?", phone)
}

// FindByUserID implements domain.EmployeeRepository
func (r *EmployeeRepositoryImpl) FindByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *EmployeeRepositoryImpl) findOne(ctx context.Context, query string, arg any) (*domain.Employee, error) {
	var dbEmp DBEmployee
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbEmp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return employeeToDomain(&dbEmp), nil
}

// ListByCompany implements domain.EmployeeRepository
func (r *EmployeeRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]*domain.Employee, error) {
	var dbEmps []DBEmployee
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&dbEmps).Error; err != nil {
		return nil, err
	}
	employees := make([]*domain.Employee, 0, len(dbEmps))
	for i := range dbEmps {
		employees = append(employees, employeeToDomain(&dbEmps[i]))
	}
	return employees, nil
}

// CountByShift implements domain.EmployeeRepository
func (r *EmployeeRepositoryImpl) CountByShift(ctx context.Context, shiftID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBEmployee{}).Where("shift_id = ?", shiftID).Count(&count).Error
	return count, err
}

// Update implements domain.EmployeeRepository
func (r *EmployeeRepositoryImpl) Update(ctx context.Context, employee *domain.Employee) error {
	return r.db.WithContext(ctx).Save(employeeToDB(employee)).Error
}

func employeeToDB(e *domain.Employee) *DBEmployee {
	return &DBEmployee{
		ID:         e.ID,
		UserID:     strPtr(e.UserID),
		Phone:      e.Phone,
		Role:       e.Role,
		Status:     e.Status,
		IsEmployee: e.IsEmployee,
		CompanyID:  strPtr(e.CompanyID),
		ShiftID:    strPtr(e.ShiftID),
	}
}

func employeeToDomain(e *DBEmployee) *domain.Employee {
	return &domain.Employee{
		ID:         e.ID,
		UserID:     strVal(e.UserID),
		Phone:      e.Phone,
		Role:       e.Role,
		Status:     e.Status,
		IsEmployee: e.IsEmployee,
		CompanyID:  strVal(e.CompanyID),
		ShiftID:    strVal(e.ShiftID),
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
