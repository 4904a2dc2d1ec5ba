package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// ShiftServiceImpl implements domain.ShiftService. Every operation is
// scoped to the caller's company; a shift that belongs to someone else's
// company is reported as not found.
type ShiftServiceImpl struct {
	shiftRepo    domain.ShiftRepository
	employeeRepo domain.EmployeeRepository
	logger       *zap.Logger
}

// NewShiftService creates a new shift service
func NewShiftService(shiftRepo domain.ShiftRepository, employeeRepo domain.EmployeeRepository, logger *zap.Logger) domain.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

func (s *ShiftServiceImpl) companyScope(identity *domain.AuthIdentity) (string, error) {
	employee := identity.Employee
	if employee == nil {
		return "", domain.ErrEmployeeNotFound
	}
	if employee.CompanyID == "" {
		return "", domain.ErrNoCompany
	}
	return employee.CompanyID, nil
}

func (s *ShiftServiceImpl) ownerScope(identity *domain.AuthIdentity) (string, error) {
	companyID, err := s.companyScope(identity)
	if err != nil {
		return "", err
	}
	if identity.Employee.Role != domain.RoleOwner {
		return "", domain.ErrInsufficientRole
	}
	return companyID, nil
}

// findScoped fetches a shift and verifies it belongs to companyID.
func (s *ShiftServiceImpl) findScoped(ctx context.Context, companyID, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift.CompanyID != companyID {
		return nil, domain.ErrShiftNotFound
	}
	return shift, nil
}

// Create implements domain.ShiftService
func (s *ShiftServiceImpl) Create(ctx context.Context, identity *domain.AuthIdentity, shift *domain.Shift) (*domain.Shift, error) {
	companyID, err := s.ownerScope(identity)
	if err != nil {
		return nil, err
	}

	shift.CompanyID = companyID
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}

	s.logger.Info("shift created",
		zap.String("shift_id", shift.ID),
		zap.String("company_id", companyID),
	)
	return shift, nil
}

// Get implements domain.ShiftService
func (s *ShiftServiceImpl) Get(ctx context.Context, identity *domain.AuthIdentity, shiftID string) (*domain.Shift, error) {
	companyID, err := s.companyScope(identity)
	if err != nil {
		return nil, err
	}
	return s.findScoped(ctx, companyID, shiftID)
}

// List implements domain.ShiftService
func (s *ShiftServiceImpl) List(ctx context.Context, identity *domain.AuthIdentity) ([]*domain.Shift, error) {
	companyID, err := s.companyScope(identity)
	if err != nil {
		return nil, err
	}
	return s.shiftRepo.ListByCompany(ctx, companyID)
}

// Update implements domain.ShiftService
func (s *ShiftServiceImpl) Update(ctx context.Context, identity *domain.AuthIdentity, shiftID string, changes *domain.Shift) (*domain.Shift, error) {
	companyID, err := s.ownerScope(identity)
	if err != nil {
		return nil, err
	}

	shift, err := s.findScoped(ctx, companyID, shiftID)
	if err != nil {
		return nil, err
	}

	if changes.Name != "" {
		shift.Name = changes.Name
	}
	if !changes.StartTime.IsZero() {
		shift.StartTime = changes.StartTime
	}
	if !changes.EndTime.IsZero() {
		shift.EndTime = changes.EndTime
	}
	shift.UpdatedAt = time.Now()

	if err := s.shiftRepo.Update(ctx, shift); err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	return shift, nil
}

// Delete implements domain.ShiftService. A shift with assigned employees
// cannot be deleted.
func (s *ShiftServiceImpl) Delete(ctx context.Context, identity *domain.AuthIdentity, shiftID string) (*domain.Shift, error) {
	companyID, err := s.ownerScope(identity)
	if err != nil {
		return nil, err
	}

	shift, err := s.findScoped(ctx, companyID, shiftID)
	if err != nil {
		return nil, err
	}

	assigned, err := s.employeeRepo.CountByShift(ctx, shift.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count shift employees: %w", err)
	}
	if assigned > 0 {
		return nil, domain.ErrShiftHasEmployees
	}

	if err := s.shiftRepo.Delete(ctx, shift.ID); err != nil {
		if errors.Is(err, domain.ErrShiftNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete shift: %w", err)
	}

	s.logger.Info("shift deleted",
		zap.String("shift_id", shift.ID),
		zap.String("company_id", companyID),
	)
	return shift, nil
}
