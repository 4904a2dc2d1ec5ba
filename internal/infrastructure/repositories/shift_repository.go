package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// ShiftRepositoryImpl implements domain.ShiftRepository using GORM
type ShiftRepositoryImpl struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) domain.ShiftRepository {
	return &ShiftRepositoryImpl{db: db}
}

// Create implements domain.ShiftRepository
func (r *ShiftRepositoryImpl) Create(ctx context.Context, shift *domain.Shift) error {
	dbShift := shiftToDB(shift)
	if dbShift.ID == "" {
		dbShift.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbShift).Error; err != nil {
		return err
	}
	shift.ID = dbShift.ID
	shift.CreatedAt = dbShift.CreatedAt
	shift.UpdatedAt = dbShift.UpdatedAt
	return nil
}

// FindByID implements domain.ShiftRepository
func (r *ShiftRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Shift, error) {
	var dbShift DBShift
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbShift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShiftNotFound
		}
		return nil, err
	}
	return shiftToDomain(&dbShift), nil
}

// ListByCompany implements domain.ShiftRepository
func (r *ShiftRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]*domain.Shift, error) {
	var dbShifts []DBShift
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&dbShifts).Error; err != nil {
		return nil, err
	}
	shifts := make([]*domain.Shift, 0, len(dbShifts))
	for i := range dbShifts {
		shifts = append(shifts, shiftToDomain(&dbShifts[i]))
	}
	return shifts, nil
}

// Update implements domain.ShiftRepository
func (r *ShiftRepositoryImpl) Update(ctx context.Context, shift *domain.Shift) error {
	return r.db.WithContext(ctx).Save(shiftToDB(shift)).Error
}

// Delete implements domain.ShiftRepository
func (r *ShiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBShift{}).Error
}

func shiftToDB(s *domain.Shift) *DBShift {
	return &DBShift{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

func shiftToDomain(s *DBShift) *domain.Shift {
	return &domain.Shift{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
