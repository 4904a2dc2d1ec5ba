package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// CompanyRepositoryImpl implements domain.CompanyRepository using GORM
type CompanyRepositoryImpl struct {
	db *gorm.DB
}

// NewCompanyRepository creates a new company repository
func NewCompanyRepository(db *gorm.DB) domain.CompanyRepository {
	return &CompanyRepositoryImpl{db: db}
}

// Create implements domain.CompanyRepository. Slug uniqueness rides on the
// unique index; under two concurrent creates with the same slug exactly one
// insert wins and the other maps to ErrSlugTaken.
func (r *CompanyRepositoryImpl) Create(ctx context.Context, company *domain.Company) error {
	dbCompany := companyToDB(company)
	if dbCompany.ID == "" {
		dbCompany.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbCompany).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrSlugTaken
		}
		return err
	}
	company.ID = dbCompany.ID
	company.CreatedAt = dbCompany.CreatedAt
	company.UpdatedAt = dbCompany.UpdatedAt
	return nil
}

// FindByID implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Company, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindBySlug implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Company, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

// FindByOwner implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) FindByOwner(ctx context.Context, ownerID string) (*domain.Company, error) {
	return r.findOne(ctx, "owner_id = ?", ownerID)
}

func (r *CompanyRepositoryImpl) findOne(ctx context.Context, query string, arg any) (*domain.Company, error) {
	var dbCompany DBCompany
	err := r.db.WithContext(ctx).Where(query, arg).First(&dbCompany).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, err
	}
	return companyToDomain(&dbCompany), nil
}

// Update implements domain.CompanyRepository
func (r *CompanyRepositoryImpl) Update(ctx context.Context, company *domain.Company) error {
	err := r.db.WithContext(ctx).Save(companyToDB(company)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrSlugTaken
	}
	return err
}

// Delete implements domain.CompanyRepository. The cascade runs in a single
// transaction: employees keep their rows but lose the company reference,
// shifts and departments go with the company.
func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&DBEmployee{}).Where("company_id = ?", id).
			Updates(map[string]any{"company_id": nil, "shift_id": nil}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&DBShift{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", id).Delete(&DBDepartment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&DBCompany{}).Error
	})
}

func companyToDB(c *domain.Company) *DBCompany {
	return &DBCompany{
		ID:      c.ID,
		Name:    c.Name,
		Slug:    c.Slug,
		OwnerID: c.OwnerID,
		Address: c.Address,
		Logo:    c.Logo,
		Phone:   c.Phone,
		Email:   c.Email,
		Website: c.Website,
	}
}

func companyToDomain(c *DBCompany) *domain.Company {
	return &domain.Company{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		OwnerID:   c.OwnerID,
		Address:   c.Address,
		Logo:      c.Logo,
		Phone:     c.Phone,
		Email:     c.Email,
		Website:   c.Website,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
