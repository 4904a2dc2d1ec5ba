package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// CompanyServiceImpl implements domain.CompanyService. Reads go through
// the company cache; every mutation invalidates the affected cache keys
// before returning.
type CompanyServiceImpl struct {
	companyRepo   domain.CompanyRepository
	employeeRepo  domain.EmployeeRepository
	companyCache  domain.CompanyCache
	identityCache domain.IdentityCache
	logger        *zap.Logger
}

// NewCompanyService creates a new company service
func NewCompanyService(
	companyRepo domain.CompanyRepository,
	employeeRepo domain.EmployeeRepository,
	companyCache domain.CompanyCache,
	identityCache domain.IdentityCache,
	logger *zap.Logger,
) domain.CompanyService {
	return &CompanyServiceImpl{
		companyRepo:   companyRepo,
		employeeRepo:  employeeRepo,
		companyCache:  companyCache,
		identityCache: identityCache,
		logger:        logger,
	}
}

// Create implements domain.CompanyService. The creating employee becomes
// the company's OWNER.
func (s *CompanyServiceImpl) Create(ctx context.Context, identity *domain.AuthIdentity, company *domain.Company, isEmployee bool) (*domain.Company, error) {
	employee := identity.Employee
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if employee.CompanyID != "" {
		return nil, domain.ErrAlreadyAssigned
	}

	if _, err := s.companyRepo.FindBySlug(ctx, company.Slug); err == nil {
		return nil, domain.ErrSlugTaken
	} else if !errors.Is(err, domain.ErrCompanyNotFound) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	company.OwnerID = identity.ID()
	// The unique index still decides the race between two creates that
	// both passed the pre-check.
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	employee.CompanyID = company.ID
	employee.Role = domain.RoleOwner
	employee.Status = domain.StatusActive
	employee.IsEmployee = isEmployee
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to assign employee to company: %w", err)
	}

	if err := s.identityCache.Delete(ctx, identity.ID()); err != nil {
		return nil, fmt.Errorf("failed to invalidate identity cache: %w", err)
	}
	if err := s.companyCache.Invalidate(ctx, company.ID, company.Slug); err != nil {
		return nil, fmt.Errorf("failed to invalidate company cache: %w", err)
	}

	s.logger.Info("company created",
		zap.String("event", string(domain.CompanyCreatedEvent)),
		zap.String("company_id", company.ID),
		zap.String("slug", company.Slug),
	)
	return company, nil
}

// GetMine implements domain.CompanyService
func (s *CompanyServiceImpl) GetMine(ctx context.Context, identity *domain.AuthIdentity) (*domain.Company, error) {
	employee := identity.Employee
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if employee.CompanyID == "" {
		return nil, domain.ErrNoCompany
	}

	company, err := s.companyCache.Get(ctx, employee.CompanyID)
	if err == nil {
		return company, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn("company cache read failed", zap.Error(err))
	}

	company, err = s.companyRepo.FindByID(ctx, employee.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := s.companyCache.Set(ctx, company); err != nil {
		s.logger.Warn("company cache write failed", zap.Error(err))
	}
	return company, nil
}

// GetBySlug implements domain.CompanyService
func (s *CompanyServiceImpl) GetBySlug(ctx context.Context, identity *domain.AuthIdentity, slug string) (*domain.Company, error) {
	employee := identity.Employee
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}

	company, err := s.companyCache.GetBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.logger.Warn("company cache read failed", zap.Error(err))
		}
		company, err = s.companyRepo.FindBySlug(ctx, slug)
		if err != nil {
			return nil, err
		}
		if err := s.companyCache.Set(ctx, company); err != nil {
			s.logger.Warn("company cache write failed", zap.Error(err))
		}
	}

	if employee.CompanyID != "" && employee.CompanyID != company.ID {
		return nil, domain.ErrCompanyMismatch
	}
	return company, nil
}

// Update implements domain.CompanyService. Renaming the slug re-checks
// uniqueness and invalidates both the old and the new slug keys.
func (s *CompanyServiceImpl) Update(ctx context.Context, identity *domain.AuthIdentity, slug string, changes *domain.Company) (*domain.Company, error) {
	employee := identity.Employee
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if employee.Role != domain.RoleOwner {
		return nil, domain.ErrInsufficientRole
	}

	company, err := s.companyRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if employee.CompanyID != "" && employee.CompanyID != company.ID {
		return nil, domain.ErrCompanyMismatch
	}

	if changes.Slug != "" && changes.Slug != slug {
		if _, err := s.companyRepo.FindBySlug(ctx, changes.Slug); err == nil {
			return nil, domain.ErrSlugTaken
		} else if !errors.Is(err, domain.ErrCompanyNotFound) {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		company.Slug = changes.Slug
	}
	if changes.Name != "" {
		company.Name = changes.Name
	}
	if changes.Address != "" {
		company.Address = changes.Address
	}
	if changes.Logo != "" {
		company.Logo = changes.Logo
	}
	if changes.Phone != "" {
		company.Phone = changes.Phone
	}
	if changes.Email != "" {
		company.Email = changes.Email
	}
	if changes.Website != "" {
		company.Website = changes.Website
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}

	if err := s.companyCache.Invalidate(ctx, company.ID, slug); err != nil {
		return nil, fmt.Errorf("failed to invalidate company cache: %w", err)
	}
	if company.Slug != slug {
		if err := s.companyCache.Invalidate(ctx, company.ID, company.Slug); err != nil {
			return nil, fmt.Errorf("failed to invalidate company cache: %w", err)
		}
	}

	s.logger.Info("company updated",
		zap.String("event", string(domain.CompanyUpdatedEvent)),
		zap.String("company_id", company.ID),
	)
	return company, nil
}

// Delete implements domain.CompanyService. The cascade clears employees'
// company references and removes shifts and departments; every former
// employee's cached identity is invalidated before the call returns.
func (s *CompanyServiceImpl) Delete(ctx context.Context, identity *domain.AuthIdentity, slug string) (*domain.Company, error) {
	employee := identity.Employee
	if employee == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if employee.Role != domain.RoleOwner {
		return nil, domain.ErrInsufficientRole
	}

	company, err := s.companyRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if employee.CompanyID != "" && employee.CompanyID != company.ID {
		return nil, domain.ErrCompanyMismatch
	}

	employees, err := s.employeeRepo.ListByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list company employees: %w", err)
	}

	if err := s.companyRepo.Delete(ctx, company.ID); err != nil {
		return nil, fmt.Errorf("failed to delete company: %w", err)
	}

	if err := s.companyCache.Invalidate(ctx, company.ID, company.Slug); err != nil {
		return nil, fmt.Errorf("failed to invalidate company cache: %w", err)
	}
	for _, emp := range employees {
		key := emp.UserID
		if key == "" {
			key = emp.ID
		}
		if err := s.identityCache.Delete(ctx, key); err != nil {
			return nil, fmt.Errorf("failed to invalidate identity cache: %w", err)
		}
	}

	s.logger.Info("company deleted",
		zap.String("event", string(domain.CompanyDeletedEvent)),
		zap.String("company_id", company.ID),
		zap.Int("employees_detached", len(employees)),
	)
	return company, nil
}
