package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// IdentityResolverImpl implements domain.IdentityResolver against the
// relational store. The auth middleware consults it on cache misses.
type IdentityResolverImpl struct {
	userRepo     domain.UserRepository
	employeeRepo domain.EmployeeRepository
}

// NewIdentityResolver creates a new identity resolver
func NewIdentityResolver(userRepo domain.UserRepository, employeeRepo domain.EmployeeRepository) domain.IdentityResolver {
	return &IdentityResolverImpl{userRepo: userRepo, employeeRepo: employeeRepo}
}

// Resolve implements domain.IdentityResolver. The subject id is a user id
// for email accounts and an employee id for phone-only logins.
func (r *IdentityResolverImpl) Resolve(ctx context.Context, subjectID string) (*domain.AuthIdentity, error) {
	user, err := r.userRepo.FindByID(ctx, subjectID)
	if err == nil {
		identity := &domain.AuthIdentity{User: user}
		employee, err := r.employeeRepo.FindByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, fmt.Errorf("failed to load employee: %w", err)
		}
		identity.Employee = employee
		return identity, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	employee, err := r.employeeRepo.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load employee: %w", err)
	}
	return &domain.AuthIdentity{Employee: employee}, nil
}
