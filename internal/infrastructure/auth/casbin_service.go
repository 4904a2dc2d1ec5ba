package auth

import (
	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

type CasbinService struct{ E *casbin.Enforcer }

func NewCasbinService(db *gorm.DB, modelPath string) (*CasbinService, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(modelPath, adp)
	if err != nil {
		return nil, err
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, err
	}
	return &CasbinService{e}, nil
}

// SeedPolicies installs the default role policies when the store is empty.
// Owners inherit everything employees can do via the grouping rule.
func (s *CasbinService) SeedPolicies() error {
	policies, err := s.E.GetPolicy()
	if err != nil {
		return err
	}
	if len(policies) > 0 {
		return nil
	}

	s.E.AddPolicy("role_employee", "/api/v1/auth/me", "GET")
	s.E.AddPolicy("role_employee", "/api/v1/company/create", "POST")
	s.E.AddPolicy("role_employee", "/api/v1/company/get", "GET")
	s.E.AddPolicy("role_employee", "/api/v1/company/get-by-slug/*", "GET")
	s.E.AddPolicy("role_employee", "/api/v1/shifts/get", "GET")
	s.E.AddPolicy("role_employee", "/api/v1/shifts/get/*", "GET")
	s.E.AddPolicy("role_owner", "/api/v1/company/*", "(GET|POST|PUT|DELETE)")
	s.E.AddPolicy("role_owner", "/api/v1/shifts/*", "(GET|POST|PUT|DELETE)")
	s.E.AddGroupingPolicy("role_owner", "role_employee")

	return s.E.SavePolicy()
}
