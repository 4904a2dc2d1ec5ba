package repositories

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&DBUser{}, &DBEmployee{}, &DBCompany{}, &DBShift{}, &DBDepartment{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func TestCompanyRepositoryImpl_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	company := &domain.Company{Name: "Acme", Slug: "acme", OwnerID: "user-1"}
	if err := repo.Create(ctx, company); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if company.ID == "" {
		t.Fatal("create must assign an id")
	}

	byID, err := repo.FindByID(ctx, company.ID)
	if err != nil {
		t.Fatalf("find by id failed: %v", err)
	}
	if byID.Slug != "acme" {
		t.Errorf("unexpected company %+v", byID)
	}

	bySlug, err := repo.FindBySlug(ctx, "acme")
	if err != nil {
		t.Fatalf("find by slug failed: %v", err)
	}
	if bySlug.ID != company.ID {
		t.Errorf("unexpected company %+v", bySlug)
	}

	byOwner, err := repo.FindByOwner(ctx, "user-1")
	if err != nil {
		t.Fatalf("find by owner failed: %v", err)
	}
	if byOwner.ID != company.ID {
		t.Errorf("unexpected company %+v", byOwner)
	}

	if _, err := repo.FindBySlug(ctx, "missing"); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestCompanyRepositoryImpl_DuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.Company{Name: "Acme", Slug: "acme", OwnerID: "user-1"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	err := repo.Create(ctx, &domain.Company{Name: "Other Acme", Slug: "acme", OwnerID: "user-2"})
	if !errors.Is(err, domain.ErrSlugTaken) {
		t.Fatalf("expected ErrSlugTaken from the unique index, got %v", err)
	}
}

func TestCompanyRepositoryImpl_DeleteCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	employeeRepo := NewEmployeeRepository(db)
	ctx := context.Background()

	company := &domain.Company{Name: "Acme", Slug: "acme", OwnerID: "user-1"}
	if err := repo.Create(ctx, company); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	shift := &DBShift{ID: "shift-1", CompanyID: company.ID, Name: "Morning"}
	if err := db.Create(shift).Error; err != nil {
		t.Fatalf("seed shift failed: %v", err)
	}
	dept := &DBDepartment{ID: "dept-1", CompanyID: company.ID, Name: "Packing"}
	if err := db.Create(dept).Error; err != nil {
		t.Fatalf("seed department failed: %v", err)
	}
	employee := &DBEmployee{
		ID:        "emp-1",
		Phone:     "+919876543210",
		Role:      domain.RoleEmployee,
		Status:    domain.StatusActive,
		CompanyID: strPtr(company.ID),
		ShiftID:   strPtr("shift-1"),
	}
	if err := db.Create(employee).Error; err != nil {
		t.Fatalf("seed employee failed: %v", err)
	}

	if err := repo.Delete(ctx, company.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := repo.FindByID(ctx, company.ID); !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("company must be gone, got %v", err)
	}

	var shiftCount int64
	db.Model(&DBShift{}).Where("company_id = ?", company.ID).Count(&shiftCount)
	if shiftCount != 0 {
		t.Errorf("shifts must be deleted with the company, %d left", shiftCount)
	}

	var deptCount int64
	db.Model(&DBDepartment{}).Where("company_id = ?", company.ID).Count(&deptCount)
	if deptCount != 0 {
		t.Errorf("departments must be deleted with the company, %d left", deptCount)
	}

	// Employees survive but lose the company and shift references
	kept, err := employeeRepo.FindByPhone(ctx, "+919876543210")
	if err != nil {
		t.Fatalf("employee must survive the cascade: %v", err)
	}
	if kept.CompanyID != "" {
		t.Errorf("employee company reference must be cleared, got %q", kept.CompanyID)
	}
	if kept.ShiftID != "" {
		t.Errorf("employee shift reference must be cleared, got %q", kept.ShiftID)
	}
}

func TestCompanyRepositoryImpl_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)
	ctx := context.Background()

	company := &domain.Company{Name: "Acme", Slug: "acme", OwnerID: "user-1"}
	if err := repo.Create(ctx, company); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	company.Name = "Acme Corp"
	company.Slug = "acme-corp"
	if err := repo.Update(ctx, company); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := repo.FindBySlug(ctx, "acme-corp")
	if err != nil {
		t.Fatalf("find after update failed: %v", err)
	}
	if got.Name != "Acme Corp" {
		t.Errorf("unexpected company %+v", got)
	}
}
