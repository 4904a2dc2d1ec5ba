package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

func TestShiftRepositoryImpl_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShiftRepository(db)
	ctx := context.Background()

	shift := &domain.Shift{
		CompanyID: "company-1",
		Name:      "Morning",
		StartTime: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 1, 1, 17, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, shift); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if shift.ID == "" {
		t.Fatal("create must assign an id")
	}

	got, err := repo.FindByID(ctx, shift.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if got.Name != "Morning" || got.CompanyID != "company-1" {
		t.Errorf("unexpected shift %+v", got)
	}

	got.Name = "Early Morning"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	updated, err := repo.FindByID(ctx, shift.ID)
	if err != nil {
		t.Fatalf("find after update failed: %v", err)
	}
	if updated.Name != "Early Morning" {
		t.Errorf("unexpected shift %+v", updated)
	}

	if err := repo.Delete(ctx, shift.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(ctx, shift.ID); !errors.Is(err, domain.ErrShiftNotFound) {
		t.Fatalf("expected ErrShiftNotFound, got %v", err)
	}
}

func TestShiftRepositoryImpl_ListByCompany(t *testing.T) {
	db := setupTestDB(t)
	repo := NewShiftRepository(db)
	ctx := context.Background()

	for _, s := range []*domain.Shift{
		{CompanyID: "company-1", Name: "Morning"},
		{CompanyID: "company-1", Name: "Night"},
		{CompanyID: "company-2", Name: "Morning"},
	} {
		if err := repo.Create(ctx, s); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	listed, err := repo.ListByCompany(ctx, "company-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(listed))
	}

	empty, err := repo.ListByCompany(ctx, "company-3")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no shifts, got %d", len(empty))
	}
}
