package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/rohitchirag97/HazriPro-Server/domain"
	"github.com/rohitchirag97/HazriPro-Server/internal/mocks"
)

func newShiftSvc(shiftRepo *mocks.MockShiftRepository, employeeRepo *mocks.MockEmployeeRepository) domain.ShiftService {
	return NewShiftService(shiftRepo, employeeRepo, zap.NewNop())
}

func morningShift() *domain.Shift {
	return &domain.Shift{
		ID:        "shift-1",
		CompanyID: "company-1",
		Name:      "Morning",
		StartTime: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 1, 1, 17, 0, 0, 0, time.UTC),
	}
}

func TestShiftServiceImpl_Create(t *testing.T) {
	t.Run("owner creates a shift in their company", func(t *testing.T) {
		shiftRepo := mocks.NewMockShiftRepository()
		var created *domain.Shift
		shiftRepo.CreateFunc = func(ctx context.Context, shift *domain.Shift) error {
			shift.ID = "shift-1"
			created = shift
			return nil
		}
		svc := newShiftSvc(shiftRepo, mocks.NewMockEmployeeRepository())

		shift, err := svc.Create(context.Background(), ownerIdentity(), &domain.Shift{Name: "Morning"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.CompanyID != "company-1" {
			t.Errorf("shift must be scoped to the caller's company, got %q", created.CompanyID)
		}
		if shift.ID != "shift-1" {
			t.Errorf("unexpected shift %+v", shift)
		}
	})

	t.Run("plain employee refused", func(t *testing.T) {
		identity := ownerIdentity()
		identity.Employee.Role = domain.RoleEmployee
		svc := newShiftSvc(mocks.NewMockShiftRepository(), mocks.NewMockEmployeeRepository())

		if _, err := svc.Create(context.Background(), identity, &domain.Shift{Name: "Morning"}); !errors.Is(err, domain.ErrInsufficientRole) {
			t.Fatalf("expected ErrInsufficientRole, got %v", err)
		}
	})

	t.Run("unassigned employee refused", func(t *testing.T) {
		svc := newShiftSvc(mocks.NewMockShiftRepository(), mocks.NewMockEmployeeRepository())

		if _, err := svc.Create(context.Background(), unassignedIdentity(), &domain.Shift{Name: "Morning"}); !errors.Is(err, domain.ErrNoCompany) {
			t.Fatalf("expected ErrNoCompany, got %v", err)
		}
	})
}

func TestShiftServiceImpl_Get(t *testing.T) {
	t.Run("foreign company's shift reads as not found", func(t *testing.T) {
		shiftRepo := mocks.NewMockShiftRepository()
		shiftRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Shift, error) {
			s := morningShift()
			s.CompanyID = "company-2"
			return s, nil
		}
		svc := newShiftSvc(shiftRepo, mocks.NewMockEmployeeRepository())

		if _, err := svc.Get(context.Background(), ownerIdentity(), "shift-1"); !errors.Is(err, domain.ErrShiftNotFound) {
			t.Fatalf("expected ErrShiftNotFound, got %v", err)
		}
	})

	t.Run("employees can read shifts", func(t *testing.T) {
		shiftRepo := mocks.NewMockShiftRepository()
		shiftRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Shift, error) {
			return morningShift(), nil
		}
		identity := ownerIdentity()
		identity.Employee.Role = domain.RoleEmployee
		svc := newShiftSvc(shiftRepo, mocks.NewMockEmployeeRepository())

		shift, err := svc.Get(context.Background(), identity, "shift-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if shift.Name != "Morning" {
			t.Errorf("unexpected shift %+v", shift)
		}
	})
}

func TestShiftServiceImpl_Update(t *testing.T) {
	shiftRepo := mocks.NewMockShiftRepository()
	shiftRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Shift, error) {
		return morningShift(), nil
	}
	var updated *domain.Shift
	shiftRepo.UpdateFunc = func(ctx context.Context, shift *domain.Shift) error {
		updated = shift
		return nil
	}
	svc := newShiftSvc(shiftRepo, mocks.NewMockEmployeeRepository())

	newEnd := time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC)
	shift, err := svc.Update(context.Background(), ownerIdentity(), "shift-1", &domain.Shift{Name: "Late Morning", EndTime: newEnd})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Late Morning" {
		t.Errorf("name not applied: %+v", updated)
	}
	if !updated.EndTime.Equal(newEnd) {
		t.Errorf("end time not applied: %v", updated.EndTime)
	}
	if updated.StartTime.IsZero() {
		t.Error("unset fields must keep their previous values")
	}
	if shift.ID != "shift-1" {
		t.Errorf("unexpected shift %+v", shift)
	}
}

func TestShiftServiceImpl_Delete(t *testing.T) {
	t.Run("shift with assigned employees refused", func(t *testing.T) {
		shiftRepo := mocks.NewMockShiftRepository()
		shiftRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Shift, error) {
			return morningShift(), nil
		}
		employeeRepo := mocks.NewMockEmployeeRepository()
		employeeRepo.CountByShiftFunc = func(ctx context.Context, shiftID string) (int64, error) {
			return 3, nil
		}
		svc := newShiftSvc(shiftRepo, employeeRepo)

		if _, err := svc.Delete(context.Background(), ownerIdentity(), "shift-1"); !errors.Is(err, domain.ErrShiftHasEmployees) {
			t.Fatalf("expected ErrShiftHasEmployees, got %v", err)
		}
	})

	t.Run("empty shift deleted", func(t *testing.T) {
		shiftRepo := mocks.NewMockShiftRepository()
		shiftRepo.FindByIDFunc = func(ctx context.Context, id string) (*domain.Shift, error) {
			return morningShift(), nil
		}
		deleted := false
		shiftRepo.DeleteFunc = func(ctx context.Context, id string) error {
			deleted = id == "shift-1"
			return nil
		}
		svc := newShiftSvc(shiftRepo, mocks.NewMockEmployeeRepository())

		shift, err := svc.Delete(context.Background(), ownerIdentity(), "shift-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !deleted {
			t.Error("expected repository delete")
		}
		if shift.ID != "shift-1" {
			t.Errorf("deleted shift must be returned, got %+v", shift)
		}
	})
}
