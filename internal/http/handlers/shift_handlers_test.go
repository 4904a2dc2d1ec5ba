package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rohitchirag97/HazriPro-Server/domain"
	"github.com/rohitchirag97/HazriPro-Server/internal/mocks"
)

func TestShiftHandlers_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		shiftSvc := mocks.NewMockShiftService()
		var created *domain.Shift
		shiftSvc.CreateFunc = func(ctx context.Context, identity *domain.AuthIdentity, shift *domain.Shift) (*domain.Shift, error) {
			shift.ID = "shift-1"
			shift.CompanyID = identity.Employee.CompanyID
			created = shift
			return shift, nil
		}
		h := NewShiftHandlers(shiftSvc)

		w := companyRequest(t, h.Create, testIdentity(), http.MethodPost, "/create", "/create", gin.H{
			"name":      "Morning",
			"startTime": "2026-01-01T09:00:00Z",
			"endTime":   "2026-01-01T17:00:00Z",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if created == nil || !created.StartTime.Equal(time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected shift %+v", created)
		}

		body := decodeBody(t, w)
		if body["message"] != "Shift created successfully" {
			t.Errorf("unexpected message %q", body["message"])
		}
		shift := body["data"].(map[string]any)["shift"].(map[string]any)
		if shift["companyId"] != "company-1" {
			t.Errorf("unexpected shift %v", shift)
		}
	})

	t.Run("missing times rejected", func(t *testing.T) {
		h := NewShiftHandlers(mocks.NewMockShiftService())
		w := companyRequest(t, h.Create, testIdentity(), http.MethodPost, "/create", "/create", gin.H{"name": "Morning"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Validation failed" {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("not the owner", func(t *testing.T) {
		shiftSvc := mocks.NewMockShiftService()
		shiftSvc.CreateFunc = func(ctx context.Context, identity *domain.AuthIdentity, shift *domain.Shift) (*domain.Shift, error) {
			return nil, domain.ErrInsufficientRole
		}
		h := NewShiftHandlers(shiftSvc)

		w := companyRequest(t, h.Create, testIdentity(), http.MethodPost, "/create", "/create", gin.H{
			"name":      "Morning",
			"startTime": "2026-01-01T09:00:00Z",
			"endTime":   "2026-01-01T17:00:00Z",
		})
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "You are not authorized to create this shift" {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})
}

func TestShiftHandlers_List(t *testing.T) {
	shiftSvc := mocks.NewMockShiftService()
	shiftSvc.ListFunc = func(ctx context.Context, identity *domain.AuthIdentity) ([]*domain.Shift, error) {
		return []*domain.Shift{
			{ID: "shift-1", CompanyID: "company-1", Name: "Morning"},
			{ID: "shift-2", CompanyID: "company-1", Name: "Night"},
		}, nil
	}
	h := NewShiftHandlers(shiftSvc)

	w := companyRequest(t, h.List, testIdentity(), http.MethodGet, "/get", "/get", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["message"] != "Shifts fetched successfully" {
		t.Errorf("unexpected message %q", body["message"])
	}
	shifts := body["data"].(map[string]any)["shifts"].([]any)
	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}
}

func TestShiftHandlers_Get(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		shiftSvc := mocks.NewMockShiftService()
		shiftSvc.GetFunc = func(ctx context.Context, identity *domain.AuthIdentity, shiftID string) (*domain.Shift, error) {
			return &domain.Shift{ID: shiftID, CompanyID: "company-1", Name: "Morning"}, nil
		}
		h := NewShiftHandlers(shiftSvc)

		w := companyRequest(t, h.Get, testIdentity(), http.MethodGet, "/get/:id", "/get/shift-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		shift := decodeBody(t, w)["data"].(map[string]any)["shift"].(map[string]any)
		if shift["id"] != "shift-1" {
			t.Errorf("unexpected shift %v", shift)
		}
	})

	t.Run("not found", func(t *testing.T) {
		h := NewShiftHandlers(mocks.NewMockShiftService())
		w := companyRequest(t, h.Get, testIdentity(), http.MethodGet, "/get/:id", "/get/missing", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Shift not found" {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})
}

func TestShiftHandlers_Update(t *testing.T) {
	shiftSvc := mocks.NewMockShiftService()
	var gotID string
	shiftSvc.UpdateFunc = func(ctx context.Context, identity *domain.AuthIdentity, shiftID string, changes *domain.Shift) (*domain.Shift, error) {
		gotID = shiftID
		return &domain.Shift{ID: shiftID, CompanyID: "company-1", Name: changes.Name}, nil
	}
	h := NewShiftHandlers(shiftSvc)

	w := companyRequest(t, h.Update, testIdentity(), http.MethodPut, "/update/:id", "/update/shift-1", gin.H{"name": "Early Morning"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if gotID != "shift-1" {
		t.Errorf("expected id shift-1, got %q", gotID)
	}
	shift := decodeBody(t, w)["data"].(map[string]any)["shift"].(map[string]any)
	if shift["name"] != "Early Morning" {
		t.Errorf("unexpected shift %v", shift)
	}
}

func TestShiftHandlers_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		shiftSvc := mocks.NewMockShiftService()
		shiftSvc.DeleteFunc = func(ctx context.Context, identity *domain.AuthIdentity, shiftID string) (*domain.Shift, error) {
			return &domain.Shift{ID: shiftID, CompanyID: "company-1", Name: "Morning"}, nil
		}
		h := NewShiftHandlers(shiftSvc)

		w := companyRequest(t, h.Delete, testIdentity(), http.MethodDelete, "/delete/:id", "/delete/shift-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if decodeBody(t, w)["message"] != "Shift deleted successfully" {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("shift still staffed", func(t *testing.T) {
		shiftSvc := mocks.NewMockShiftService()
		shiftSvc.DeleteFunc = func(ctx context.Context, identity *domain.AuthIdentity, shiftID string) (*domain.Shift, error) {
			return nil, domain.ErrShiftHasEmployees
		}
		h := NewShiftHandlers(shiftSvc)

		w := companyRequest(t, h.Delete, testIdentity(), http.MethodDelete, "/delete/:id", "/delete/shift-1", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if decodeBody(t, w)["message"] != "Shift has employees assigned to it, please remove them first" {
			t.Errorf("unexpected body %s", w.Body.String())
		}
	})
}
