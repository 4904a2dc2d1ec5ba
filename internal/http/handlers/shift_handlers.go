package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// ShiftHandlers handles shift HTTP requests
type ShiftHandlers struct {
	shiftSvc domain.ShiftService
}

// NewShiftHandlers creates new shift handlers
func NewShiftHandlers(shiftSvc domain.ShiftService) *ShiftHandlers {
	return &ShiftHandlers{shiftSvc: shiftSvc}
}

// CreateShiftRequest represents shift creation request
type CreateShiftRequest struct {
	Name      string    `json:"name" binding:"required,max=255"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// UpdateShiftRequest represents shift update request
type UpdateShiftRequest struct {
	Name      string    `json:"name" binding:"omitempty,max=255"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func respondShiftError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, domain.ErrEmployeeNotFound):
		respondError(c, http.StatusUnauthorized, "Employee not found")
	case errors.Is(err, domain.ErrNoCompany):
		respondError(c, http.StatusBadRequest, "User is not assigned to a company, please contact support")
	case errors.Is(err, domain.ErrInsufficientRole):
		respondError(c, http.StatusForbidden, "You are not authorized to "+action+" this shift")
	case errors.Is(err, domain.ErrShiftNotFound):
		respondError(c, http.StatusNotFound, "Shift not found")
	case errors.Is(err, domain.ErrShiftHasEmployees):
		respondError(c, http.StatusBadRequest, "Shift has employees assigned to it, please remove them first")
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// Create handles shift creation
func (h *ShiftHandlers) Create(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	shift, err := h.shiftSvc.Create(c.Request.Context(), identity, &domain.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		respondShiftError(c, err, "create")
		return
	}

	respond(c, http.StatusOK, "Shift created successfully", gin.H{"shift": shift})
}

// List returns all shifts of the caller's company
func (h *ShiftHandlers) List(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	shifts, err := h.shiftSvc.List(c.Request.Context(), identity)
	if err != nil {
		respondShiftError(c, err, "list")
		return
	}

	respond(c, http.StatusOK, "Shifts fetched successfully", gin.H{"shifts": shifts})
}

// Get returns a single shift by id
func (h *ShiftHandlers) Get(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Shift ID is required")
		return
	}

	shift, err := h.shiftSvc.Get(c.Request.Context(), identity, id)
	if err != nil {
		respondShiftError(c, err, "access")
		return
	}

	respond(c, http.StatusOK, "Shift fetched successfully", gin.H{"shift": shift})
}

// Update handles shift update
func (h *ShiftHandlers) Update(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Shift ID is required")
		return
	}

	var req UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	shift, err := h.shiftSvc.Update(c.Request.Context(), identity, id, &domain.Shift{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		respondShiftError(c, err, "update")
		return
	}

	respond(c, http.StatusOK, "Shift updated successfully", gin.H{"shift": shift})
}

// Delete handles shift deletion
func (h *ShiftHandlers) Delete(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id := c.Param("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "Shift ID is required")
		return
	}

	shift, err := h.shiftSvc.Delete(c.Request.Context(), identity, id)
	if err != nil {
		respondShiftError(c, err, "delete")
		return
	}

	respond(c, http.StatusOK, "Shift deleted successfully", gin.H{"shift": shift})
}
