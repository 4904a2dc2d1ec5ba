package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// CompanyHandlers handles company HTTP requests
type CompanyHandlers struct {
	companySvc domain.CompanyService
}

// NewCompanyHandlers creates new company handlers
func NewCompanyHandlers(companySvc domain.CompanyService) *CompanyHandlers {
	return &CompanyHandlers{companySvc: companySvc}
}

// CreateCompanyRequest represents company creation request
type CreateCompanyRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Slug       string `json:"slug" binding:"required,max=255"`
	Address    string `json:"address"`
	Logo       string `json:"logo"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"omitempty,email"`
	Website    string `json:"website"`
	IsEmployee bool   `json:"isEmployee"`
}

// UpdateCompanyRequest represents company update request
type UpdateCompanyRequest struct {
	Name    string `json:"name" binding:"omitempty,max=255"`
	Slug    string `json:"slug" binding:"omitempty,max=255"`
	Address string `json:"address"`
	Logo    string `json:"logo"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
	Website string `json:"website"`
}

// Create handles company creation
func (h *CompanyHandlers) Create(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	company, err := h.companySvc.Create(c.Request.Context(), identity, &domain.Company{
		Name:    req.Name,
		Slug:    req.Slug,
		Address: req.Address,
		Logo:    req.Logo,
		Phone:   req.Phone,
		Email:   req.Email,
		Website: req.Website,
	}, req.IsEmployee)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			respondError(c, http.StatusUnauthorized, "Employee not found")
		case errors.Is(err, domain.ErrAlreadyAssigned):
			respondError(c, http.StatusBadRequest, "User already assigned to a company, please contact support")
		case errors.Is(err, domain.ErrSlugTaken):
			respondError(c, http.StatusBadRequest, "Company with this slug already exists, please use a different slug")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond(c, http.StatusOK, "Company created successfully", gin.H{"company": company})
}

// GetMine returns the caller's company
func (h *CompanyHandlers) GetMine(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	company, err := h.companySvc.GetMine(c.Request.Context(), identity)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			respondError(c, http.StatusUnauthorized, "Employee not found")
		case errors.Is(err, domain.ErrNoCompany):
			respondError(c, http.StatusBadRequest, "User is not assigned to a company, please contact support")
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondError(c, http.StatusNotFound, "Company not found")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond(c, http.StatusOK, "Company fetched successfully", gin.H{"company": company})
}

// GetBySlug returns a company by slug, scoped to the caller's tenant
func (h *CompanyHandlers) GetBySlug(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		respondError(c, http.StatusBadRequest, "Slug is required")
		return
	}

	company, err := h.companySvc.GetBySlug(c.Request.Context(), identity, slug)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			respondError(c, http.StatusUnauthorized, "Employee not found")
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondError(c, http.StatusNotFound, "Company not found")
		case errors.Is(err, domain.ErrCompanyMismatch):
			respondError(c, http.StatusUnauthorized, "User is not authorized to access this company")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond(c, http.StatusOK, "Company fetched successfully", gin.H{"company": company})
}

// Update handles company update
func (h *CompanyHandlers) Update(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		respondError(c, http.StatusBadRequest, "Slug is required")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	company, err := h.companySvc.Update(c.Request.Context(), identity, slug, &domain.Company{
		Name:    req.Name,
		Slug:    req.Slug,
		Address: req.Address,
		Logo:    req.Logo,
		Phone:   req.Phone,
		Email:   req.Email,
		Website: req.Website,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			respondError(c, http.StatusUnauthorized, "Employee not found")
		case errors.Is(err, domain.ErrInsufficientRole):
			respondError(c, http.StatusUnauthorized, "You are not authorized to update this company")
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondError(c, http.StatusNotFound, "Company not found")
		case errors.Is(err, domain.ErrCompanyMismatch):
			respondError(c, http.StatusUnauthorized, "User is not authorized to update this company")
		case errors.Is(err, domain.ErrSlugTaken):
			respondError(c, http.StatusBadRequest, "Company with this slug already exists, please use a different slug")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond(c, http.StatusOK, "Company updated successfully", gin.H{"company": company})
}

// Delete handles company deletion
func (h *CompanyHandlers) Delete(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		respondError(c, http.StatusBadRequest, "Slug is required")
		return
	}

	company, err := h.companySvc.Delete(c.Request.Context(), identity, slug)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmployeeNotFound):
			respondError(c, http.StatusUnauthorized, "Employee not found")
		case errors.Is(err, domain.ErrInsufficientRole):
			respondError(c, http.StatusUnauthorized, "You are not authorized to delete this company")
		case errors.Is(err, domain.ErrCompanyNotFound):
			respondError(c, http.StatusNotFound, "Company not found")
		case errors.Is(err, domain.ErrCompanyMismatch):
			respondError(c, http.StatusUnauthorized, "User is not authorized to delete this company")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond(c, http.StatusOK, "Company deleted successfully", gin.H{"company": company})
}
