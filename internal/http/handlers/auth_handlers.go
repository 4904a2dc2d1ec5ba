package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// identityKey is the gin context key the auth middleware stores the
// resolved identity under.
const identityKey = "identity"

// IdentityFrom returns the authenticated identity set by the auth
// middleware, or nil when the request is unauthenticated.
func IdentityFrom(c *gin.Context) *domain.AuthIdentity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, ok := v.(*domain.AuthIdentity)
	if !ok {
		return nil
	}
	return identity
}

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"fname" binding:"required"`
	LastName  string `json:"lname" binding:"required"`
}

// VerifyEmailRequest represents email verification request
type VerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RequestOTPRequest represents a phone OTP request. Phone numbers are
// accepted with or without a country prefix.
type RequestOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=10,max=15"`
}

// VerifyOTPRequest represents phone OTP verification request
type VerifyOTPRequest struct {
	Phone string `json:"phone" binding:"required,min=10,max=15"`
	OTP   string `json:"otp" binding:"required,len=6"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	_, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			respondError(c, http.StatusBadRequest, "User with this email already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond(c, http.StatusOK, "User verification OTP sent to email, please check your email and enter the OTP to verify your email address", nil)
}

// VerifyEmail handles email OTP verification
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.authSvc.VerifyEmail(c.Request.Context(), req.Email, req.OTP)
	if err != nil {
		// An expired challenge and a wrong code share one response so a
		// caller cannot tell which state it hit.
		switch {
		case errors.Is(err, domain.ErrOTPExpired), errors.Is(err, domain.ErrOTPInvalid):
			respondError(c, http.StatusBadRequest, "OTP has expired or is invalid. Please request a new OTP.")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond(c, http.StatusOK, "Email verified successfully, you can now login to your account", nil)
}

// Login handles email and password login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "Email or password is incorrect")
		case errors.Is(err, domain.ErrEmailNotVerified):
			respondError(c, http.StatusUnauthorized, "Email not verified, please verify your email to login")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	role := domain.RoleEmployee
	companyID := ""
	if result.Employee != nil {
		role = result.Employee.Role
		companyID = result.Employee.CompanyID
	}
	respond(c, http.StatusOK, "User logged in successfully", gin.H{
		"accessToken": result.SessionToken,
		"role":        role,
		"companyId":   companyID,
	})
}

// RequestOTP handles a phone login OTP request. The response does not
// reveal whether the phone number is known.
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	var req RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.authSvc.RequestOTP(c.Request.Context(), req.Phone); err != nil {
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles phone OTP verification and issues tokens
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), req.Phone, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOTPExpired), errors.Is(err, domain.ErrOTPInvalid):
			respondError(c, http.StatusBadRequest, "OTP has expired or is invalid. Please request a new OTP.")
		default:
			respondError(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	respond(c, http.StatusOK, "Phone number verified successfully", gin.H{
		"accessToken":  result.AccessToken,
		"refreshToken": result.RefreshToken,
		"expiresIn":    result.ExpiresIn,
		"employee":     result.Employee,
	})
}

// Me returns the authenticated identity
func (h *AuthHandlers) Me(c *gin.Context) {
	identity := IdentityFrom(c)
	if identity == nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	respond(c, http.StatusOK, "User fetched successfully", gin.H{
		"user":     identity.User,
		"employee": identity.Employee,
	})
}
