package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrEmployeeInactive   = errors.New("employee is not active")
	ErrEmployeeNotFound   = errors.New("employee not found")
)

// OTP errors
var (
	ErrOTPExpired = errors.New("otp has expired")
	ErrOTPInvalid = errors.New("invalid otp code")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Company errors
var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrSlugTaken       = errors.New("company slug already in use")
	ErrAlreadyAssigned = errors.New("employee already assigned to a company")
	ErrNoCompany       = errors.New("employee is not assigned to a company")
	ErrCompanyMismatch = errors.New("employee does not belong to this company")
)

// Shift errors
var (
	ErrShiftNotFound     = errors.New("shift not found")
	ErrShiftHasEmployees = errors.New("shift has employees assigned")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)

// Cache errors
var (
	ErrCacheMiss = errors.New("cache miss")
)
