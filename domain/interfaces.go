package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	MarkVerified(ctx context.Context, userID string) error
}

// EmployeeRepository defines employee data access operations
type EmployeeRepository interface {
	Create(ctx context.Context, employee *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByPhone(ctx context.Context, phone string) (*Employee, error)
	FindByUserID(ctx context.Context, userID string) (*Employee, error)
	ListByCompany(ctx context.Context, companyID string) ([]*Employee, error)
	CountByShift(ctx context.Context, shiftID string) (int64, error)
	Update(ctx context.Context, employee *Employee) error
}

// CompanyRepository defines company data access operations.
// Delete detaches employees and removes shifts and departments in the
// same transaction as the company row.
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	FindByID(ctx context.Context, id string) (*Company, error)
	FindBySlug(ctx context.Context, slug string) (*Company, error)
	FindByOwner(ctx context.Context, ownerID string) (*Company, error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id string) error
}

// ShiftRepository defines shift data access operations
type ShiftRepository interface {
	Create(ctx context.Context, shift *Shift) error
	FindByID(ctx context.Context, id string) (*Shift, error)
	ListByCompany(ctx context.Context, companyID string) ([]*Shift, error)
	Update(ctx context.Context, shift *Shift) error
	Delete(ctx context.Context, id string) error
}

// OTPRepository stores hashed OTP challenges with a bounded lifetime.
// A write overwrites any live challenge under the same key; Get on a
// missing or expired key returns ErrOTPExpired.
type OTPRepository interface {
	Save(ctx context.Context, key, hash string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// IdentityCache is a read-through mirror of resolved identities keyed by
// user id. Get returns ErrCacheMiss when no entry exists. Delete on a
// missing key is a no-op.
type IdentityCache interface {
	Get(ctx context.Context, userID string) (*AuthIdentity, error)
	Set(ctx context.Context, identity *AuthIdentity) error
	Delete(ctx context.Context, userID string) error
}

// CompanyCache mirrors company records by id and by slug
type CompanyCache interface {
	Get(ctx context.Context, companyID string) (*Company, error)
	GetBySlug(ctx context.Context, slug string) (*Company, error)
	Set(ctx context.Context, company *Company) error
	Invalidate(ctx context.Context, companyID, slug string) error
}

// OTPQueue enqueues OTP dispatch jobs for asynchronous processing.
// Enqueue must be durable: a nil return means the job will eventually be
// delivered to a worker at least once.
type OTPQueue interface {
	Enqueue(ctx context.Context, job *OTPJob) error
}

// OTPService defines OTP issuance and verification
type OTPService interface {
	IssuePhoneOTP(ctx context.Context, phone string) error
	IssueEmailOTP(ctx context.Context, user *User) error
	VerifyPhoneOTP(ctx context.Context, phone, code string) error
	VerifyEmailOTP(ctx context.Context, userID, code string) error
}

// AuthService defines authentication business logic
type AuthService interface {
	Register(ctx context.Context, email, password, firstName, lastName string) (*User, error)
	VerifyEmail(ctx context.Context, email, code string) error
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	RequestOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*AuthResult, error)
}

// CompanyService defines company business logic
type CompanyService interface {
	Create(ctx context.Context, identity *AuthIdentity, company *Company, isEmployee bool) (*Company, error)
	GetMine(ctx context.Context, identity *AuthIdentity) (*Company, error)
	GetBySlug(ctx context.Context, identity *AuthIdentity, slug string) (*Company, error)
	Update(ctx context.Context, identity *AuthIdentity, slug string, changes *Company) (*Company, error)
	Delete(ctx context.Context, identity *AuthIdentity, slug string) (*Company, error)
}

// ShiftService defines shift business logic
type ShiftService interface {
	Create(ctx context.Context, identity *AuthIdentity, shift *Shift) (*Shift, error)
	Get(ctx context.Context, identity *AuthIdentity, shiftID string) (*Shift, error)
	List(ctx context.Context, identity *AuthIdentity) ([]*Shift, error)
	Update(ctx context.Context, identity *AuthIdentity, shiftID string, changes *Shift) (*Shift, error)
	Delete(ctx context.Context, identity *AuthIdentity, shiftID string) (*Shift, error)
}

// PasswordService defines one-way hashing for passwords and OTP codes
type PasswordService interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

// TokenService defines token operations
type TokenService interface {
	GenerateAccessToken(claims *TokenClaims) (string, error)
	GenerateRefreshToken(claims *TokenClaims) (string, error)
	GenerateSessionToken(claims *TokenClaims) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines outbound delivery operations
type NotificationService interface {
	SendSMS(to, message string) error
	SendEmail(to, subject, htmlBody string) error
}

// IdentityResolver loads a full identity from the source of truth,
// bypassing any cache
type IdentityResolver interface {
	Resolve(ctx context.Context, userID string) (*AuthIdentity, error)
}

// TokenClaims represents JWT token claims
type TokenClaims struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Role       string `json:"role,omitempty"`
	CompanyID  string `json:"company_id,omitempty"`
	IsEmployee bool   `json:"is_employee,omitempty"`
	Kind       string `json:"typ"`
	IssuedAt   int64  `json:"iat"`
	ExpiresAt  int64  `json:"exp"`
}

// Token kinds
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
	TokenSession = "session"
)
