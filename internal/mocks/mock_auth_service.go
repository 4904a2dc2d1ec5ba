package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockAuthService implements domain.AuthService interface for testing
type MockAuthService struct {
	RegisterFunc    func(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error)
	VerifyEmailFunc func(ctx context.Context, email, code string) error
	LoginFunc       func(ctx context.Context, email, password string) (*domain.AuthResult, error)
	RequestOTPFunc  func(ctx context.Context, phone string) error
	VerifyOTPFunc   func(ctx context.Context, phone, code string) (*domain.AuthResult, error)
}

var _ domain.AuthService = (*MockAuthService)(nil)

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register registers a new user
func (m *MockAuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password, firstName, lastName)
	}
	return &domain.User{
		ID:        "user-1",
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// VerifyEmail verifies an email OTP
func (m *MockAuthService) VerifyEmail(ctx context.Context, email, code string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, email, code)
	}
	return nil
}

// Login authenticates a user
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &domain.AuthResult{
		User:         &domain.User{ID: "user-1", Email: email, IsVerified: true},
		SessionToken: "mock_session_token",
	}, nil
}

// RequestOTP issues a phone login OTP
func (m *MockAuthService) RequestOTP(ctx context.Context, phone string) error {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx, phone)
	}
	return nil
}

// VerifyOTP verifies a phone OTP and issues tokens
func (m *MockAuthService) VerifyOTP(ctx context.Context, phone, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, phone, code)
	}
	return &domain.AuthResult{
		Employee:     &domain.Employee{ID: "emp-1", Phone: phone, Role: domain.RoleEmployee, Status: domain.StatusActive},
		AccessToken:  "mock_access_token",
		RefreshToken: "mock_refresh_token",
	}, nil
}
