package mocks

import (
	"context"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockOTPService implements domain.OTPService interface for testing
type MockOTPService struct {
	IssuePhoneOTPFunc  func(ctx context.Context, phone string) error
	IssueEmailOTPFunc  func(ctx context.Context, user *domain.User) error
	VerifyPhoneOTPFunc func(ctx context.Context, phone, code string) error
	VerifyEmailOTPFunc func(ctx context.Context, userID, code string) error
}

var _ domain.OTPService = (*MockOTPService)(nil)

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// IssuePhoneOTP issues a phone login OTP
func (m *MockOTPService) IssuePhoneOTP(ctx context.Context, phone string) error {
	if m.IssuePhoneOTPFunc != nil {
		return m.IssuePhoneOTPFunc(ctx, phone)
	}
	return nil
}

// IssueEmailOTP issues an email verification OTP
func (m *MockOTPService) IssueEmailOTP(ctx context.Context, user *domain.User) error {
	if m.IssueEmailOTPFunc != nil {
		return m.IssueEmailOTPFunc(ctx, user)
	}
	return nil
}

// VerifyPhoneOTP verifies a phone OTP
func (m *MockOTPService) VerifyPhoneOTP(ctx context.Context, phone, code string) error {
	if m.VerifyPhoneOTPFunc != nil {
		return m.VerifyPhoneOTPFunc(ctx, phone, code)
	}
	return nil
}

// VerifyEmailOTP verifies an email OTP
func (m *MockOTPService) VerifyEmailOTP(ctx context.Context, userID, code string) error {
	if m.VerifyEmailOTPFunc != nil {
		return m.VerifyEmailOTPFunc(ctx, userID, code)
	}
	return nil
}
