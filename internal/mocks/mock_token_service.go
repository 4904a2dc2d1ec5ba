package mocks

import (
	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// MockTokenService implements domain.TokenService interface for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(claims *domain.TokenClaims) (string, error)
	GenerateRefreshTokenFunc func(claims *domain.TokenClaims) (string, error)
	GenerateSessionTokenFunc func(claims *domain.TokenClaims) (string, error)
	ValidateFunc             func(token string) (*domain.TokenClaims, error)
}

var _ domain.TokenService = (*MockTokenService)(nil)

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken generates an access token
func (m *MockTokenService) GenerateAccessToken(claims *domain.TokenClaims) (string, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(claims)
	}
	return "mock_access_token", nil
}

// GenerateRefreshToken generates a refresh token
func (m *MockTokenService) GenerateRefreshToken(claims *domain.TokenClaims) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(claims)
	}
	return "mock_refresh_token", nil
}

// GenerateSessionToken generates a session token
func (m *MockTokenService) GenerateSessionToken(claims *domain.TokenClaims) (string, error) {
	if m.GenerateSessionTokenFunc != nil {
		return m.GenerateSessionTokenFunc(claims)
	}
	return "mock_session_token", nil
}

// Validate validates a token and returns its claims
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}
