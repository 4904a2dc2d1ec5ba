package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

func newTestJWTService() domain.TokenService {
	return NewJWTService("test-secret-key", "hazripro", time.Hour, 24*time.Hour, 7*24*time.Hour)
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateAccessToken(&domain.TokenClaims{
		EmployeeID: "emp-1",
		Role:       domain.RoleEmployee,
		CompanyID:  "company-1",
		IsEmployee: true,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.EmployeeID != "emp-1" {
		t.Errorf("expected employee id emp-1, got %q", claims.EmployeeID)
	}
	if claims.Role != domain.RoleEmployee || claims.CompanyID != "company-1" {
		t.Errorf("unexpected claims %+v", claims)
	}
	if !claims.IsEmployee {
		t.Error("is_employee flag must survive the round trip")
	}
	if claims.Kind != domain.TokenAccess {
		t.Errorf("expected kind %q, got %q", domain.TokenAccess, claims.Kind)
	}
}

func TestJWTService_TokenKinds(t *testing.T) {
	svc := newTestJWTService()
	in := &domain.TokenClaims{UserID: "user-1", Role: domain.RoleOwner}

	tests := []struct {
		name     string
		generate func(*domain.TokenClaims) (string, error)
		kind     string
	}{
		{"access", svc.GenerateAccessToken, domain.TokenAccess},
		{"refresh", svc.GenerateRefreshToken, domain.TokenRefresh},
		{"session", svc.GenerateSessionToken, domain.TokenSession},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.generate(in)
			if err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			claims, err := svc.Validate(token)
			if err != nil {
				t.Fatalf("validate failed: %v", err)
			}
			if claims.Kind != tt.kind {
				t.Errorf("expected kind %q, got %q", tt.kind, claims.Kind)
			}
			if claims.UserID != "user-1" {
				t.Errorf("expected user id user-1, got %q", claims.UserID)
			}
		})
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := NewJWTService("test-secret-key", "hazripro", -time.Minute, -time.Minute, -time.Minute)

	token, err := svc.GenerateAccessToken(&domain.TokenClaims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc := newTestJWTService()

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not-a-token", domain.ErrTokenMalformed},
		{"empty", "", domain.ErrTokenMalformed},
		{"tampered", "eyJhbGciOiJIUzI1NiJ9.eyJ1c2VyX2lkIjoiaGFja2VyIn0.invalid", domain.ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Validate(tt.token); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService("another-secret", "hazripro", time.Hour, time.Hour, time.Hour)

	token, err := other.GenerateAccessToken(&domain.TokenClaims{UserID: "user-1"})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_SubjectRequired(t *testing.T) {
	svc := newTestJWTService()

	// No user and no employee identifies nobody
	token, err := svc.GenerateAccessToken(&domain.TokenClaims{Role: domain.RoleOwner})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
