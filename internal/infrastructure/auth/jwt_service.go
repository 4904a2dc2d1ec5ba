package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey  []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	sessionTTL time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, accessTTL, refreshTTL, sessionTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:  []byte(secretKey),
		issuer:     issuer,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		sessionTTL: sessionTTL,
	}
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(claims *domain.TokenClaims) (string, error) {
	return j.sign(claims, domain.TokenAccess, j.accessTTL)
}

// GenerateRefreshToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateRefreshToken(claims *domain.TokenClaims) (string, error) {
	return j.sign(claims, domain.TokenRefresh, j.refreshTTL)
}

// GenerateSessionToken implements domain.TokenService. Session tokens back
// the email/password flow and carry the full claim set for 7 days.
func (j *JWTServiceImpl) GenerateSessionToken(claims *domain.TokenClaims) (string, error) {
	return j.sign(claims, domain.TokenSession, j.sessionTTL)
}

func (j *JWTServiceImpl) sign(claims *domain.TokenClaims, kind string, ttl time.Duration) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{
		"typ": kind,
		"iss": j.issuer,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if claims.UserID != "" {
		mapClaims["user_id"] = claims.UserID
	}
	if claims.EmployeeID != "" {
		mapClaims["employee_id"] = claims.EmployeeID
	}
	if claims.Role != "" {
		mapClaims["role"] = claims.Role
	}
	if claims.CompanyID != "" {
		mapClaims["company_id"] = claims.CompanyID
	}
	if claims.IsEmployee {
		mapClaims["is_employee"] = true
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString(j.secretKey)
}

// Validate implements domain.TokenService. Any failure (malformed, bad
// signature, expired) comes back as a sentinel error, never a panic.
func (j *JWTServiceImpl) Validate(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, domain.ErrTokenMalformed
		default:
			return nil, domain.ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, _ := claims["user_id"].(string)
	employeeID, _ := claims["employee_id"].(string)
	if userID == "" && employeeID == "" {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	out := &domain.TokenClaims{
		UserID:     userID,
		EmployeeID: employeeID,
		ExpiresAt:  int64(exp),
	}
	if iat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = int64(iat)
	}
	if kind, ok := claims["typ"].(string); ok {
		out.Kind = kind
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if companyID, ok := claims["company_id"].(string); ok {
		out.CompanyID = companyID
	}
	if isEmployee, ok := claims["is_employee"].(bool); ok {
		out.IsEmployee = isEmployee
	}

	return out, nil
}
