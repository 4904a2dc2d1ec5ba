package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// AuthMW wraps the token service, identity cache and resolver for middleware
type AuthMW struct {
	tokenSvc      domain.TokenService
	identityCache domain.IdentityCache
	resolver      domain.IdentityResolver
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, identityCache domain.IdentityCache, resolver domain.IdentityResolver) *AuthMW {
	return &AuthMW{
		tokenSvc:      tokenSvc,
		identityCache: identityCache,
		resolver:      resolver,
	}
}

// WithJWT returns the JWT middleware function
func (mw *AuthMW) WithJWT() gin.HandlerFunc {
	return AuthMiddleware(mw.tokenSvc, mw.identityCache, mw.resolver)
}
