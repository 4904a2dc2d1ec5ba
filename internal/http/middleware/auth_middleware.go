package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rohitchirag97/HazriPro-Server/domain"
)

// IdentityKey is the gin context key the resolved identity is stored under
const IdentityKey = "identity"

// AuthMiddleware creates authentication middleware. The token subject is
// resolved to a full AuthIdentity through the cache, falling back to the
// resolver on a miss; a resolver hit repopulates the cache. The request
// behaves identically when the cache is unavailable.
func AuthMiddleware(tokenSvc domain.TokenService, identityCache domain.IdentityCache, resolver domain.IdentityResolver) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenParts[1])
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrTokenExpired):
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token expired"})
			case errors.Is(err, domain.ErrTokenInvalid), errors.Is(err, domain.ErrTokenMalformed):
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Token validation failed"})
			}
			c.Abort()
			return
		}

		subject := claims.UserID
		if subject == "" {
			subject = claims.EmployeeID
		}

		identity, err := identityCache.Get(c.Request.Context(), subject)
		if err != nil {
			identity, err = resolver.Resolve(c.Request.Context(), subject)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
				c.Abort()
				return
			}
			// Cache write failure is not fatal, the identity is already
			// resolved for this request.
			_ = identityCache.Set(c.Request.Context(), identity)
		}

		if identity.Employee != nil && identity.Employee.Status != domain.StatusActive {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "User is not active"})
			c.Abort()
			return
		}

		role := domain.RoleEmployee
		if identity.Employee != nil {
			role = identity.Employee.Role
		}

		c.Set(IdentityKey, identity)
		c.Set("user_id", subject)
		c.Set("user_role", role)

		c.Next()
	})
}
