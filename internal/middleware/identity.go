package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marquee-dev/marquee/internal/auth"
	"github.com/marquee-dev/marquee/internal/policy"
)

const ContextIdentity = "identity"

// Identity resolves the caller from the Authorization header and stores a
// policy.Identity in the request context. No header means an anonymous
// identity; a present but invalid token is rejected outright.
func Identity(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Set(ContextIdentity, policy.Identity{})
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(ContextIdentity, policy.Identity{
			UserID:        int64(claims.UserID),
			Authenticated: true,
			IsStaff:       claims.IsStaff,
			IsStaffMember: claims.IsStaffMember,
			IsSuperuser:   claims.IsSuperuser,
		})
		c.Next()
	}
}

func IdentityFromContext(c *gin.Context) policy.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return policy.Identity{}
	}
	identity, ok := v.(policy.Identity)
	if !ok {
		return policy.Identity{}
	}
	return identity
}
