package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marquee-dev/marquee/internal/policy"
	"github.com/marquee-dev/marquee/internal/service"
)

// RequirePolicy gates the route on one (resource, action) pair. Must run
// after Identity.
func RequirePolicy(resource policy.Resource, action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if err := policy.Check(resource, action, identity); err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
