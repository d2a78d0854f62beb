package http

import (
	"net/http"
	"strings"

	"backoffice-service/internal/infra/auth"

	"github.com/gin-gonic/gin"
)

// userKey is where AuthRequired leaves the resolved caller in the gin context.
const userKey = "authUser"

// AuthRequired gates mutating routes behind a bearer token. The verifier owns
// both the signature check and the user lookup; any rejection is a 401, the
// envelope never leaks why.
func AuthRequired(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, fail("authorization token required"))
			return
		}

		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, fail("invalid token"))
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}
