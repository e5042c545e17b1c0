package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"voltassist/internal/model"
	"voltassist/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the Bearer session token and stores the caller scope on
// the gin context. Requests without a valid session are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.authUC.ResolveSession(ctx, token)
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: resolve session: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the caller scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
