package http

import (
	"voltassist/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Auth endpoints are public but rate limited by client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/otp", mw.RateLimit(), h.RequestOTP)
		authGroup.POST("/verify", mw.RateLimit(), h.VerifyOTP)
	}
}
