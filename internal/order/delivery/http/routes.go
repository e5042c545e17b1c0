package http

import (
	"voltassist/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	orders := rg.Group("/orders")
	{
		orders.GET("", mw.Auth(), h.ListMyOrders)
	}
}
