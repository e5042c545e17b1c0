package http

import (
	"voltassist/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All chat routes require a session; sending messages is also rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	conversations := rg.Group("/chat/conversations")
	{
		conversations.POST("", mw.Auth(), h.CreateConversation)
		conversations.GET("", mw.Auth(), h.ListConversations)
		conversations.GET("/:id/messages", mw.Auth(), h.ListMessages)
		conversations.POST("/:id/messages", mw.Auth(), mw.RateLimit(), h.SendMessage)
	}
}
