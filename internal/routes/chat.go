package routes

import (
	"github.com/FahadTahat/btec-companion-backend/internal/handlers"
	"github.com/FahadTahat/btec-companion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(r gin.IRouter, h *handlers.ChatHandler) {
	chat := r.Group("/chat")
	chat.Use(middleware.AuthMiddleware())
	{
		chat.GET("/messages", h.GetMessages)
		chat.POST("/messages", middleware.ChatRateLimit(), h.PostMessage)
	}
}
