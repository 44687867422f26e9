package routes

import (
	"github.com/FahadTahat/btec-companion-backend/internal/handlers"
	"github.com/FahadTahat/btec-companion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(r gin.IRouter, h *handlers.UserHandler, up *handlers.UploadHandler) {
	users := r.Group("/users")
	{
		users.GET("", middleware.OptionalAuthMiddleware(), h.SearchUsers)

		protected := users.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.PATCH("/me", h.UpdateProfile)
			protected.POST("/me/avatar", up.UploadAvatar)
		}

		// Public profile (after static /me routes so gin matching stays sane)
		users.GET("/:username", h.GetProfile)
	}

	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", handlers.ListNotifications)
		notifications.POST("/:id/read", handlers.MarkNotificationRead)
		notifications.POST("/read-all", handlers.MarkAllNotificationsRead)
	}
}
