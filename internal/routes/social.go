package routes

import (
	"github.com/FahadTahat/btec-companion-backend/internal/handlers"
	"github.com/FahadTahat/btec-companion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterSocialRoutes(r gin.IRouter, h *handlers.SocialHandler) {
	users := r.Group("/users")
	{
		// Authenticated Social Actions
		protected := users.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/:username/follow", h.FollowUser)
			protected.DELETE("/:username/follow", h.UnfollowUser)
			protected.GET("/:username/follow/status", h.GetFollowStatus)
		}

		// Public Social Data
		users.GET("/:username/followers", h.GetFollowers)
		users.GET("/:username/following", h.GetFollowing)
	}

	activity := r.Group("/activity")
	activity.Use(middleware.AuthMiddleware())
	{
		activity.GET("", handlers.GetActivityFeed)
	}
}
