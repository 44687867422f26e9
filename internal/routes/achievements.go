package routes

import (
	"github.com/FahadTahat/btec-companion-backend/internal/handlers"
	"github.com/FahadTahat/btec-companion-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterAchievementRoutes(r gin.IRouter, h *handlers.AchievementHandler, lb *handlers.LeaderboardHandler) {
	achievements := r.Group("/achievements")
	achievements.Use(middleware.AuthMiddleware())
	{
		achievements.GET("", h.ListAchievements)
		achievements.GET("/summary", h.GetSummary)
	}

	// Trigger endpoint: page components fire these opportunistically, so it
	// gets its own generous rate bucket.
	progress := r.Group("/progress")
	progress.Use(middleware.AuthMiddleware(), middleware.TriggerRateLimit())
	{
		progress.POST("/:id", h.RecordProgress)
	}

	// Public leaderboard
	r.GET("/leaderboard", lb.GetLeaderboard)
}
