package handlers

import (
	"net/http"
	"strconv"

	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// GetActivityFeed handles GET /activity?limit=20 — recent activity from the
// caller and the students they follow.
func GetActivityFeed(c *gin.Context) {
	userID := c.GetString("userId")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var followeeIDs []string
	database.DB.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &followeeIDs)
	actorIDs := append(followeeIDs, userID)

	var activities []models.UserActivity
	if err := database.DB.
		Preload("Actor").
		Where("actor_id IN ?", actorIDs).
		Order("created_at desc").
		Limit(limit).
		Find(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}
