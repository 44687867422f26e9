package handlers

import (
	"net/http"
	"strconv"

	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateNotification persists a notification and pushes it over the socket
// if the recipient is online.
func CreateNotification(db *gorm.DB, n models.Notification) {
	if err := db.Create(&n).Error; err != nil {
		logger.Error().Err(err).Str("user_id", n.UserID).Msg("Failed to create notification")
		return
	}
	SendNotificationToUser(n.UserID, n)
}

// ListNotifications handles GET /notifications?limit=20
func ListNotifications(c *gin.Context) {
	userID := c.GetString("userId")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var notifications []models.Notification
	if err := database.DB.
		Preload("Actor").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
		return
	}

	var unread int64
	database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&unread)

	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "unreadCount": unread})
}

// MarkNotificationRead handles POST /notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	userID := c.GetString("userId")
	id := c.Param("id")

	res := database.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

// MarkAllNotificationsRead handles POST /notifications/read-all
func MarkAllNotificationsRead(c *gin.Context) {
	userID := c.GetString("userId")

	if err := database.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All marked as read"})
}
