package handlers

import (
	"fmt"
	"net/http"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/internal/services"
	"github.com/FahadTahat/btec-companion-backend/pkg/errors"
	"github.com/FahadTahat/btec-companion-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Follow triggers for the acting user and for the user being followed.
var (
	followTriggerIDs   = []string{"first-follow", "networker", "community-pillar"}
	followerTriggerIDs = []string{"first-fan", "rising-star", "btec-celebrity"}
)

type SocialHandler struct {
	manager *achievements.Manager
}

func NewSocialHandler(m *achievements.Manager) *SocialHandler {
	return &SocialHandler{manager: m}
}

// FollowUser handles POST /users/:username/follow
func (h *SocialHandler) FollowUser(c *gin.Context) {
	followerID := c.GetString("userId")

	target, ok := findUserByUsernameOrID(c)
	if !ok {
		return
	}
	if target.ID == followerID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	created := false
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Follow
		// Check for existing edge (including soft-deleted)
		err := tx.Unscoped().Where("follower_id = ? AND followee_id = ?", followerID, target.ID).First(&existing).Error

		switch err {
		case nil:
			if existing.DeletedAt.Valid {
				// Soft-deleted -> Restore it
				if err := tx.Unscoped().Model(&existing).Update("deleted_at", nil).Error; err != nil {
					return fmt.Errorf("restore follow: %w", err)
				}
			} else {
				// Already following -> Do nothing
				return nil
			}
		case gorm.ErrRecordNotFound:
			newFollow := models.Follow{FollowerID: followerID, FolloweeID: target.ID}
			if err := tx.Create(&newFollow).Error; err != nil {
				return fmt.Errorf("create follow: %w", err)
			}
			created = true
		default:
			return err
		}

		if err := tx.Model(&models.User{}).Where("id = ?", followerID).
			Update("following_count", gorm.Expr("following_count + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", target.ID).
			Update("follower_count", gorm.Expr("follower_count + 1")).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	if created {
		notification := models.Notification{
			UserID:  target.ID,
			ActorID: followerID,
			Type:    models.NotificationTypeFollow,
			Message: "started following you",
		}
		CreateNotification(database.DB, notification)
		services.LogActivity(followerID, models.ActivityFollow, target.ID, "followed a student")

		// Both ends of the edge are trigger call sites. Following is active
		// progress for the follower, gained-a-follower progress for the
		// target; the target's session hydrates lazily if they are offline.
		session := h.manager.BeginSession(c.Request.Context(), followerID)
		for _, id := range followTriggerIDs {
			session.Increment(id, 1)
		}
		targetSession := h.manager.BeginSession(c.Request.Context(), target.ID)
		for _, id := range followerTriggerIDs {
			targetSession.Increment(id, 1)
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Following", "following": true})
}

// UnfollowUser handles DELETE /users/:username/follow
func (h *SocialHandler) UnfollowUser(c *gin.Context) {
	followerID := c.GetString("userId")

	target, ok := findUserByUsernameOrID(c)
	if !ok {
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followee_id = ?", followerID, target.ID).
			Delete(&models.Follow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		// Counters never drop below zero even if rows drifted.
		if err := tx.Model(&models.User{}).
			Where("id = ? AND following_count > 0", followerID).
			Update("following_count", gorm.Expr("following_count - 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ? AND follower_count > 0", target.ID).
			Update("follower_count", gorm.Expr("follower_count - 1")).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}

	// Achievements are monotonic: unfollowing never rolls progress back.
	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed", "following": false})
}

// GetFollowStatus handles GET /users/:username/follow/status
func (h *SocialHandler) GetFollowStatus(c *gin.Context) {
	followerID := c.GetString("userId")

	target, ok := findUserByUsernameOrID(c)
	if !ok {
		return
	}

	var count int64
	database.DB.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, target.ID).
		Count(&count)

	c.JSON(http.StatusOK, gin.H{"following": count > 0})
}

// GetFollowers handles GET /users/:username/followers
func (h *SocialHandler) GetFollowers(c *gin.Context) {
	target, ok := findUserByUsernameOrID(c)
	if !ok {
		return
	}

	var follows []models.Follow
	if err := database.DB.Preload("Follower").
		Where("followee_id = ?", target.ID).
		Order("created_at desc").
		Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load followers"})
		return
	}

	users := make([]models.User, 0, len(follows))
	for _, f := range follows {
		users = append(users, f.Follower)
	}
	c.JSON(http.StatusOK, gin.H{"followers": users})
}

// GetFollowing handles GET /users/:username/following
func (h *SocialHandler) GetFollowing(c *gin.Context) {
	target, ok := findUserByUsernameOrID(c)
	if !ok {
		return
	}

	var follows []models.Follow
	if err := database.DB.Preload("Followee").
		Where("follower_id = ?", target.ID).
		Order("created_at desc").
		Find(&follows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load following"})
		return
	}

	users := make([]models.User, 0, len(follows))
	for _, f := range follows {
		users = append(users, f.Followee)
	}
	c.JSON(http.StatusOK, gin.H{"following": users})
}

// findUserByUsernameOrID resolves the :username path param, reporting the
// miss through the error middleware.
func findUserByUsernameOrID(c *gin.Context) (models.User, bool) {
	param := c.Param("username")

	var user models.User
	var err error
	if utils.IsUUID(param) {
		err = database.DB.First(&user, "id = ?", param).Error
	} else {
		err = database.DB.First(&user, "username = ?", param).Error
	}
	if err != nil {
		_ = c.Error(errors.NotFound("User not found"))
		c.Abort()
		return models.User{}, false
	}
	return user, true
}
