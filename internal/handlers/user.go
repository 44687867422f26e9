package handlers

import (
	"net/http"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
)

type UserHandler struct {
	manager *achievements.Manager
}

func NewUserHandler(m *achievements.Manager) *UserHandler {
	return &UserHandler{manager: m}
}

// GetProfile handles GET /users/:username — public profile with achievement
// totals. For the profile owner's own live session the totals come from
// memory; for anyone else they are derived from the persisted unlocked set
// through the same catalog, so both paths share one formula.
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, ok := findUserByUsernameOrID(c)
	if !ok {
		return
	}

	totalXP := 0
	unlockedCount := 0

	if session, live := h.manager.Session(user.ID); live {
		state := session.Snapshot()
		totalXP = state.TotalXP
		unlockedCount = state.UnlockedCount
	} else {
		var rows []models.ProgressRecord
		database.DB.Where("user_id = ? AND unlocked = ?", user.ID, true).Find(&rows)
		for _, row := range rows {
			if def, known := h.manager.Catalog().Lookup(row.AchievementID); known {
				totalXP += def.XP
				unlockedCount++
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user,
		"achievements": gin.H{
			"totalXP":       totalXP,
			"level":         achievements.Level(totalXP),
			"unlockedCount": unlockedCount,
			"totalCount":    h.manager.Catalog().Len(),
		},
	})
}

type updateProfileRequest struct {
	Name      *string  `json:"name"`
	Bio       *string  `json:"bio"`
	Units     []string `json:"units"`
	Interests []string `json:"interests"`
}

// UpdateProfile handles PATCH /users/me. Completing onboarding the first
// time is a trigger call site for the profile achievement.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString("userId")

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile payload"})
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Units != nil {
		updates["units"] = pq.StringArray(req.Units)
	}
	if req.Interests != nil {
		updates["interests"] = pq.StringArray(req.Interests)
	}

	completesOnboarding := false
	if !user.OnboardingCompleted && req.Name != nil && req.Bio != nil && len(req.Units) > 0 {
		updates["onboarding_completed"] = true
		completesOnboarding = true
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"user": user})
		return
	}

	if err := database.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	if completesOnboarding {
		session := h.manager.BeginSession(c.Request.Context(), userID)
		session.Increment("profile-polished", 1)
	}

	database.DB.First(&user, "id = ?", userID)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// SearchUsers handles GET /users?q=... — also a trigger call site for the
// search achievements.
func (h *UserHandler) SearchUsers(c *gin.Context) {
	userID := c.GetString("userId")
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' required"})
		return
	}

	var users []models.User
	pattern := utils.SanitizeSearchQuery(query)
	if err := database.DB.
		Where("username ILIKE ? OR name ILIKE ?", pattern, pattern).
		Limit(20).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	if userID != "" {
		session := h.manager.BeginSession(c.Request.Context(), userID)
		session.Increment("searcher", 1)
		session.Increment("search-hound", 1)
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}
