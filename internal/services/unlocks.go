package services

import (
	"fmt"

	"github.com/FahadTahat/btec-companion-backend/internal/achievements"
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
)

// OnUnlock is wired into the achievement manager as its unlock observer. It
// turns the engine event into product surface: a notification for the user,
// an activity feed row, and a stale leaderboard.
func OnUnlock(u achievements.Unlock) {
	achievementID := u.Definition.ID

	notification := models.Notification{
		UserID:        u.UserID,
		Type:          models.NotificationTypeAchievement,
		AchievementID: &achievementID,
		Message:       fmt.Sprintf("You unlocked \"%s\" (+%d XP)", u.Definition.TitleEn, u.Definition.XP),
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		logger.Error().Err(err).Str("user_id", u.UserID).Msg("Failed to create unlock notification")
	}

	LogActivity(u.UserID, models.ActivityAchievement, achievementID,
		fmt.Sprintf("unlocked the \"%s\" achievement", u.Definition.TitleEn))

	// Crossing a level boundary is its own feed event.
	if achievements.Level(u.TotalXP-u.Definition.XP) < u.Level {
		LogActivity(u.UserID, models.ActivityLevelUp, "",
			fmt.Sprintf("reached level %d", u.Level))
	}

	InvalidateLeaderboardCache()
}
