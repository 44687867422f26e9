package services

import (
	"github.com/FahadTahat/btec-companion-backend/internal/database"
	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"github.com/FahadTahat/btec-companion-backend/pkg/logger"
)

func LogActivity(actorID string, activityType models.ActivityType, targetID string, message string) {
	activity := models.UserActivity{
		Type:     activityType,
		ActorID:  actorID,
		TargetID: targetID,
		Message:  message,
	}

	if err := database.DB.Create(&activity).Error; err != nil {
		logger.Error().Err(err).Str("actor_id", actorID).Msg("Failed to log activity")
	}
}
