package achievements

import (
	"context"

	"github.com/FahadTahat/btec-companion-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists progress records through GORM (Postgres in production,
// SQLite in tests).
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context, userID string) (map[string]Record, error) {
	var rows []models.ProgressRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string]Record, len(rows))
	for _, row := range rows {
		out[row.AchievementID] = Record{
			Progress:   row.Progress,
			Unlocked:   row.Unlocked,
			UnlockedAt: row.UnlockedAt,
		}
	}
	return out, nil
}

func (s *GormStore) Save(ctx context.Context, userID, achievementID string, rec Record) error {
	row := models.ProgressRecord{
		UserID:        userID,
		AchievementID: achievementID,
		Progress:      rec.Progress,
		Unlocked:      rec.Unlocked,
		UnlockedAt:    rec.UnlockedAt,
	}

	// Upsert on the composite key; the row is replaced wholesale with the
	// engine's latest absolute value.
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"progress", "unlocked", "unlocked_at", "updated_at"}),
		}).
		Create(&row).Error
}
