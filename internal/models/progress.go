package models

import "time"

// ProgressRecord is the persisted per-user, per-achievement state. The row
// always carries the absolute value computed by the engine; the database is
// never asked to increment, which keeps concurrent writers last-writer-wins.
type ProgressRecord struct {
	UserID        string     `gorm:"primaryKey;type:text" json:"userId"`
	AchievementID string     `gorm:"primaryKey;type:text" json:"achievementId"`
	Progress      int        `gorm:"default:0" json:"progress"`
	Unlocked      bool       `gorm:"default:false" json:"unlocked"`
	UnlockedAt    *time.Time `json:"unlockedAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (ProgressRecord) TableName() string {
	return "progress_records"
}
