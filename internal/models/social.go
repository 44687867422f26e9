package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow represents a follower/followee relationship between students
type Follow struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FollowerID string `gorm:"uniqueIndex:idx_follower_followee" json:"followerId"`
	Follower   User   `gorm:"foreignKey:FollowerID" json:"follower"`

	FolloweeID string `gorm:"uniqueIndex:idx_follower_followee" json:"followeeId"`
	Followee   User   `gorm:"foreignKey:FolloweeID" json:"followee"`
}

func (Follow) TableName() string {
	return "follows"
}

func (f *Follow) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	return
}
