package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAdmin   Role = "ADMIN"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

type User struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Avatar   string `json:"avatar"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Bio      string `json:"bio"`

	// Enums stored as strings
	Role       Role       `gorm:"type:text;default:'STUDENT'" json:"role"`
	Visibility Visibility `gorm:"type:text;default:'PUBLIC'" json:"visibility"`

	// BTEC units the student is enrolled in
	Units     pq.StringArray `gorm:"type:text[]" json:"units"`
	Interests pq.StringArray `gorm:"type:text[]" json:"interests"`

	OnboardingCompleted bool `gorm:"default:false" json:"onboardingCompleted"`

	// Social graph counters (denormalized, maintained in follow/unfollow transactions)
	FollowerCount  int `gorm:"default:0" json:"followerCount"`
	FollowingCount int `gorm:"default:0" json:"followingCount"`

	Password string `json:"-"`
}

func (User) TableName() string {
	return "users"
}
