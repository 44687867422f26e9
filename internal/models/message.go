package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is a message in the community room. Rooms are plain string
// keys; the default frontend only uses "community" but unit-specific rooms
// ride on the same table.
type ChatMessage struct {
	ID        string         `gorm:"primaryKey;type:text" json:"id"`
	Room      string         `gorm:"index;type:text;default:'community';not null" json:"room"`
	SenderID  string         `gorm:"index;type:text;not null" json:"senderId"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Sender User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}
