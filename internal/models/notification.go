package models

import (
	"time"
)

// Notification is a free-text message for a profile, created as a side
// effect of assignment or event updates and deleted by its owner.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;index" json:"profile_id"`
	Profile   Profile   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
