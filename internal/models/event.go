package models

import (
	"time"
)

var (
	UrgencyLevels = []string{"Critical", "High", "Medium", "Low"}
	EventStatuses = []string{"Pending", "Completed", "Cancelled"}
)

// Event is a volunteer event with its required-skill tags.
type Event struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"size:100;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Location    string       `gorm:"size:100" json:"location"`
	Urgency     string       `gorm:"size:20" json:"urgency"`
	Date        time.Time    `gorm:"not null" json:"date"`
	Status      string       `gorm:"size:20" json:"status"`
	Skills      []EventSkill `gorm:"constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// EventSkill is a required-skill tag on an event. The create path inserts one
// row per submitted name without dedup; the update path diffs by name.
type EventSkill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
