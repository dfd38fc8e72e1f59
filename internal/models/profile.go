package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the volunteer-facing extension of a User. Exactly one per user.
type Profile struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	UserID         uint           `gorm:"not null;uniqueIndex" json:"user_id"`
	User           User           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FullName       string         `gorm:"size:50" json:"full_name"`
	Address1       string         `gorm:"size:100" json:"address1"`
	Address2       string         `gorm:"size:100" json:"address2"`
	City           string         `gorm:"size:100" json:"city"`
	State          string         `gorm:"size:2" json:"state"`
	ZipCode        string         `gorm:"size:9" json:"zip_code"`
	Preferences    string         `gorm:"type:text" json:"preferences"`
	Skills         []Skill        `gorm:"constraint:OnDelete:CASCADE" json:"skills,omitempty"`
	Availabilities []Availability `gorm:"constraint:OnDelete:CASCADE" json:"availabilities,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Skill is a profile-scoped skill tag, unique per (profile, name).
type Skill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;uniqueIndex:idx_skills_profile_name" json:"profile_id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex:idx_skills_profile_name" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Availability is a date a volunteer can work, unique per (profile, date).
type Availability struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ProfileID uint           `gorm:"not null;uniqueIndex:idx_availabilities_profile_date" json:"profile_id"`
	Date      datatypes.Date `gorm:"not null;uniqueIndex:idx_availabilities_profile_date" json:"date"`
	CreatedAt time.Time      `json:"created_at"`
}
