package models

import (
	"time"
)

const (
	HistoryStatusPending   = "Pending"
	HistoryStatusConfirmed = "Confirmed"
	HistoryStatusCompleted = "Completed"
	HistoryStatusNoShow    = "No Show"
	HistoryStatusCancelled = "Cancelled"
)

var HistoryStatuses = []string{
	HistoryStatusPending,
	HistoryStatusConfirmed,
	HistoryStatusCompleted,
	HistoryStatusNoShow,
	HistoryStatusCancelled,
}

// VolunteerHistory links a profile to an event. At most one row exists per
// (profile, event) pair; ParticipationDate is set at creation and never
// updated afterwards.
type VolunteerHistory struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ProfileID         uint      `gorm:"not null;uniqueIndex:idx_history_profile_event" json:"profile_id"`
	Profile           Profile   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	EventID           uint      `gorm:"not null;uniqueIndex:idx_history_profile_event" json:"event_id"`
	Event             Event     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Status            string    `gorm:"size:20;default:'Pending'" json:"status"`
	ParticipationDate time.Time `gorm:"<-:create;autoCreateTime" json:"participation_date"`
}
