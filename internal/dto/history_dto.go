package dto

import "time"

type BulkAssignRequest struct {
	Event        uint   `json:"event" validate:"required"`
	UserProfiles []uint `json:"user_profiles" validate:"required,min=1"`
}

type HistoryResponse struct {
	ID                uint      `json:"id"`
	ProfileID         uint      `json:"profile_id"`
	EventID           uint      `json:"event_id"`
	Status            string    `json:"status"`
	ParticipationDate time.Time `json:"participation_date"`
}
