package dto

// EventRequest carries the event date in YYYY-MM-DD form, the same layout
// availabilities use.
type EventRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required"`
	Location    string   `json:"location" validate:"required,max=100"`
	Urgency     string   `json:"urgency" validate:"required,oneof=Critical High Medium Low"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02"`
	Status      string   `json:"status" validate:"required,oneof=Pending Completed Cancelled"`
	Skills      []string `json:"skills" validate:"dive,required,max=50"`
}

type EventSkillRequest struct {
	Event uint   `json:"event" validate:"required"`
	Name  string `json:"name" validate:"required,max=50"`
}
