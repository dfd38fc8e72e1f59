package reports

import "strings"

// EventRow is one event with its required skills and assigned volunteers.
type EventRow struct {
	Name        string
	Description string
	Location    string
	Urgency     string
	Date        string
	Status      string
	Skills      []string
	Volunteers  []string
}

// VolunteerRow is one history record joined with its profile and event.
type VolunteerRow struct {
	FullName  string
	EventName string
	Status    string
	EventDate string
}

var eventHeader = []string{
	"Name", "Description", "Location", "Urgency", "Date", "Status",
	"Required Skills", "Volunteers",
}

var volunteerHeader = []string{"Volunteer", "Event", "Status", "Event Date"}

func (r EventRow) record() []string {
	return []string{
		r.Name, r.Description, r.Location, r.Urgency, r.Date, r.Status,
		strings.Join(r.Skills, ", "),
		strings.Join(r.Volunteers, ", "),
	}
}

func (r VolunteerRow) record() []string {
	return []string{r.FullName, r.EventName, r.Status, r.EventDate}
}
