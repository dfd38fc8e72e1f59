package services

import (
	"github.com/volunteercentral/volunteer-backend/internal/models"
	"github.com/volunteercentral/volunteer-backend/internal/reports"
	"gorm.io/gorm"
)

// dateLayout is the wire format for event and availability dates.
const dateLayout = "2006-01-02"

// ReportService aggregates event/volunteer data into report rows and
// delegates rendering to the reports package.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// EventRows builds one row per event with its skill names and the full
// names of every assigned volunteer.
func (s *ReportService) EventRows() ([]reports.EventRow, error) {
	var events []models.Event
	if err := s.db.Preload("Skills").Order("id").Find(&events).Error; err != nil {
		return nil, err
	}

	var histories []models.VolunteerHistory
	if err := s.db.Preload("Profile").Order("id").Find(&histories).Error; err != nil {
		return nil, err
	}

	volunteersByEvent := make(map[uint][]string)
	for _, h := range histories {
		volunteersByEvent[h.EventID] = append(volunteersByEvent[h.EventID], h.Profile.FullName)
	}

	rows := make([]reports.EventRow, len(events))
	for i, e := range events {
		skills := make([]string, len(e.Skills))
		for j, sk := range e.Skills {
			skills[j] = sk.Name
		}
		rows[i] = reports.EventRow{
			Name:        e.Name,
			Description: e.Description,
			Location:    e.Location,
			Urgency:     e.Urgency,
			Date:        e.Date.Format(dateLayout),
			Status:      e.Status,
			Skills:      skills,
			Volunteers:  volunteersByEvent[e.ID],
		}
	}
	return rows, nil
}

// VolunteerRows builds one row per history record.
func (s *ReportService) VolunteerRows() ([]reports.VolunteerRow, error) {
	var histories []models.VolunteerHistory
	if err := s.db.Preload("Profile").Preload("Event").Order("id").Find(&histories).Error; err != nil {
		return nil, err
	}

	rows := make([]reports.VolunteerRow, len(histories))
	for i, h := range histories {
		rows[i] = reports.VolunteerRow{
			FullName:  h.Profile.FullName,
			EventName: h.Event.Name,
			Status:    h.Status,
			EventDate: h.Event.Date.Format(dateLayout),
		}
	}
	return rows, nil
}
