package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/volunteercentral/volunteer-backend/internal/models"
	"gorm.io/gorm"
)

var ErrHistoryNotFound = errors.New("volunteer history not found")

// AssignmentService links profiles to events in bulk, writing the
// assignment notification alongside each history row.
type AssignmentService struct {
	db *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{db: db}
}

// Assign upserts one history row per resolvable profile id, keyed on
// (profile, event), resetting status to Pending on reassignment. Unknown
// profile ids are skipped without error. The whole batch commits or rolls
// back as one transaction.
func (s *AssignmentService) Assign(eventID uint, profileIDs []uint) ([]models.VolunteerHistory, error) {
	var out []models.VolunteerHistory

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		message := fmt.Sprintf("You have been assigned to Event '%s' Please check the details.", event.Name)

		for _, pid := range profileIDs {
			var profile models.Profile
			if err := tx.First(&profile, pid).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					slog.Warn("bulk assign skipping unknown profile", "profile_id", pid, "event_id", eventID)
					continue
				}
				return err
			}

			notification := models.Notification{ProfileID: profile.ID, Message: message}
			if err := tx.Create(&notification).Error; err != nil {
				return err
			}

			var history models.VolunteerHistory
			err := tx.Where("profile_id = ? AND event_id = ?", profile.ID, event.ID).First(&history).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				history = models.VolunteerHistory{
					ProfileID: profile.ID,
					EventID:   event.ID,
					Status:    models.HistoryStatusPending,
				}
				if err := tx.Create(&history).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			} else {
				if err := tx.Model(&history).Update("status", models.HistoryStatusPending).Error; err != nil {
					return err
				}
				history.Status = models.HistoryStatusPending
			}

			out = append(out, history)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListForProfile returns one profile's history rows.
func (s *AssignmentService) ListForProfile(profileID uint) ([]models.VolunteerHistory, error) {
	var out []models.VolunteerHistory
	err := s.db.Where("profile_id = ?", profileID).Order("participation_date DESC").Find(&out).Error
	return out, err
}

// ListAll returns every history row (admin view).
func (s *AssignmentService) ListAll() ([]models.VolunteerHistory, error) {
	var out []models.VolunteerHistory
	err := s.db.Order("participation_date DESC").Find(&out).Error
	return out, err
}

func (s *AssignmentService) Get(id uint) (*models.VolunteerHistory, error) {
	var history models.VolunteerHistory
	if err := s.db.First(&history, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}
	return &history, nil
}
