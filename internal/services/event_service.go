package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/volunteercentral/volunteer-backend/internal/dto"
	"github.com/volunteercentral/volunteer-backend/internal/models"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

func (s *EventService) List() ([]models.Event, error) {
	var events []models.Event
	err := s.db.Preload("Skills").Order("date").Find(&events).Error
	return events, err
}

func (s *EventService) Get(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.db.Preload("Skills").First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// Create inserts the event plus one EventSkill row per submitted name.
// Names are inserted as given, duplicates included; only Update diffs.
func (s *EventService) Create(req *dto.EventRequest) (*models.Event, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid event date: %w", err)
	}

	event := models.Event{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Urgency:     req.Urgency,
		Date:        date,
		Status:      req.Status,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		for _, name := range req.Skills {
			skill := models.EventSkill{EventID: event.ID, Name: name}
			if err := tx.Create(&skill).Error; err != nil {
				return err
			}
			event.Skills = append(event.Skills, skill)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return &event, nil
}

// Update rewrites the event fields, diffs the skill list (absent names are
// deleted, present ones upserted), and notifies every profile that has a
// history row on this event.
func (s *EventService) Update(id uint, req *dto.EventRequest) (*models.Event, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid event date: %w", err)
	}

	var event models.Event
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}

		updates := map[string]interface{}{
			"name":        req.Name,
			"description": req.Description,
			"location":    req.Location,
			"urgency":     req.Urgency,
			"date":        date,
			"status":      req.Status,
		}
		if err := tx.Model(&event).Updates(updates).Error; err != nil {
			return err
		}

		var existing []models.EventSkill
		if err := tx.Where("event_id = ?", id).Find(&existing).Error; err != nil {
			return err
		}

		existingNames := make([]string, len(existing))
		for i, sk := range existing {
			existingNames[i] = sk.Name
		}
		toDelete, toAdd := diffSkills(existingNames, req.Skills)

		for _, name := range toDelete {
			if err := tx.Where("event_id = ? AND name = ?", id, name).Delete(&models.EventSkill{}).Error; err != nil {
				return err
			}
		}
		for _, name := range toAdd {
			skill := models.EventSkill{EventID: id, Name: name}
			if err := tx.Create(&skill).Error; err != nil {
				return err
			}
		}

		var histories []models.VolunteerHistory
		if err := tx.Where("event_id = ?", id).Find(&histories).Error; err != nil {
			return err
		}
		message := fmt.Sprintf("Event '%s' has been updated. Please check the details.", req.Name)
		for _, h := range histories {
			n := models.Notification{ProfileID: h.ProfileID, Message: message}
			if err := tx.Create(&n).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete cascades to EventSkills and VolunteerHistory inside the same
// transaction as the event delete.
func (s *EventService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.EventSkill{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.VolunteerHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&event).Error
	})
}

func (s *EventService) ListEventSkills() ([]models.EventSkill, error) {
	var skills []models.EventSkill
	err := s.db.Order("event_id").Find(&skills).Error
	return skills, err
}

func (s *EventService) CreateEventSkill(req *dto.EventSkillRequest) (*models.EventSkill, error) {
	var event models.Event
	if err := s.db.First(&event, req.Event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	skill := models.EventSkill{EventID: event.ID, Name: req.Name}
	if err := s.db.Create(&skill).Error; err != nil {
		return nil, fmt.Errorf("failed to create event skill: %w", err)
	}
	return &skill, nil
}

// diffSkills compares the stored skill names with the desired list and
// returns names to delete and names to add. Order follows the input slices.
func diffSkills(existing, desired []string) (toDelete, toAdd []string) {
	desiredSet := make(map[string]bool, len(desired))
	for _, name := range desired {
		desiredSet[name] = true
	}
	existingSet := make(map[string]bool, len(existing))
	for _, name := range existing {
		if !existingSet[name] {
			existingSet[name] = true
			if !desiredSet[name] {
				toDelete = append(toDelete, name)
			}
		}
	}
	seen := make(map[string]bool, len(desired))
	for _, name := range desired {
		if !existingSet[name] && !seen[name] {
			seen[name] = true
			toAdd = append(toAdd, name)
		}
	}
	return toDelete, toAdd
}
