package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/volunteercentral/volunteer-backend/internal/dto"
	"github.com/volunteercentral/volunteer-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetOrCreate returns the user's profile, creating an empty one on first
// call. The unique index on user_id guarantees a second profile can never
// appear for the same user.
func (s *ProfileService) GetOrCreate(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Preload("Skills").Preload("Availabilities").
		Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile = models.Profile{UserID: userID}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return &profile, nil
}

func (s *ProfileService) Update(userID uint, req *dto.ProfileRequest) (*models.Profile, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"full_name":   req.FullName,
		"address1":    req.Address1,
		"address2":    req.Address2,
		"city":        req.City,
		"state":       req.State,
		"zip_code":    req.ZipCode,
		"preferences": req.Preferences,
	}
	if err := s.db.Model(profile).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

func (s *ProfileService) ListAvailabilities(profileID uint) ([]models.Availability, error) {
	var out []models.Availability
	err := s.db.Where("profile_id = ?", profileID).Order("date").Find(&out).Error
	return out, err
}

// AddAvailabilities upserts each date keyed on (profile, date) inside one
// transaction. Dates already stored but absent from the payload are kept.
func (s *ProfileService) AddAvailabilities(profileID uint, dates []time.Time) ([]models.Availability, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, d := range dates {
			date := datatypes.Date(d)
			var existing models.Availability
			err := tx.Where("profile_id = ? AND date = ?", profileID, date).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				entry := models.Availability{ProfileID: profileID, Date: date}
				if err := tx.Create(&entry).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert availabilities: %w", err)
	}
	return s.ListAvailabilities(profileID)
}

func (s *ProfileService) ListSkills(profileID uint) ([]models.Skill, error) {
	var out []models.Skill
	err := s.db.Where("profile_id = ?", profileID).Order("name").Find(&out).Error
	return out, err
}

// AddSkills follows the same additive-upsert policy keyed on (profile, name).
func (s *ProfileService) AddSkills(profileID uint, names []string) ([]models.Skill, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			var existing models.Skill
			err := tx.Where("profile_id = ? AND name = ?", profileID, name).First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skill := models.Skill{ProfileID: profileID, Name: name}
				if err := tx.Create(&skill).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert skills: %w", err)
	}
	return s.ListSkills(profileID)
}
