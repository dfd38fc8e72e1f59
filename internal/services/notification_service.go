package services

import (
	"errors"

	"github.com/volunteercentral/volunteer-backend/internal/models"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (s *NotificationService) List(profileID uint) ([]models.Notification, error) {
	var out []models.Notification
	err := s.db.Where("profile_id = ?", profileID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// Delete removes a notification only when it belongs to the given profile.
func (s *NotificationService) Delete(profileID, id uint) error {
	result := s.db.Where("id = ? AND profile_id = ?", id, profileID).Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
