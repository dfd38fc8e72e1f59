package database

import (
	"errors"
	"log/slog"

	"github.com/volunteercentral/volunteer-backend/internal/config"
	"github.com/volunteercentral/volunteer-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured and no user with that email exists yet.
func SeedAdmin(cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var existing models.User
	err := DB.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		if !existing.IsAdmin {
			return DB.Model(&existing).Update("is_admin", true).Error
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	slog.Info("admin account seeded", "email", cfg.AdminEmail)
	return nil
}
