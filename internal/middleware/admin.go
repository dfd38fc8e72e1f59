package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/volunteercentral/volunteer-backend/internal/dto"
	"github.com/volunteercentral/volunteer-backend/internal/models"
	"gorm.io/gorm"
)

// AdminRequired verifies the authenticated user has the admin flag set in
// the DB. Non-admin callers get 401, matching the rest of the auth surface
// (no separate 403 is used anywhere in this API).
func AdminRequired(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, userID).Error; err == nil && user.IsAdmin {
			return c.Next()
		}

		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}
