package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/volunteercentral/volunteer-backend/internal/dto"
	"github.com/volunteercentral/volunteer-backend/internal/middleware"
	"github.com/volunteercentral/volunteer-backend/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
	profileService      *services.ProfileService
}

func NewNotificationHandler(notificationService *services.NotificationService, profileService *services.ProfileService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService, profileService: profileService}
}

// List handles GET /notifications - the caller's notifications, newest first.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	profileID, err := h.currentProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	out, err := h.notificationService.List(profileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch notifications",
		})
	}
	return c.JSON(out)
}

// Delete handles DELETE /notifications/:id - owners only.
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	profileID, err := h.currentProfileID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid notification ID",
		})
	}

	if err := h.notificationService.Delete(profileID, uint(id)); err != nil {
		if errors.Is(err, services.ErrNotificationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Notification not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete notification",
		})
	}
	return c.JSON(fiber.Map{"message": "Notification deleted"})
}

func (h *NotificationHandler) currentProfileID(c *fiber.Ctx) (uint, error) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return 0, err
	}
	profile, err := h.profileService.GetOrCreate(userID)
	if err != nil {
		return 0, err
	}
	return profile.ID, nil
}
