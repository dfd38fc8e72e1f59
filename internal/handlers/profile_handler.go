package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/volunteercentral/volunteer-backend/internal/dto"
	"github.com/volunteercentral/volunteer-backend/internal/middleware"
	"github.com/volunteercentral/volunteer-backend/internal/services"
	"github.com/volunteercentral/volunteer-backend/internal/validation"
)

const dateLayout = "2006-01-02"

var errNoIdentity = errors.New("no authenticated user in context")

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /profile - returns the caller's profile, creating
// an empty one on first access.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.profileService.GetOrCreate(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(profile)
}

// UpdateProfile handles PUT /profile.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid profile fields",
		})
	}

	profile, err := h.profileService.Update(userID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}

	return c.JSON(profile)
}

// ListAvailabilities handles GET /availabilities.
func (h *ProfileHandler) ListAvailabilities(c *fiber.Ctx) error {
	profileID, err := h.currentProfileID(c)
	if err != nil {
		return respondIdentityError(c, err)
	}

	out, err := h.profileService.ListAvailabilities(profileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch availabilities",
		})
	}
	return c.JSON(out)
}

// AddAvailabilities handles POST /availabilities - additive upsert keyed on
// (profile, date).
func (h *ProfileHandler) AddAvailabilities(c *fiber.Ctx) error {
	profileID, err := h.currentProfileID(c)
	if err != nil {
		return respondIdentityError(c, err)
	}

	var req dto.AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "dates must be a non-empty list of YYYY-MM-DD values",
		})
	}

	dates := make([]time.Time, len(req.Dates))
	for i, raw := range req.Dates {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "dates must be a non-empty list of YYYY-MM-DD values",
			})
		}
		dates[i] = d
	}

	out, err := h.profileService.AddAvailabilities(profileID, dates)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save availabilities",
		})
	}
	return c.JSON(out)
}

// ListSkills handles GET /skills.
func (h *ProfileHandler) ListSkills(c *fiber.Ctx) error {
	profileID, err := h.currentProfileID(c)
	if err != nil {
		return respondIdentityError(c, err)
	}

	out, err := h.profileService.ListSkills(profileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch skills",
		})
	}
	return c.JSON(out)
}

// AddSkills handles POST /skills - additive upsert keyed on (profile, name).
func (h *ProfileHandler) AddSkills(c *fiber.Ctx) error {
	profileID, err := h.currentProfileID(c)
	if err != nil {
		return respondIdentityError(c, err)
	}

	var req dto.SkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "skills must be a non-empty list of names",
		})
	}

	out, err := h.profileService.AddSkills(profileID, req.Skills)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save skills",
		})
	}
	return c.JSON(out)
}

// currentProfileID resolves the caller's profile id, creating the profile
// on first use.
func (h *ProfileHandler) currentProfileID(c *fiber.Ctx) (uint, error) {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return 0, errNoIdentity
	}
	profile, err := h.profileService.GetOrCreate(userID)
	if err != nil {
		return 0, err
	}
	return profile.ID, nil
}

func respondIdentityError(c *fiber.Ctx, err error) error {
	if errors.Is(err, errNoIdentity) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to load profile",
	})
}
