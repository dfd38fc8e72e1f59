package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/volunteercentral/volunteer-backend/internal/dto"
	"github.com/volunteercentral/volunteer-backend/internal/middleware"
	"github.com/volunteercentral/volunteer-backend/internal/models"
	"github.com/volunteercentral/volunteer-backend/internal/services"
	"github.com/volunteercentral/volunteer-backend/internal/validation"
)

type HistoryHandler struct {
	assignmentService *services.AssignmentService
	profileService    *services.ProfileService
}

func NewHistoryHandler(assignmentService *services.AssignmentService, profileService *services.ProfileService) *HistoryHandler {
	return &HistoryHandler{assignmentService: assignmentService, profileService: profileService}
}

// List handles GET /volunteer-history. Admins see every record, volunteers
// see their own.
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	if middleware.IsAdminClaim(c) {
		histories, err := h.assignmentService.ListAll()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to fetch volunteer history",
			})
		}
		return c.JSON(toHistoryResponses(histories))
	}

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

	histories, err := h.assignmentService.ListForProfile(profile.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch volunteer history",
		})
	}
	return c.JSON(toHistoryResponses(histories))
}

// Get handles GET /history/:id. Volunteers can only read their own records;
// anything else is reported as not found.
func (h *HistoryHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid history ID",
		})
	}

	history, err := h.assignmentService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrHistoryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Volunteer history not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch volunteer history",
		})
	}

	if !middleware.IsAdminClaim(c) {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		profile, err := h.profileService.GetOrCreate(userID)
		if err != nil || profile.ID != history.ProfileID {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Volunteer history not found",
			})
		}
	}

	return c.JSON(toHistoryResponse(*history))
}

// BulkCreate handles POST /volunteer-history/bulk-create (admin). Unknown
// profile ids are skipped; the response carries only the rows written.
func (h *HistoryHandler) BulkCreate(c *fiber.Ctx) error {
	var req dto.BulkAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "event and user_profiles are required",
		})
	}

	histories, err := h.assignmentService.Assign(req.Event, req.UserProfiles)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to assign volunteers",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(toHistoryResponses(histories))
}

func toHistoryResponse(h models.VolunteerHistory) dto.HistoryResponse {
	return dto.HistoryResponse{
		ID:                h.ID,
		ProfileID:         h.ProfileID,
		EventID:           h.EventID,
		Status:            h.Status,
		ParticipationDate: h.ParticipationDate,
	}
}

func toHistoryResponses(histories []models.VolunteerHistory) []dto.HistoryResponse {
	out := make([]dto.HistoryResponse, len(histories))
	for i, h := range histories {
		out[i] = toHistoryResponse(h)
	}
	return out
}
