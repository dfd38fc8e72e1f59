package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/volunteercentral/volunteer-backend/internal/dto"
	"github.com/volunteercentral/volunteer-backend/internal/services"
	"github.com/volunteercentral/volunteer-backend/internal/validation"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List handles GET /events.
func (h *EventHandler) List(c *fiber.Ctx) error {
	events, err := h.eventService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch events",
		})
	}
	return c.JSON(events)
}

// Get handles GET /events/:id.
func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event ID",
		})
	}

	event, err := h.eventService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch event",
		})
	}
	return c.JSON(event)
}

// Create handles POST /events (admin).
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event fields",
		})
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create event",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// Update handles PUT /events/:id (admin). Skill tags are diffed and every
// assigned volunteer is notified.
func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event ID",
		})
	}

	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event fields",
		})
	}

	event, err := h.eventService.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update event",
		})
	}
	return c.JSON(event)
}

// Delete handles DELETE /events/:id (admin).
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event ID",
		})
	}

	if err := h.eventService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete event",
		})
	}
	return c.JSON(fiber.Map{"message": "Event deleted"})
}

// ListEventSkills handles GET /event-skills.
func (h *EventHandler) ListEventSkills(c *fiber.Ctx) error {
	skills, err := h.eventService.ListEventSkills()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch event skills",
		})
	}
	return c.JSON(skills)
}

// CreateEventSkill handles POST /event-skills (admin).
func (h *EventHandler) CreateEventSkill(c *fiber.Ctx) error {
	var req dto.EventSkillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "event and name are required",
		})
	}

	skill, err := h.eventService.CreateEventSkill(&req)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create event skill",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(skill)
}
