package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/volunteercentral/volunteer-backend/internal/dto"
	"github.com/volunteercentral/volunteer-backend/internal/reports"
	"github.com/volunteercentral/volunteer-backend/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// EventsCSV handles GET /report/events/csv (admin).
func (h *ReportHandler) EventsCSV(c *fiber.Ctx) error {
	rows, err := h.reportService.EventRows()
	if err != nil {
		return reportError(c)
	}
	data, err := reports.EventsCSV(rows)
	if err != nil {
		return reportError(c)
	}
	return sendFile(c, "events.csv", "text/csv", data)
}

// EventsPDF handles GET /report/events/pdf (admin).
func (h *ReportHandler) EventsPDF(c *fiber.Ctx) error {
	rows, err := h.reportService.EventRows()
	if err != nil {
		return reportError(c)
	}
	data, err := reports.EventsPDF(rows)
	if err != nil {
		return reportError(c)
	}
	return sendFile(c, "events.pdf", "application/pdf", data)
}

// VolunteerHistoryCSV handles GET /report/volunteer-history/csv (admin).
func (h *ReportHandler) VolunteerHistoryCSV(c *fiber.Ctx) error {
	rows, err := h.reportService.VolunteerRows()
	if err != nil {
		return reportError(c)
	}
	data, err := reports.VolunteerHistoryCSV(rows)
	if err != nil {
		return reportError(c)
	}
	return sendFile(c, "volunteer-history.csv", "text/csv", data)
}

// VolunteerHistoryPDF handles GET /report/volunteer-history/pdf (admin).
func (h *ReportHandler) VolunteerHistoryPDF(c *fiber.Ctx) error {
	rows, err := h.reportService.VolunteerRows()
	if err != nil {
		return reportError(c)
	}
	data, err := reports.VolunteerHistoryPDF(rows)
	if err != nil {
		return reportError(c)
	}
	return sendFile(c, "volunteer-history.pdf", "application/pdf", data)
}

func sendFile(c *fiber.Ctx, filename, contentType string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func reportError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to generate report",
	})
}
