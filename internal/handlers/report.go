package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/securebank/internal/middleware"
	"github.com/example/securebank/internal/services"
)

// ReportHandler exposes the support ticket intake flows.
type ReportHandler struct {
	reports *services.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type submitReportRequest struct {
	ReportType  string `json:"report_type"`
	Description string `json:"description"`
}

// SubmitReport files an unauthorized-transaction report or
// complaint/feedback entry and returns its reference id.
func (h *ReportHandler) SubmitReport(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req submitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	reference, err := h.reports.Submit(userID, req.ReportType, req.Description)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"reference_id": reference,
	})
}
