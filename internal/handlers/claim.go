package handlers

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/securebank/internal/middleware"
	"github.com/example/securebank/internal/services"
)

// ClaimHandler exposes the claim submission endpoints. Claims arrive
// as multipart forms carrying the supporting documents.
type ClaimHandler struct {
	claims *services.ClaimService
}

// NewClaimHandler constructs ClaimHandler.
func NewClaimHandler(claims *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claims: claims}
}

// FileClaim submits a claim against an active policy.
func (h *ClaimHandler) FileClaim(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	policyID, err := uuid.Parse(c.FormValue("policy_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid policy id")
	}

	amount, err := strconv.ParseFloat(c.FormValue("claim_amount"), 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid claim amount")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid multipart form")
	}

	var documents []services.DocumentUpload
	for _, file := range form.File["documents"] {
		opened, err := file.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unreadable document: "+file.Filename)
		}
		data, err := io.ReadAll(opened)
		opened.Close()
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "unreadable document: "+file.Filename)
		}
		documents = append(documents, services.DocumentUpload{Name: file.Filename, Data: data})
	}

	claim, err := h.claims.FileClaim(c.Context(), userID, policyID, amount, documents, c.FormValue("digital_token"))
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":             claim.ID,
			"claim_number":   claim.ClaimNumber,
			"claim_amount":   claim.ClaimAmount,
			"status":         claim.Status,
			"submitted_at":   claim.SubmittedAt,
			"document_count": len(claim.DocumentRefs()),
		},
	})
}

// ListClaims returns the authenticated user's claims.
func (h *ClaimHandler) ListClaims(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	claims, err := h.claims.ListForUser(userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": claims})
}
