package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/example/securebank/internal/middleware"
	"github.com/example/securebank/internal/services"
)

// PolicyHandler exposes the policy lifecycle endpoints.
type PolicyHandler struct {
	policies *services.PolicyService
}

// NewPolicyHandler constructs PolicyHandler.
func NewPolicyHandler(policies *services.PolicyService) *PolicyHandler {
	return &PolicyHandler{policies: policies}
}

type applyPolicyRequest struct {
	SchemeID            string `json:"scheme_id"`
	DigitalToken        string `json:"digital_token"`
	NomineeName         string `json:"nominee_name"`
	NomineeRelationship string `json:"nominee_relationship"`
}

// Apply submits a policy application for the authenticated user.
func (h *PolicyHandler) Apply(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req applyPolicyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	schemeID, err := uuid.Parse(req.SchemeID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid scheme id")
	}

	nominee := services.NomineeInput{
		Name:         req.NomineeName,
		Relationship: req.NomineeRelationship,
	}

	policy, err := h.policies.Apply(userID, schemeID, nominee, req.DigitalToken)
	if err != nil {
		return mapDomainError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":              policy.ID,
			"policy_number":   policy.PolicyNumber,
			"status":          policy.Status,
			"start_date":      policy.StartDate,
			"end_date":        policy.EndDate,
			"premium_amount":  policy.PremiumAmount,
			"coverage_amount": policy.CoverageAmount,
			"nominee": fiber.Map{
				"name":         policy.Nominee.Name,
				"relationship": policy.Nominee.Relationship,
			},
		},
	})
}

// Withdraw cancels an applied policy within the cooling-off window.
func (h *PolicyHandler) Withdraw(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	policyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.policies.Withdraw(userID, policyID); err != nil {
		return mapDomainError(err)
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListPolicies returns the authenticated user's policies.
func (h *PolicyHandler) ListPolicies(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	policies, err := h.policies.ListForUser(userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": policies})
}
