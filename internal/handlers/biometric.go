package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/securebank/internal/services"
)

// BiometricHandler fronts the external biometric verification stub
// used during registration and before financial actions.
type BiometricHandler struct {
	verifier services.BiometricVerifier
}

// NewBiometricHandler constructs BiometricHandler.
func NewBiometricHandler(verifier services.BiometricVerifier) *BiometricHandler {
	return &BiometricHandler{verifier: verifier}
}

// VerifyProximity checks a face-proximity capture.
func (h *BiometricHandler) VerifyProximity(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": h.verifier.Verify(c.Body())})
}

// VerifyRetina checks a retina capture.
func (h *BiometricHandler) VerifyRetina(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": h.verifier.Verify(c.Body())})
}
