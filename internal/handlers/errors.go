package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/securebank/internal/services"
)

// mapDomainError translates workflow errors into fiber errors so every
// handler surfaces the taxonomy consistently.
func mapDomainError(err error) error {
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError
	var storageErr *services.StorageError

	switch {
	case errors.As(err, &validationErr):
		return fiber.NewError(fiber.StatusBadRequest, validationErr.Error())
	case errors.As(err, &conflictErr):
		return fiber.NewError(fiber.StatusConflict, conflictErr.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrTokenMismatch):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrPolicyNotEligible),
		errors.Is(err, services.ErrNotWithdrawable):
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &storageErr):
		return fiber.NewError(fiber.StatusServiceUnavailable, "document upload failed, please resubmit")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}

	return err
}
