package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/securebank/internal/middleware"
	"github.com/example/securebank/internal/models"
)

// ProfileHandler manages user profile endpoints.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// GetProfile returns the authenticated user's profile. The digital
// token is never included; it was displayed once at registration.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":             user.ID,
			"username":       user.Username,
			"full_name":      user.FullName,
			"email":          user.Email,
			"phone":          user.Phone,
			"date_of_birth":  user.DateOfBirth,
			"age":            user.Age,
			"gender":         user.Gender,
			"address":        user.Address,
			"pan_number":     user.PANNumber,
			"account_status": user.AccountStatus,
			"last_login":     user.LastLogin,
			"created_at":     user.CreatedAt,
		},
	})
}

type updateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// UpdateProfile updates the mutable profile fields. Identity fields
// such as PAN, date of birth and the digital token are fixed at
// registration.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if strings.TrimSpace(req.FullName) != "" {
		updates["full_name"] = strings.TrimSpace(req.FullName)
	}
	if strings.TrimSpace(req.Phone) != "" {
		updates["phone"] = strings.TrimSpace(req.Phone)
	}
	if strings.TrimSpace(req.Address) != "" {
		updates["address"] = strings.TrimSpace(req.Address)
	}

	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "nothing to update")
	}

	if err := h.db.Model(&models.User{}).Where("id = ?", userID).
		Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}
