package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/securebank/internal/models"
	"github.com/example/securebank/internal/utils"
)

// SchemeHandler serves the read-only insurance catalog.
type SchemeHandler struct {
	db *gorm.DB
}

// NewSchemeHandler constructs SchemeHandler.
func NewSchemeHandler(db *gorm.DB) *SchemeHandler {
	return &SchemeHandler{db: db}
}

// ListSchemes returns paginated active schemes.
func (h *SchemeHandler) ListSchemes(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Scheme{}).Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var schemes []models.Scheme
	if err := query.Limit(pg.Limit).Offset(pg.Offset).Order("premium_amount asc").
		Find(&schemes).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    schemeViews(schemes),
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetScheme returns a single scheme by ID.
func (h *SchemeHandler) GetScheme(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var scheme models.Scheme
	if err := h.db.First(&scheme, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "scheme not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": schemeView(scheme)})
}

func schemeView(s models.Scheme) fiber.Map {
	return fiber.Map{
		"id":              s.ID,
		"name":            s.Name,
		"category":        s.Category,
		"description":     s.Description,
		"premium_amount":  s.PremiumAmount,
		"coverage_amount": s.CoverageAmount,
		"min_age":         s.MinAge,
		"max_age":         s.MaxAge,
		"features":        s.FeatureList(),
		"is_active":       s.IsActive,
	}
}

func schemeViews(schemes []models.Scheme) []fiber.Map {
	views := make([]fiber.Map, 0, len(schemes))
	for _, s := range schemes {
		views = append(views, schemeView(s))
	}
	return views
}
