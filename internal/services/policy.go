package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/securebank/internal/models"
	"github.com/example/securebank/internal/utils"
)

// PolicyTermDays is the contract length applied to every new policy.
const PolicyTermDays = 3650

// PolicyService drives the policy lifecycle: application, the 24-hour
// cooling-off withdrawal and owner-scoped listing.
type PolicyService struct {
	db    *gorm.DB
	clock Clock
}

// NewPolicyService constructs a PolicyService.
func NewPolicyService(db *gorm.DB, clock Clock) *PolicyService {
	return &PolicyService{db: db, clock: clock}
}

// NomineeInput carries the beneficiary details for a new policy.
type NomineeInput struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
}

// Apply creates a policy in the applied state together with its
// nominee, in one transaction. Premium and coverage are copied from
// the scheme at this moment. A token mismatch leaves no partial state.
func (s *PolicyService) Apply(userID, schemeID uuid.UUID, nominee NomineeInput, submittedToken string) (*models.Policy, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	if !TokenMatches(&user, submittedToken) {
		return nil, ErrTokenMismatch
	}

	var scheme models.Scheme
	if err := s.db.First(&scheme, "id = ? AND is_active = ?", schemeID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewValidationError("scheme_id", "scheme not found or inactive")
		}
		return nil, err
	}

	if strings.TrimSpace(nominee.Name) == "" {
		return nil, NewValidationError("nominee_name", "is required")
	}
	if strings.TrimSpace(nominee.Relationship) == "" {
		return nil, NewValidationError("nominee_relationship", "is required")
	}

	now := s.clock.Now()
	policyNumber, err := utils.GenerateUnique(
		func() string { return utils.NewPolicyNumber(now) },
		func(candidate string) (bool, error) {
			var count int64
			err := s.db.Model(&models.Policy{}).Where("policy_number = ?", candidate).Count(&count).Error
			return count > 0, err
		},
	)
	if err != nil {
		return nil, err
	}

	policy := models.Policy{
		PolicyNumber:   policyNumber,
		UserID:         user.ID,
		SchemeID:       scheme.ID,
		StartDate:      now,
		EndDate:        now.AddDate(0, 0, PolicyTermDays),
		PremiumAmount:  scheme.PremiumAmount,
		CoverageAmount: scheme.CoverageAmount,
		Status:         models.PolicyStatusApplied,
	}
	// CreatedAt anchors the withdrawal window, so it must come from
	// the same clock the window check uses.
	policy.CreatedAt = now

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&policy).Error; err != nil {
			return err
		}

		record := models.Nominee{
			UserID:       user.ID,
			PolicyID:     policy.ID,
			Name:         strings.TrimSpace(nominee.Name),
			Relationship: strings.TrimSpace(nominee.Relationship),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		policy.Nominee = &record
		return nil
	})
	if err != nil {
		return nil, err
	}

	policy.Scheme = &scheme
	return &policy, nil
}

// Withdraw moves an applied policy to withdrawn if the caller owns it
// and the cooling-off window is still open. Repeating the call after a
// successful withdrawal is a no-op. The status transition is a guarded
// conditional update so two concurrent callers produce at most one
// state change.
func (s *PolicyService) Withdraw(userID, policyID uuid.UUID) error {
	var policy models.Policy
	if err := s.db.First(&policy, "id = ? AND user_id = ?", policyID, userID).Error; err != nil {
		return err
	}

	if policy.Status == models.PolicyStatusWithdrawn {
		return nil
	}

	if !policy.IsWithdrawableAt(s.clock.Now()) {
		return ErrNotWithdrawable
	}

	result := s.db.Model(&models.Policy{}).
		Where("id = ? AND status = ?", policy.ID, models.PolicyStatusApplied).
		Update("status", models.PolicyStatusWithdrawn)
	if result.Error != nil {
		return result.Error
	}

	// RowsAffected == 0 means a concurrent withdrawal won the race;
	// the policy is already out of the applied state, so nothing to do.
	return nil
}

// ListForUser returns the user's policies newest-first.
func (s *PolicyService) ListForUser(userID uuid.UUID) ([]models.Policy, error) {
	var policies []models.Policy
	err := s.db.Where("user_id = ?", userID).
		Preload("Scheme").
		Preload("Nominee").
		Order("created_at desc").
		Find(&policies).Error
	return policies, err
}
