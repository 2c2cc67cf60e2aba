package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/securebank/internal/models"
	"github.com/example/securebank/internal/storage"
	"github.com/example/securebank/internal/utils"
)

// ClaimService files claims against active policies. Claims are
// create-only; there is no transition engine.
type ClaimService struct {
	db    *gorm.DB
	docs  storage.DocumentStore
	clock Clock
}

// NewClaimService constructs a ClaimService.
func NewClaimService(db *gorm.DB, docs storage.DocumentStore, clock Clock) *ClaimService {
	return &ClaimService{db: db, docs: docs, clock: clock}
}

// DocumentUpload is one supporting document attached to a claim.
type DocumentUpload struct {
	Name string
	Data []byte
}

// FileClaim verifies the digital token, re-validates that the policy
// is active and owned by the caller, persists every document and then
// creates the claim record. If any document fails to persist the whole
// operation fails and no claim row is written.
func (s *ClaimService) FileClaim(ctx context.Context, userID, policyID uuid.UUID, amount float64, documents []DocumentUpload, submittedToken string) (*models.Claim, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	if !TokenMatches(&user, submittedToken) {
		return nil, ErrTokenMismatch
	}

	if amount <= 0 {
		return nil, NewValidationError("claim_amount", "must be greater than zero")
	}

	var policy models.Policy
	if err := s.db.First(&policy, "id = ? AND user_id = ?", policyID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotEligible
		}
		return nil, err
	}
	if policy.Status != models.PolicyStatusActive {
		return nil, ErrPolicyNotEligible
	}

	refs := make([]string, 0, len(documents))
	for _, doc := range documents {
		ref, err := s.docs.Store(ctx, doc.Data, doc.Name)
		if err != nil {
			return nil, &StorageError{Err: err}
		}
		refs = append(refs, ref)
	}

	now := s.clock.Now()
	claimNumber, err := utils.GenerateUnique(
		func() string { return utils.NewClaimNumber(now) },
		func(candidate string) (bool, error) {
			var count int64
			err := s.db.Model(&models.Claim{}).Where("claim_number = ?", candidate).Count(&count).Error
			return count > 0, err
		},
	)
	if err != nil {
		return nil, err
	}

	claim := models.Claim{
		ClaimNumber: claimNumber,
		UserID:      user.ID,
		PolicyID:    policy.ID,
		ClaimAmount: amount,
		Status:      models.ClaimStatusSubmitted,
		SubmittedAt: now,
	}
	claim.CreatedAt = now
	claim.SetDocumentRefs(refs)

	if err := s.db.Create(&claim).Error; err != nil {
		return nil, err
	}

	return &claim, nil
}

// ListForUser returns the user's claims newest-first.
func (s *ClaimService) ListForUser(userID uuid.UUID) ([]models.Claim, error) {
	var claims []models.Claim
	err := s.db.Where("user_id = ?", userID).
		Preload("Policy").
		Order("submitted_at desc").
		Find(&claims).Error
	return claims, err
}
