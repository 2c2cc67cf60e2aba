package models

import (
	"time"

	"github.com/google/uuid"
)

// Policy status values. A policy enters "applied", may be withdrawn by
// its owner within the cooling-off window, and is promoted to "active"
// externally; "active" and "withdrawn" are terminal here.
const (
	PolicyStatusApplied   = "applied"
	PolicyStatusActive    = "active"
	PolicyStatusWithdrawn = "withdrawn"
)

// WithdrawalWindow is the cooling-off period after application during
// which the owner may withdraw without penalty.
const WithdrawalWindow = 24 * time.Hour

// Policy is one insurance contract owned by a user. Premium and
// coverage are copied from the scheme at creation time so later scheme
// edits never affect issued policies.
type Policy struct {
	BaseModel
	PolicyNumber   string    `gorm:"uniqueIndex" json:"policy_number"`
	UserID         uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User           *User     `json:"user,omitempty"`
	SchemeID       uuid.UUID `gorm:"type:uuid;index" json:"scheme_id"`
	Scheme         *Scheme   `json:"scheme,omitempty"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	PremiumAmount  float64   `json:"premium_amount"`
	CoverageAmount float64   `json:"coverage_amount"`
	Status         string    `gorm:"default:applied" json:"status"`
	Nominee        *Nominee  `json:"nominee,omitempty"`
}

// IsWithdrawableAt reports whether the policy can still be withdrawn
// at the given instant. The window is strictly less than 24 hours from
// creation and is always recomputed, never stored.
func (p *Policy) IsWithdrawableAt(now time.Time) bool {
	return p.Status == PolicyStatusApplied && now.Sub(p.CreatedAt) < WithdrawalWindow
}

// Nominee is the beneficiary attached to a policy at creation. It is
// created in the same transaction as its policy and never deleted
// independently.
type Nominee struct {
	BaseModel
	UserID       uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	PolicyID     uuid.UUID `gorm:"type:uuid;index" json:"policy_id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
}
