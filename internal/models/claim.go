package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ClaimStatusSubmitted is the only claim status in scope; claims have
// no transition engine.
const ClaimStatusSubmitted = "submitted"

// Claim is a payout request against an active policy.
type Claim struct {
	BaseModel
	ClaimNumber   string    `gorm:"uniqueIndex" json:"claim_number"`
	UserID        uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	User          *User     `json:"user,omitempty"`
	PolicyID      uuid.UUID `gorm:"type:uuid;index" json:"policy_id"`
	Policy        *Policy   `json:"policy,omitempty"`
	ClaimAmount   float64   `json:"claim_amount"`
	DocumentPaths string    `json:"-"`
	Status        string    `gorm:"default:submitted" json:"status"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// DocumentRefs decodes the ordered list of stored document references.
func (c *Claim) DocumentRefs() []string {
	var refs []string
	if c.DocumentPaths == "" {
		return refs
	}
	if err := json.Unmarshal([]byte(c.DocumentPaths), &refs); err != nil {
		return nil
	}
	return refs
}

// SetDocumentRefs encodes document references for storage.
func (c *Claim) SetDocumentRefs(refs []string) {
	encoded, err := json.Marshal(refs)
	if err != nil {
		return
	}
	c.DocumentPaths = string(encoded)
}
