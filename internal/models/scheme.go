package models

import "encoding/json"

// Scheme is a catalog insurance product. Schemes are seeded at startup
// and read-only to the workflow; policies copy amounts at creation.
type Scheme struct {
	BaseModel
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	Description    string   `json:"description"`
	PremiumAmount  float64  `json:"premium_amount"`
	CoverageAmount float64  `json:"coverage_amount"`
	MinAge         int      `gorm:"default:18" json:"min_age"`
	MaxAge         int      `gorm:"default:65" json:"max_age"`
	Features       string   `json:"-"`
	IsActive       bool     `gorm:"default:true" json:"is_active"`
	Policies       []Policy `json:"policies,omitempty"`
}

// FeatureList decodes the stored JSON feature array.
func (s *Scheme) FeatureList() []string {
	var features []string
	if s.Features == "" {
		return features
	}
	if err := json.Unmarshal([]byte(s.Features), &features); err != nil {
		return nil
	}
	return features
}

// SetFeatures encodes an ordered feature list for storage.
func (s *Scheme) SetFeatures(features []string) {
	encoded, err := json.Marshal(features)
	if err != nil {
		return
	}
	s.Features = string(encoded)
}
