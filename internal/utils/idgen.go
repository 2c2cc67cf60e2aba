package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxIDAttempts = 5

// ErrIDExhausted is returned when a unique identifier could not be
// produced within the attempt budget.
var ErrIDExhausted = errors.New("exhausted attempts generating a unique identifier")

// GenerateUnique draws candidates from gen until exists reports the
// value as unused. Timestamp+random identifiers are not guaranteed
// unique, so callers must always supply an exists predicate backed by
// the store.
func GenerateUnique(gen func() string, exists func(string) (bool, error)) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		candidate := gen()
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", ErrIDExhausted
}

// NewDigitalToken returns an 8-character uppercase token candidate.
func NewDigitalToken() string {
	return randomSuffix(8)
}

// NewPolicyNumber returns a POL-prefixed policy number candidate.
func NewPolicyNumber(now time.Time) string {
	return "POL" + now.Format("200601021504") + randomSuffix(6)
}

// NewClaimNumber returns a CLM-prefixed claim number candidate.
func NewClaimNumber(now time.Time) string {
	return "CLM" + now.Format("200601021504") + randomSuffix(6)
}

func randomSuffix(n int) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:n])
}
