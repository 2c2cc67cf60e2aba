package models

import (
	"testing"
	"time"
)

func TestIsWithdrawableAt(t *testing.T) {
	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	policy := Policy{Status: PolicyStatusApplied}
	policy.CreatedAt = created

	cases := []struct {
		name   string
		status string
		at     time.Time
		want   bool
	}{
		{"applied just created", PolicyStatusApplied, created, true},
		{"applied one second before cutoff", PolicyStatusApplied, created.Add(24*time.Hour - time.Second), true},
		{"applied exactly at cutoff", PolicyStatusApplied, created.Add(24 * time.Hour), false},
		{"applied after cutoff", PolicyStatusApplied, created.Add(25 * time.Hour), false},
		{"withdrawn inside window", PolicyStatusWithdrawn, created.Add(time.Hour), false},
		{"active inside window", PolicyStatusActive, created.Add(time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			policy.Status = tc.status
			if got := policy.IsWithdrawableAt(tc.at); got != tc.want {
				t.Errorf("IsWithdrawableAt(%v) with status %q = %v, want %v", tc.at, tc.status, got, tc.want)
			}
		})
	}
}
