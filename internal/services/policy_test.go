package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/securebank/internal/models"
	"github.com/example/securebank/internal/services"
)

func TestApplyCreatesPolicyWithNominee(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	user := registerTestUser(t, identity, "asha", "ABCDE1234F")
	scheme := seedTestScheme(t, db)

	policy, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name:         "Jane Doe",
		Relationship: "spouse",
	}, user.DigitalToken)
	require.NoError(t, err)

	assert.Equal(t, models.PolicyStatusApplied, policy.Status)
	assert.Equal(t, 750.0, policy.PremiumAmount)
	assert.Equal(t, 10000000.0, policy.CoverageAmount)
	assert.True(t, policy.EndDate.Equal(policy.StartDate.AddDate(0, 0, 3650)))
	assert.Regexp(t, `^POL\d{12}[A-Z0-9]{6}$`, policy.PolicyNumber)

	require.NotNil(t, policy.Nominee)
	assert.Equal(t, "Jane Doe", policy.Nominee.Name)
	assert.Equal(t, "spouse", policy.Nominee.Relationship)
	assert.Equal(t, policy.ID, policy.Nominee.PolicyID)
}

func TestApplyWrongTokenWritesNothing(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	user := registerTestUser(t, identity, "asha", "ABCDE1234F")
	scheme := seedTestScheme(t, db)

	_, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name:         "Jane Doe",
		Relationship: "spouse",
	}, "WRONGTOK")
	require.ErrorIs(t, err, services.ErrTokenMismatch)

	assert.Zero(t, countRows(t, db, &models.Policy{}))
	assert.Zero(t, countRows(t, db, &models.Nominee{}))
}

func TestApplyCopiesAmountsAtCreation(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	user := registerTestUser(t, identity, "asha", "ABCDE1234F")
	scheme := seedTestScheme(t, db)

	policy, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name:         "Jane Doe",
		Relationship: "spouse",
	}, user.DigitalToken)
	require.NoError(t, err)

	// Later scheme edits must not reach the issued policy.
	require.NoError(t, db.Model(&models.Scheme{}).Where("id = ?", scheme.ID).
		Update("premium_amount", 999).Error)

	var reloaded models.Policy
	require.NoError(t, db.First(&reloaded, "id = ?", policy.ID).Error)
	assert.Equal(t, 750.0, reloaded.PremiumAmount)
}

func TestApplyInactiveSchemeRejected(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	user := registerTestUser(t, identity, "asha", "ABCDE1234F")
	scheme := seedTestScheme(t, db)
	require.NoError(t, db.Model(&models.Scheme{}).Where("id = ?", scheme.ID).
		Update("is_active", false).Error)

	_, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name:         "Jane Doe",
		Relationship: "spouse",
	}, user.DigitalToken)

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, countRows(t, db, &models.Policy{}))
}

func TestWithdrawWithinWindow(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	user := registerTestUser(t, identity, "asha", "ABCDE1234F")
	scheme := seedTestScheme(t, db)

	policy, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name: "Jane Doe", Relationship: "spouse",
	}, user.DigitalToken)
	require.NoError(t, err)

	clock.Advance(23 * time.Hour)
	require.NoError(t, policies.Withdraw(user.ID, policy.ID))

	var reloaded models.Policy
	require.NoError(t, db.First(&reloaded, "id = ?", policy.ID).Error)
	assert.Equal(t, models.PolicyStatusWithdrawn, reloaded.Status)
}

func TestWithdrawIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	user := registerTestUser(t, identity, "asha", "ABCDE1234F")
	scheme := seedTestScheme(t, db)

	policy, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name: "Jane Doe", Relationship: "spouse",
	}, user.DigitalToken)
	require.NoError(t, err)

	require.NoError(t, policies.Withdraw(user.ID, policy.ID))
	// Second call finds the policy already withdrawn and does nothing.
	require.NoError(t, policies.Withdraw(user.ID, policy.ID))

	var reloaded models.Policy
	require.NoError(t, db.First(&reloaded, "id = ?", policy.ID).Error)
	assert.Equal(t, models.PolicyStatusWithdrawn, reloaded.Status)
}

func TestWithdrawAfterWindowCloses(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	user := registerTestUser(t, identity, "asha", "ABCDE1234F")
	scheme := seedTestScheme(t, db)

	policy, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name: "Jane Doe", Relationship: "spouse",
	}, user.DigitalToken)
	require.NoError(t, err)

	clock.Advance(24 * time.Hour)
	err = policies.Withdraw(user.ID, policy.ID)
	require.ErrorIs(t, err, services.ErrNotWithdrawable)

	var reloaded models.Policy
	require.NoError(t, db.First(&reloaded, "id = ?", policy.ID).Error)
	assert.Equal(t, models.PolicyStatusApplied, reloaded.Status)
}

func TestWithdrawActivePolicyRejected(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	user := registerTestUser(t, identity, "asha", "ABCDE1234F")
	scheme := seedTestScheme(t, db)

	policy, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name: "Jane Doe", Relationship: "spouse",
	}, user.DigitalToken)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Policy{}).Where("id = ?", policy.ID).
		Update("status", models.PolicyStatusActive).Error)

	err = policies.Withdraw(user.ID, policy.ID)
	require.ErrorIs(t, err, services.ErrNotWithdrawable)
}

func TestWithdrawRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	owner := registerTestUser(t, identity, "owner", "ABCDE1234F")
	other := registerTestUser(t, identity, "other", "FGHIJ5678K")
	scheme := seedTestScheme(t, db)

	policy, err := policies.Apply(owner.ID, scheme.ID, services.NomineeInput{
		Name: "Jane Doe", Relationship: "spouse",
	}, owner.DigitalToken)
	require.NoError(t, err)

	err = policies.Withdraw(other.ID, policy.ID)
	require.Error(t, err)

	var reloaded models.Policy
	require.NoError(t, db.First(&reloaded, "id = ?", policy.ID).Error)
	assert.Equal(t, models.PolicyStatusApplied, reloaded.Status)
}

func TestListForUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	clock := newFakeClock(time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC))
	identity := services.NewIdentityService(db, clock)
	policies := services.NewPolicyService(db, clock)

	user := registerTestUser(t, identity, "asha", "ABCDE1234F")
	scheme := seedTestScheme(t, db)

	first, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name: "Jane Doe", Relationship: "spouse",
	}, user.DigitalToken)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	second, err := policies.Apply(user.ID, scheme.ID, services.NomineeInput{
		Name: "John Doe", Relationship: "parent",
	}, user.DigitalToken)
	require.NoError(t, err)

	listed, err := policies.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, second.ID, listed[0].ID)
	assert.Equal(t, first.ID, listed[1].ID)
}
