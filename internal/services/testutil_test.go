package services_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/securebank/internal/database"
	"github.com/example/securebank/internal/models"
	"github.com/example/securebank/internal/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	return db
}

type fakeClock struct {
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// memStore keeps documents in memory and records the stored names.
type memStore struct {
	refs []string
}

func (s *memStore) Store(_ context.Context, _ []byte, suggestedName string) (string, error) {
	ref := "mem/" + suggestedName
	s.refs = append(s.refs, ref)
	return ref, nil
}

// failStore fails on the nth call (1-based), succeeding before that.
type failStore struct {
	failOn int
	calls  int
}

func (s *failStore) Store(_ context.Context, _ []byte, suggestedName string) (string, error) {
	s.calls++
	if s.calls >= s.failOn {
		return "", errors.New("disk full")
	}
	return "mem/" + suggestedName, nil
}

func registerTestUser(t *testing.T, identity *services.IdentityService, username, pan string) *models.User {
	t.Helper()

	user, err := identity.Register(services.RegisterInput{
		Username:    username,
		Password:    "s3cret-pass",
		FullName:    "Test User",
		Email:       username + "@example.com",
		Phone:       "9876543210",
		DateOfBirth: "1994-05-20",
		Gender:      "female",
		Address:     "12 Marine Drive, Mumbai",
		PANNumber:   pan,
	})
	require.NoError(t, err)
	return user
}

func seedTestScheme(t *testing.T, db *gorm.DB) *models.Scheme {
	t.Helper()

	scheme := models.Scheme{
		Name:           "Pure Life Term Insurance",
		Category:       "life",
		Description:    "Pure term life insurance.",
		PremiumAmount:  750,
		CoverageAmount: 10000000,
		MinAge:         18,
		MaxAge:         65,
		IsActive:       true,
	}
	scheme.SetFeatures([]string{"Death Benefit up to ₹1 Crore", "Lowest Premium Rates"})
	require.NoError(t, db.Create(&scheme).Error)
	return &scheme
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
