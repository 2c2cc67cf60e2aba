package database

import (
	"database/sql"
	"log"
	"net/url"
	"strings"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/securebank/internal/models"
)

var db *gorm.DB

// Connect initializes the database connection, runs migrations and
// seeds the scheme catalog.
func Connect(dsn string) *gorm.DB {
	if db != nil {
		return db
	}

	if err := ensureDatabase(dsn); err != nil {
		log.Fatalf("failed to ensure database: %v", err)
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := conn.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Printf("warning: failed to ensure uuid-ossp extension: %v", err)
	}

	if err := Migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	if err := SeedSchemes(conn); err != nil {
		log.Fatalf("scheme seeding failed: %v", err)
	}

	db = conn
	return db
}

// DB exposes the initialized gorm.DB instance.
func DB() *gorm.DB {
	return db
}

// Migrate applies the schema in dependency order. Run explicitly at
// startup, never lazily from the workflow core.
func Migrate(conn *gorm.DB) error {
	migrations := []interface{}{
		&models.User{},
		&models.Scheme{},
		&models.Policy{},
		&models.Nominee{},
		&models.Claim{},
		&models.Report{},
	}

	for _, migration := range migrations {
		if err := conn.AutoMigrate(migration); err != nil {
			return err
		}
	}

	return nil
}

// SeedSchemes inserts the life insurance catalog on first boot. The
// catalog is read-only afterwards; a non-empty table is left alone.
func SeedSchemes(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Scheme{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	schemes := defaultSchemes()
	if err := conn.Create(&schemes).Error; err != nil {
		return err
	}

	log.Printf("[Database] Seeded %d insurance schemes", len(schemes))
	return nil
}

func defaultSchemes() []models.Scheme {
	type seed struct {
		name     string
		desc     string
		premium  float64
		coverage float64
		minAge   int
		maxAge   int
		features []string
	}

	seeds := []seed{
		{
			name:     "Pure Life Term Insurance",
			desc:     "Pure term life insurance providing maximum coverage at lowest premium. No maturity benefit, only death benefit.",
			premium:  750,
			coverage: 10000000,
			features: []string{"Death Benefit up to ₹1 Crore", "Lowest Premium Rates", "Tax Benefits under Section 80C", "Online Policy Management", "Quick Claim Settlement"},
		},
		{
			name:     "Whole Life Insurance Plan",
			desc:     "Lifelong life insurance coverage with guaranteed death benefit and cash value accumulation.",
			premium:  2000,
			coverage: 1500000,
			features: []string{"Lifelong Coverage", "Guaranteed Death Benefit", "Cash Value Accumulation", "Loan Against Policy", "Tax Benefits on Premium"},
		},
		{
			name:     "Endowment Life Insurance",
			desc:     "Life insurance with savings component providing maturity benefit if you survive the policy term.",
			premium:  3000,
			coverage: 2000000,
			features: []string{"Death Benefit + Maturity Benefit", "Guaranteed Returns", "Bonus Additions", "Life Coverage Throughout", "Wealth Creation"},
		},
		{
			name:     "Child Life Insurance Plan",
			desc:     "Life insurance plan securing child's future with education benefits and life coverage.",
			premium:  1500,
			coverage: 2500000,
			features: []string{"Child's Life Coverage", "Education Fund Creation", "Waiver of Premium Benefit", "Maturity at Important Ages", "Parent Life Cover Option"},
		},
		{
			name:     "Unit Linked Life Insurance",
			desc:     "Life insurance with investment in market-linked funds for wealth creation and life protection.",
			premium:  2500,
			coverage: 3000000,
			features: []string{"Life Cover + Investment", "Market-Linked Returns", "Fund Switching Option", "Partial Withdrawal", "Flexible Premium Payment"},
		},
		{
			name:     "Money Back Life Insurance",
			desc:     "Life insurance with periodic money back benefits during policy term plus death benefit.",
			premium:  1800,
			coverage: 2000000,
			features: []string{"Periodic Money Back", "Life Coverage Throughout", "Maturity Benefit", "Loyalty Additions", "Premium Payment Flexibility"},
		},
		{
			name:     "Group Life Insurance",
			desc:     "Life insurance for group of people like employees with affordable premium rates.",
			premium:  500,
			coverage: 1000000,
			features: []string{"Group Life Coverage", "Low Premium Rates", "Easy Enrollment", "Employer Contribution", "Conversion Option"},
		},
		{
			name:     "Pension Life Insurance",
			desc:     "Life insurance with pension benefits providing regular income after retirement with life cover.",
			premium:  3500,
			coverage: 1500000,
			features: []string{"Retirement Income", "Life Cover During Accumulation", "Guaranteed Pension", "Spouse Pension Option", "Return of Purchase Price"},
		},
		{
			name:     "Women Life Insurance Plan",
			desc:     "Specially designed life insurance for women with additional benefits and lower premium rates.",
			premium:  800,
			coverage: 1800000,
			features: []string{"Women-Specific Life Cover", "Maternity Benefits", "Lower Premium for Women", "Critical Illness Rider", "Flexible Payment Terms"},
		},
		{
			name:     "Senior Citizen Life Insurance",
			desc:     "Life insurance tailored for senior citizens aged 50-80 with simplified underwriting.",
			premium:  1200,
			coverage: 800000,
			minAge:   50,
			maxAge:   80,
			features: []string{"Senior Citizen Life Cover", "No Medical Examination", "Immediate Coverage", "Guaranteed Acceptance", "Final Expense Coverage"},
		},
	}

	schemes := make([]models.Scheme, 0, len(seeds))
	for _, s := range seeds {
		scheme := models.Scheme{
			Name:           s.name,
			Category:       "life",
			Description:    s.desc,
			PremiumAmount:  s.premium,
			CoverageAmount: s.coverage,
			MinAge:         18,
			MaxAge:         65,
			IsActive:       true,
		}
		if s.minAge > 0 {
			scheme.MinAge = s.minAge
		}
		if s.maxAge > 0 {
			scheme.MaxAge = s.maxAge
		}
		scheme.SetFeatures(s.features)
		schemes = append(schemes, scheme)
	}

	return schemes
}

func ensureDatabase(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	masterDSN := parsed.String()

	sqlDB, err := sql.Open("postgres", masterDSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	var exists bool
	if err := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}
