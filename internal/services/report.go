package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/securebank/internal/models"
)

// ReportService is the append-only support ticket intake shared by the
// unauthorized-transaction and complaint/feedback flows.
type ReportService struct {
	db    *gorm.DB
	clock Clock
}

// NewReportService constructs a ReportService.
func NewReportService(db *gorm.DB, clock Clock) *ReportService {
	return &ReportService{db: db, clock: clock}
}

var referencePrefixes = map[string]string{
	models.ReportTypeUnauthorizedTransaction: "REP",
	models.ReportTypeComplaintFeedback:       "FB",
}

// Submit appends a report and returns its human-readable reference id
// in the form {PREFIX}{YYYYMMDDHHMM}.
func (s *ReportService) Submit(userID uuid.UUID, reportType, description string) (string, error) {
	prefix, ok := referencePrefixes[reportType]
	if !ok {
		return "", NewValidationError("report_type", "unknown report type")
	}

	if strings.TrimSpace(description) == "" {
		return "", NewValidationError("description", "is required")
	}

	report := models.Report{
		UserID:      userID,
		ReportType:  reportType,
		Description: description,
		Status:      "submitted",
	}

	if err := s.db.Create(&report).Error; err != nil {
		return "", err
	}

	return prefix + s.clock.Now().UTC().Format("200601021504"), nil
}
