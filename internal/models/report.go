package models

import "github.com/google/uuid"

// Report types accepted by the support ticketing intake flows.
const (
	ReportTypeUnauthorizedTransaction = "unauthorized_transaction"
	ReportTypeComplaintFeedback       = "complaint_feedback"
)

// Report is an append-only support ticket. No status transitions or
// retrieval-by-id exist in scope.
type Report struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	ReportType  string    `json:"report_type"`
	Description string    `json:"description"`
	Status      string    `gorm:"default:submitted" json:"status"`
}
