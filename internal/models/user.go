package models

import (
	"time"
)

// User represents a registered policyholder.
type User struct {
	BaseModel
	DigitalToken  string     `gorm:"uniqueIndex" json:"-"`
	Username      string     `gorm:"uniqueIndex" json:"username"`
	PasswordHash  string     `json:"-"`
	FullName      string     `json:"full_name"`
	Email         string     `gorm:"uniqueIndex" json:"email"`
	Phone         string     `json:"phone"`
	DateOfBirth   time.Time  `json:"date_of_birth"`
	Age           int        `json:"age"`
	Gender        string     `json:"gender"`
	Address       string     `json:"address"`
	PANNumber     string     `gorm:"uniqueIndex" json:"pan_number"`
	FaceData      string     `json:"-"`
	RetinaData    string     `json:"-"`
	AccountStatus string     `gorm:"default:active" json:"account_status"`
	LastLogin     *time.Time `json:"last_login"`
	Policies      []Policy   `json:"policies,omitempty"`
	Claims        []Claim    `json:"claims,omitempty"`
}
