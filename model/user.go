package model

import "time"

// Medical report content types. The type is decided once at creation from the
// content that is present and is stored with the record.
const (
	ReportTypeText  = "text"
	ReportTypeImage = "image"
	ReportTypeMixed = "mixed"
)

// MedicalReport is a single record on a user's medical timeline. A report is
// owned by exactly one user and is never shared.
// @Description Medical report record
type MedicalReport struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" example:"Annual Health Checkup"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty" example:"Regular annual health examination"`
	ImageURL    string    `json:"image_url,omitempty"`
	TextContent string    `json:"text_content,omitempty"`
	Type        string    `json:"type" example:"text"`
}

// UserData is the per-email profile record, medical reports embedded inline
// with the most recent first. Accounts are created on first login and never
// deleted by the application.
// @Description User profile with embedded medical reports
type UserData struct {
	Email          string          `json:"email" example:"demo@example.com"`
	Name           string          `json:"name,omitempty" example:"Demo User"`
	Avatar         string          `json:"avatar,omitempty"`
	MedicalReports []MedicalReport `json:"medical_reports"`
	CreatedAt      time.Time       `json:"created_at"`
	LastLoginAt    time.Time       `json:"last_login_at"`
}
