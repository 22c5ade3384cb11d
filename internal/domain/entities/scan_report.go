package entities

import "time"

// ScanType identifies the kind of input a report classified
type ScanType string

const (
	ScanTypeURL   ScanType = "url"
	ScanTypeFile  ScanType = "file"
	ScanTypeAI    ScanType = "ai"
	ScanTypeEmail ScanType = "email"
)

// ScanStatus is the overall outcome label of a classification
type ScanStatus string

const (
	StatusClean   ScanStatus = "CLEAN"
	StatusWarning ScanStatus = "WARNING"
	StatusDanger  ScanStatus = "DANGER"
	StatusSuccess ScanStatus = "SUCCESS"
)

// ScanReport stores one classification request and its result. Reports are
// written once and only removed when the owning user is deleted.
type ScanReport struct {
	ID             uint                   `json:"id"`
	UserID         uint                   `json:"userId"`
	ScanType       ScanType               `json:"scanType"`
	Target         string                 `json:"target"`
	Status         ScanStatus             `json:"status"`
	OverallSummary string                 `json:"overallSummary"`
	Details        map[string]interface{} `json:"details"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// ScanURLInput represents input for a URL scan
type ScanURLInput struct {
	UserID uint   `json:"user_id" binding:"required"`
	URL    string `json:"url" binding:"required"`
}

// AIQueryInput represents input for a free-text AI query
type AIQueryInput struct {
	UserID uint   `json:"user_id" binding:"required"`
	Query  string `json:"query" binding:"required"`
}

// CheckEmailInput represents input for an email breach check
type CheckEmailInput struct {
	UserID uint   `json:"user_id" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}
