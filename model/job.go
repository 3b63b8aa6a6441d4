package model

import (
	"time"
)

// Job represents one document conversion request
type Job struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	StoredName  string    `json:"stored_name"`
	OutputName  string    `json:"output_name,omitempty"`
	Status      string    `json:"status"` // pending, processing, completed, failed
	Converter   string    `json:"converter,omitempty"`
	ArchiveURL  string    `json:"archive_url,omitempty"`
	ErrorMsg    string    `json:"error_msg,omitempty"`
	RequestedBy string    `json:"requested_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Job status constants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)
