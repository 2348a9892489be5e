package models

import "time"

// DownloadStatus represents the recorded outcome of a download
type DownloadStatus string

const (
	StatusCompleted DownloadStatus = "completed"
	StatusFailed    DownloadStatus = "failed"
)

// DownloadRecord is one row of download history. Exactly one record exists
// per ContentID; a repeat download replaces the prior row.
type DownloadRecord struct {
	ID           int64          `json:"id" db:"id"`
	ContentID    string         `json:"content_id" db:"content_id"`
	Slug         string         `json:"slug" db:"slug"`
	Title        string         `json:"title" db:"title"`
	Filename     string         `json:"filename" db:"filename"`
	FileSize     *int64         `json:"file_size" db:"file_size"`
	SHA256       *string        `json:"sha256" db:"sha256"`
	DownloadedAt time.Time      `json:"downloaded_at" db:"downloaded_at"`
	VerifiedAt   *time.Time     `json:"verified_at" db:"verified_at"`
	Status       DownloadStatus `json:"status" db:"status"`
}

// VerifyResult classifies the outcome of one verification pass
type VerifyResult string

const (
	VerifyValid        VerifyResult = "valid"
	VerifySizeMismatch VerifyResult = "size_mismatch"
	VerifyHashMismatch VerifyResult = "hash_mismatch"
	VerifyFileMissing  VerifyResult = "file_missing"
	VerifyNotInHistory VerifyResult = "not_in_history"
)
