// Package storage records conversion attempts and outcomes in an
// append-only log backed by SQLite (development) or Postgres (production).
package storage

import (
	"time"

	"github.com/google/uuid"
)

// ConversionStatus is the outcome of a conversion attempt.
type ConversionStatus string

const (
	StatusSuccess ConversionStatus = "success"
	StatusError   ConversionStatus = "error"
)

// ConversionRecord is one row of the audit log. Records are append-only;
// nothing updates or deletes them.
type ConversionRecord struct {
	ID             uuid.UUID
	Account        string
	Title          string
	PageCount      int
	DestinationURL string
	Status         ConversionStatus
	ErrorMessage   string
	CreatedAt      time.Time
}

// ConversionStats aggregates the log for one account, or globally when
// the account filter is empty.
type ConversionStats struct {
	Total      int64 `json:"total"`
	Success    int64 `json:"success"`
	Errors     int64 `json:"errors"`
	TotalPages int64 `json:"total_pages"`
}
