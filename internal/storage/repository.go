package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/municipress/flipbook/internal/domain"
)

// DB represents a database connection interface.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// ConversionRepository handles the append-only conversion log.
type ConversionRepository struct {
	db DB
}

// NewConversionRepository creates a new conversion repository.
func NewConversionRepository(db DB) *ConversionRepository {
	return &ConversionRepository{db: db}
}

// Record appends a conversion attempt and returns its ID.
func (r *ConversionRepository) Record(ctx context.Context, rec *ConversionRecord) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO conversions (id, account, title, page_count, destination_url, status, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID.String(), rec.Account, rec.Title, rec.PageCount,
		rec.DestinationURL, string(rec.Status), rec.ErrorMessage, rec.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, domain.StorageError("failed to record conversion", err)
	}
	return rec.ID, nil
}

// ListByAccount returns the newest records first, filtered by account when
// non-empty, capped at limit.
func (r *ConversionRepository) ListByAccount(ctx context.Context, account string, limit int) ([]ConversionRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	var (
		rows *sql.Rows
		err  error
	)
	if account != "" {
		query := `
			SELECT id, account, title, page_count, destination_url, status, error_message, created_at
			FROM conversions
			WHERE account = $1
			ORDER BY created_at DESC
			LIMIT $2
		`
		rows, err = r.db.QueryContext(ctx, query, account, limit)
	} else {
		query := `
			SELECT id, account, title, page_count, destination_url, status, error_message, created_at
			FROM conversions
			ORDER BY created_at DESC
			LIMIT $1
		`
		rows, err = r.db.QueryContext(ctx, query, limit)
	}
	if err != nil {
		return nil, domain.StorageError("failed to query conversions", err)
	}
	defer rows.Close()

	var records []ConversionRecord
	for rows.Next() {
		var (
			rec    ConversionRecord
			id     string
			status string
		)
		if err := rows.Scan(&id, &rec.Account, &rec.Title, &rec.PageCount,
			&rec.DestinationURL, &status, &rec.ErrorMessage, &rec.CreatedAt); err != nil {
			return nil, domain.StorageError("failed to scan conversion record", err)
		}
		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, domain.StorageError("invalid record id", err)
		}
		rec.Status = ConversionStatus(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError("failed to iterate conversions", err)
	}
	return records, nil
}

// Stats aggregates conversion counts by status and total pages processed,
// filtered by account when non-empty.
func (r *ConversionRepository) Stats(ctx context.Context, account string) (*ConversionStats, error) {
	var row *sql.Row
	if account != "" {
		query := `
			SELECT
				COUNT(*),
				COALESCE(SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(page_count), 0)
			FROM conversions
			WHERE account = $1
		`
		row = r.db.QueryRowContext(ctx, query, account)
	} else {
		query := `
			SELECT
				COUNT(*),
				COALESCE(SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END), 0),
				COALESCE(SUM(page_count), 0)
			FROM conversions
		`
		row = r.db.QueryRowContext(ctx, query)
	}

	stats := &ConversionStats{}
	if err := row.Scan(&stats.Total, &stats.Success, &stats.Errors, &stats.TotalPages); err != nil {
		return nil, domain.StorageError("failed to aggregate conversion stats", err)
	}
	return stats, nil
}
