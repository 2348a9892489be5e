// Package history provides the persistent download history and integrity
// verification store backed by SQLite
package history

import (
	"database/sql"
	"fmt"
	"time"

	"beacon-dl/pkg/models"

	_ "modernc.org/sqlite"
)

// DefaultPath is the history database filename used when none is configured
const DefaultPath = ".beacon-dl-history.db"

// Store wraps the SQLite download history database
type Store struct {
	conn *sql.DB
}

// New opens the history database and ensures the schema exists. Opening the
// same file repeatedly is safe; schema creation is idempotent.
func New(dbPath string) (*Store, error) {
	connString := dbPath
	if dbPath != ":memory:" {
		connString = dbPath + "?_busy_timeout=30000&_journal_mode=WAL&_synchronous=NORMAL"
	}

	conn, err := sql.Open("sqlite", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single-writer use; SQLite doesn't handle concurrent writes well
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	s := &Store{conn: conn}

	if err := s.initSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.conn.Close()
}

// initSchema creates the downloads table and its indexes
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS downloads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content_id TEXT NOT NULL UNIQUE,
		slug TEXT NOT NULL,
		title TEXT NOT NULL,
		filename TEXT NOT NULL,
		file_size INTEGER,
		sha256 TEXT,
		downloaded_at DATETIME NOT NULL,
		verified_at DATETIME,
		status TEXT NOT NULL DEFAULT 'completed'
	);

	CREATE INDEX IF NOT EXISTS idx_downloads_slug ON downloads(slug);
	CREATE INDEX IF NOT EXISTS idx_downloads_filename ON downloads(filename);
	`

	_, err := s.conn.Exec(schema)
	return err
}

// IsDownloaded reports whether a completed download exists for the content id.
// This is a single indexed lookup with no file I/O, used as the fast-path
// dedup check before any transfer work begins.
func (s *Store) IsDownloaded(contentID string) (bool, error) {
	var one int
	err := s.conn.QueryRow(
		"SELECT 1 FROM downloads WHERE content_id = ? AND status = ?",
		contentID, models.StatusCompleted,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check download: %w", err)
	}
	return true, nil
}

const recordColumns = `id, content_id, slug, title, filename, file_size, sha256, downloaded_at, verified_at, status`

func scanRecord(row *sql.Row) (*models.DownloadRecord, error) {
	var record models.DownloadRecord
	err := row.Scan(
		&record.ID, &record.ContentID, &record.Slug, &record.Title,
		&record.Filename, &record.FileSize, &record.SHA256,
		&record.DownloadedAt, &record.VerifiedAt, &record.Status,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan download record: %w", err)
	}
	return &record, nil
}

// GetDownload retrieves a download record by content id. Returns (nil, nil)
// when no record exists.
func (s *Store) GetDownload(contentID string) (*models.DownloadRecord, error) {
	row := s.conn.QueryRow(
		"SELECT "+recordColumns+" FROM downloads WHERE content_id = ?",
		contentID,
	)
	return scanRecord(row)
}

// GetDownloadByFilename retrieves a download record by its on-disk filename.
// Filenames are not guaranteed unique across renames; the most recent match
// wins. Returns (nil, nil) when no record exists.
func (s *Store) GetDownloadByFilename(filename string) (*models.DownloadRecord, error) {
	row := s.conn.QueryRow(
		"SELECT "+recordColumns+" FROM downloads WHERE filename = ? ORDER BY downloaded_at DESC, id DESC LIMIT 1",
		filename,
	)
	return scanRecord(row)
}

// RecordDownload inserts or replaces the record for a completed download.
// Both downloaded_at and verified_at are stamped with the current time: the
// freshly-downloaded file is definitionally valid at this instant. The write
// is a single statement, so either the full row persists or none of it.
func (s *Store) RecordDownload(contentID, slug, title, filename string, fileSize int64, sha256 string) error {
	// Zero size and empty hash mean "unknown"; store NULL so verification
	// skips the corresponding check instead of comparing against zero
	var size any
	if fileSize > 0 {
		size = fileSize
	}
	var hash any
	if sha256 != "" {
		hash = sha256
	}

	now := time.Now()
	_, err := s.conn.Exec(
		`INSERT OR REPLACE INTO downloads
		(content_id, slug, title, filename, file_size, sha256, downloaded_at, verified_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		contentID, slug, title, filename, size, hash, now, now, models.StatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to record download: %w", err)
	}
	return nil
}

// ListDownloads returns download records newest-first. A limit of zero or
// less returns everything.
func (s *Store) ListDownloads(limit int) ([]*models.DownloadRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}
	rows, err := s.conn.Query(
		"SELECT "+recordColumns+" FROM downloads ORDER BY downloaded_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list downloads: %w", err)
	}
	defer rows.Close()

	var records []*models.DownloadRecord
	for rows.Next() {
		var record models.DownloadRecord
		err := rows.Scan(
			&record.ID, &record.ContentID, &record.Slug, &record.Title,
			&record.Filename, &record.FileSize, &record.SHA256,
			&record.DownloadedAt, &record.VerifiedAt, &record.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan download record: %w", err)
		}
		records = append(records, &record)
	}

	return records, rows.Err()
}

// CountDownloads returns the total number of records in the history
func (s *Store) CountDownloads() (int, error) {
	var count int
	if err := s.conn.QueryRow("SELECT COUNT(*) FROM downloads").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count downloads: %w", err)
	}
	return count, nil
}

// RemoveDownload deletes one record by content id and reports whether a row existed
func (s *Store) RemoveDownload(contentID string) (bool, error) {
	result, err := s.conn.Exec("DELETE FROM downloads WHERE content_id = ?", contentID)
	if err != nil {
		return false, fmt.Errorf("failed to remove download: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// ClearHistory deletes all records and returns the count deleted
func (s *Store) ClearHistory() (int, error) {
	result, err := s.conn.Exec("DELETE FROM downloads")
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return int(affected), nil
}

// touchVerifiedAt updates the verified_at timestamp after a successful verification pass
func (s *Store) touchVerifiedAt(contentID string) error {
	_, err := s.conn.Exec(
		"UPDATE downloads SET verified_at = ? WHERE content_id = ?",
		time.Now(), contentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update verified_at: %w", err)
	}
	return nil
}
