package history

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"beacon-dl/pkg/models"
)

// hashChunkSize bounds memory while hashing multi-gigabyte files
const hashChunkSize = 64 * 1024

// Verify checks the file at path against the record stored for contentID.
// The checks are staged cheapest-first and short-circuit: missing record,
// missing file, size (stat only), then SHA-256. On success the record's
// verified_at timestamp is updated.
func (s *Store) Verify(contentID, path string) (models.VerifyResult, error) {
	record, err := s.GetDownload(contentID)
	if err != nil {
		return "", err
	}
	if record == nil {
		return models.VerifyNotInHistory, nil
	}
	return s.VerifyRecord(record, path)
}

// VerifyRecord checks the file at path against an already-loaded record
func (s *Store) VerifyRecord(record *models.DownloadRecord, path string) (models.VerifyResult, error) {
	return s.verifyRecord(record, path, true)
}

// QuickVerifyRecord checks only existence and size, skipping the hash. Useful
// for sweeping a large library where hashing every file would take hours.
func (s *Store) QuickVerifyRecord(record *models.DownloadRecord, path string) (models.VerifyResult, error) {
	return s.verifyRecord(record, path, false)
}

func (s *Store) verifyRecord(record *models.DownloadRecord, path string, hash bool) (models.VerifyResult, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return models.VerifyFileMissing, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}

	// Size check first: O(1), catches truncation without hashing
	if record.FileSize != nil && info.Size() != *record.FileSize {
		return models.VerifySizeMismatch, nil
	}

	if hash && record.SHA256 != nil {
		actual, err := FileSHA256(path)
		if err != nil {
			return "", err
		}
		if actual != *record.SHA256 {
			return models.VerifyHashMismatch, nil
		}
	}

	if err := s.touchVerifiedAt(record.ContentID); err != nil {
		return "", err
	}

	return models.VerifyValid, nil
}

// FileSHA256 computes the hex-encoded SHA-256 digest of a file, streaming in
// fixed-size chunks. The digest matches standard sha256sum output so users
// can cross-check with external tools.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
