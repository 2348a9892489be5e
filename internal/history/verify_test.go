package history

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"beacon-dl/pkg/models"
)

// recordFile writes content to a temp file, records it in the store and
// returns its path
func recordFile(t *testing.T, s *Store, contentID string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), contentID+".mkv")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	sum := sha256.Sum256(content)
	err := s.RecordDownload(contentID, "slug", "title", filepath.Base(path),
		int64(len(content)), hex.EncodeToString(sum[:]))
	require.NoError(t, err)

	return path
}

func TestStore_Verify_Valid(t *testing.T) {
	s := newTestStore(t)
	path := recordFile(t, s, "id-1", []byte("video payload"))

	result, err := s.Verify("id-1", path)
	require.NoError(t, err)
	require.Equal(t, models.VerifyValid, result)

	// Unchanged content verifies valid again
	result, err = s.Verify("id-1", path)
	require.NoError(t, err)
	require.Equal(t, models.VerifyValid, result)
}

func TestStore_Verify_NotInHistory(t *testing.T) {
	s := newTestStore(t)

	result, err := s.Verify("never-recorded", "/tmp/whatever.mkv")
	require.NoError(t, err)
	require.Equal(t, models.VerifyNotInHistory, result)
}

func TestStore_Verify_FileMissing(t *testing.T) {
	s := newTestStore(t)
	path := recordFile(t, s, "id-1", []byte("video payload"))
	require.NoError(t, os.Remove(path))

	result, err := s.Verify("id-1", path)
	require.NoError(t, err)
	require.Equal(t, models.VerifyFileMissing, result)
}

func TestStore_Verify_SizeMismatch(t *testing.T) {
	s := newTestStore(t)
	content := []byte("video payload")
	path := recordFile(t, s, "id-1", content)

	// Truncate by one byte
	require.NoError(t, os.Truncate(path, int64(len(content)-1)))

	result, err := s.Verify("id-1", path)
	require.NoError(t, err)
	require.Equal(t, models.VerifySizeMismatch, result)
}

func TestStore_Verify_HashMismatch(t *testing.T) {
	s := newTestStore(t)
	content := []byte("video payload")
	path := recordFile(t, s, "id-1", content)

	// Flip a single byte without changing length
	corrupted := append([]byte(nil), content...)
	corrupted[0] ^= 0xff
	require.NoError(t, os.WriteFile(path, corrupted, 0o644))

	result, err := s.Verify("id-1", path)
	require.NoError(t, err)
	require.Equal(t, models.VerifyHashMismatch, result)
}

func TestStore_QuickVerifyRecord_SkipsHash(t *testing.T) {
	s := newTestStore(t)
	content := []byte("video payload")
	path := recordFile(t, s, "id-1", content)

	// Same length, different bytes: quick verification cannot tell
	corrupted := append([]byte(nil), content...)
	corrupted[0] ^= 0xff
	require.NoError(t, os.WriteFile(path, corrupted, 0o644))

	record, err := s.GetDownload("id-1")
	require.NoError(t, err)

	result, err := s.QuickVerifyRecord(record, path)
	require.NoError(t, err)
	require.Equal(t, models.VerifyValid, result)

	// A full check still catches it
	result, err = s.VerifyRecord(record, path)
	require.NoError(t, err)
	require.Equal(t, models.VerifyHashMismatch, result)
}

func TestStore_Verify_UpdatesVerifiedAt(t *testing.T) {
	s := newTestStore(t)
	path := recordFile(t, s, "id-1", []byte("video payload"))

	before, err := s.GetDownload("id-1")
	require.NoError(t, err)
	require.NotNil(t, before.VerifiedAt)

	time.Sleep(10 * time.Millisecond)

	result, err := s.Verify("id-1", path)
	require.NoError(t, err)
	require.Equal(t, models.VerifyValid, result)

	after, err := s.GetDownload("id-1")
	require.NoError(t, err)
	require.NotNil(t, after.VerifiedAt)
	require.True(t, after.VerifiedAt.After(*before.VerifiedAt))
}

func TestStore_VerifyRecord_MissingOptionalFields(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(t.TempDir(), "loose.mkv")
	require.NoError(t, os.WriteFile(path, []byte("anything"), 0o644))

	// A record with neither size nor hash recorded verifies by existence alone
	record := &models.DownloadRecord{ContentID: "id-1", Filename: "loose.mkv"}
	require.NoError(t, s.RecordDownload("id-1", "slug", "title", "loose.mkv", 0, ""))

	result, err := s.VerifyRecord(record, path)
	require.NoError(t, err)
	require.Equal(t, models.VerifyValid, result)
}

func TestFileSHA256(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o644))

	got, err := FileSHA256(path)
	require.NoError(t, err)
	// Matches `printf 'hello world' | sha256sum`
	require.Equal(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", got)
}

func TestFileSHA256_MissingFile(t *testing.T) {
	_, err := FileSHA256("/nonexistent/file.bin")
	require.Error(t, err)
}
