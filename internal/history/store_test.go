package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"beacon-dl/pkg/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		dbPath  string
		wantErr bool
	}{
		{
			name:   "in-memory database",
			dbPath: ":memory:",
		},
		{
			name:   "file database",
			dbPath: "", // filled from t.TempDir below
		},
		{
			name:    "invalid database path",
			dbPath:  "/invalid/nonexistent/path/history.db",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := tt.dbPath
			if dbPath == "" {
				dbPath = filepath.Join(t.TempDir(), "history.db")
			}

			s, err := New(dbPath)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, s.Close())
		})
	}
}

func TestNew_IdempotentInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")

	s1, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, s1.RecordDownload("abc", "slug", "title", "file.mkv", 10, "deadbeef"))
	require.NoError(t, s1.Close())

	// Reopening the same file must not disturb existing rows
	s2, err := New(dbPath)
	require.NoError(t, err)
	defer s2.Close()

	count, err := s2.CountDownloads()
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestStore_IsDownloaded(t *testing.T) {
	s := newTestStore(t)

	downloaded, err := s.IsDownloaded("6914e32be6f4eb512d3a61f4")
	require.NoError(t, err)
	require.False(t, downloaded)

	err = s.RecordDownload("6914e32be6f4eb512d3a61f4", "c4-e006-knives-and-thorns",
		"C4 E006 | Knives and Thorns", "Critical.Role.S04E06.mkv", 1024, "deadbeef")
	require.NoError(t, err)

	downloaded, err = s.IsDownloaded("6914e32be6f4eb512d3a61f4")
	require.NoError(t, err)
	require.True(t, downloaded)
}

func TestStore_RecordDownload_Upsert(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.RecordDownload("id-1", "slug", "title", "old.mkv", 100, "aaaa"))
	require.NoError(t, s.RecordDownload("id-1", "slug", "title", "new.mkv", 200, "bbbb"))

	count, err := s.CountDownloads()
	require.NoError(t, err)
	require.Equal(t, 1, count)

	record, err := s.GetDownload("id-1")
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, "new.mkv", record.Filename)
	require.NotNil(t, record.FileSize)
	require.Equal(t, int64(200), *record.FileSize)
	require.NotNil(t, record.SHA256)
	require.Equal(t, "bbbb", *record.SHA256)
	require.Equal(t, models.StatusCompleted, record.Status)
	require.NotNil(t, record.VerifiedAt)
}

func TestStore_GetDownload_NotFound(t *testing.T) {
	s := newTestStore(t)

	record, err := s.GetDownload("missing")
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestStore_GetDownloadByFilename(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.RecordDownload("id-1", "slug-1", "title one", "one.mkv", 100, "aaaa"))
	require.NoError(t, s.RecordDownload("id-2", "slug-2", "title two", "two.mkv", 200, "bbbb"))

	record, err := s.GetDownloadByFilename("two.mkv")
	require.NoError(t, err)
	require.NotNil(t, record)
	require.Equal(t, "id-2", record.ContentID)

	record, err = s.GetDownloadByFilename("missing.mkv")
	require.NoError(t, err)
	require.Nil(t, record)
}

func TestStore_ListDownloads(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.RecordDownload("id-1", "slug-1", "first", "one.mkv", 100, "aaaa"))
	require.NoError(t, s.RecordDownload("id-2", "slug-2", "second", "two.mkv", 200, "bbbb"))
	require.NoError(t, s.RecordDownload("id-3", "slug-3", "third", "three.mkv", 300, "cccc"))

	records, err := s.ListDownloads(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first
	require.Equal(t, "id-3", records[0].ContentID)
	require.Equal(t, "id-2", records[1].ContentID)
}

func TestStore_RemoveDownload(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.RecordDownload("id-1", "slug", "title", "one.mkv", 100, "aaaa"))

	removed, err := s.RemoveDownload("id-1")
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = s.RemoveDownload("id-1")
	require.NoError(t, err)
	require.False(t, removed)
}

func TestStore_ClearHistory(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.RecordDownload("id-1", "slug-1", "one", "one.mkv", 100, "aaaa"))
	require.NoError(t, s.RecordDownload("id-2", "slug-2", "two", "two.mkv", 200, "bbbb"))

	deleted, err := s.ClearHistory()
	require.NoError(t, err)
	require.Equal(t, 2, deleted)

	count, err := s.CountDownloads()
	require.NoError(t, err)
	require.Zero(t, count)
}
