package downloader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"beacon-dl/internal/config"
	"beacon-dl/internal/downloader/mocks"
	"beacon-dl/internal/transfer"
	"beacon-dl/pkg/models"
)

func testConfig() *config.Config {
	return &config.Config{
		ReleaseGroup:         "Pawsty",
		PreferredResolution:  "1080p",
		SourceType:           "WEB-DL",
		ContainerFormat:      "mkv",
		DefaultAudioCodec:    "AAC",
		DefaultAudioChannels: "2.0",
		DefaultVideoCodec:    "H.264",
	}
}

func intPtr(n int) *int {
	return &n
}

func testEpisode() *models.Episode {
	return &models.Episode{
		ID:            "content-123",
		Title:         "C4 E6 | Knives and Thorns",
		Slug:          "c4-e6-knives-and-thorns",
		SeasonNumber:  intPtr(4),
		EpisodeNumber: intPtr(6),
	}
}

func testMediaInfo() *transfer.MediaInfo {
	return &transfer.MediaInfo{
		ID:            "content-123",
		Title:         "C4 E6 | Knives and Thorns",
		Series:        "Critical Role",
		Height:        1080,
		VideoCodec:    "avc1.640028",
		AudioCodec:    "mp4a.40.2",
		AudioChannels: intPtr(2),
	}
}

const wantFilename = "Critical.Role.S04E06.Knives.and.Thorns.1080p.WEB-DL.AAC2.0.H.264-Pawsty.mkv"

type testMocks struct {
	metadata *mocks.MockMetadataClient
	engine   *mocks.MockTransferEngine
	muxer    *mocks.MockMuxer
	history  *mocks.MockHistoryStore
}

func newTestDownloader(t *testing.T, outputDir string) (*Downloader, *testMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &testMocks{
		metadata: mocks.NewMockMetadataClient(ctrl),
		engine:   mocks.NewMockTransferEngine(ctrl),
		muxer:    mocks.NewMockMuxer(ctrl),
		history:  mocks.NewMockHistoryStore(ctrl),
	}

	d := New(testConfig(), outputDir, m.metadata, m.engine, m.muxer, m.history)
	return d, m
}

func TestSlugFromURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "plain content URL",
			url:  "https://beacon.tv/content/c4-e6-knives-and-thorns",
			want: "c4-e6-knives-and-thorns",
		},
		{
			name: "trailing slash",
			url:  "https://beacon.tv/content/c4-e6-knives-and-thorns/",
			want: "c4-e6-knives-and-thorns",
		},
		{
			name: "query string stripped",
			url:  "https://beacon.tv/content/c4-e6-knives-and-thorns?t=120",
			want: "c4-e6-knives-and-thorns",
		},
		{
			name: "fragment stripped",
			url:  "https://beacon.tv/content/c4-e6-knives-and-thorns#top",
			want: "c4-e6-knives-and-thorns",
		},
		{
			name:    "not a content URL",
			url:     "https://beacon.tv/series/campaign-4",
			wantErr: true,
		},
		{
			name:    "empty slug",
			url:     "https://beacon.tv/content/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SlugFromURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestProcess_SkipsAlreadyDownloaded(t *testing.T) {
	d, m := newTestDownloader(t, t.TempDir())

	m.history.EXPECT().IsDownloaded("content-123").Return(true, nil)

	result, err := d.Process(context.Background(), testEpisode())
	require.NoError(t, err)
	require.True(t, result.Skipped)
	require.Equal(t, "already in history", result.Reason)
}

func TestProcess_SkipsExistingFile(t *testing.T) {
	outputDir := t.TempDir()
	d, m := newTestDownloader(t, outputDir)

	require.NoError(t, os.WriteFile(filepath.Join(outputDir, wantFilename), []byte("existing"), 0o644))

	m.history.EXPECT().IsDownloaded("content-123").Return(false, nil)
	m.engine.EXPECT().FetchInfo(gomock.Any(), "https://beacon.tv/content/c4-e6-knives-and-thorns").
		Return(testMediaInfo(), nil)

	result, err := d.Process(context.Background(), testEpisode())
	require.NoError(t, err)
	require.True(t, result.Skipped)
	require.Equal(t, "file exists", result.Reason)
	require.Equal(t, wantFilename, result.Filename)
}

func TestProcess_FullPipeline(t *testing.T) {
	outputDir := t.TempDir()
	d, m := newTestDownloader(t, outputDir)

	episode := testEpisode()
	url := episode.URL()

	m.history.EXPECT().IsDownloaded("content-123").Return(false, nil)
	m.engine.EXPECT().FetchInfo(gomock.Any(), url).Return(testMediaInfo(), nil)
	m.engine.EXPECT().DownloadVideo(gomock.Any(), url, gomock.Any(), "1080p").Return(nil)
	m.engine.EXPECT().DownloadSubtitles(gomock.Any(), url, gomock.Any()).
		Return([]string{"subs.eng.vtt"}, nil)
	m.muxer.EXPECT().Merge(gomock.Any(), gomock.Any(), []string{"subs.eng.vtt"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []string, outputPath string) error {
			return os.WriteFile(outputPath, []byte("fake video"), 0o644)
		})
	m.history.EXPECT().RecordDownload("content-123", "c4-e6-knives-and-thorns",
		"C4 E6 | Knives and Thorns", wantFilename, int64(10), gomock.Any()).Return(nil)

	result, err := d.Process(context.Background(), episode)
	require.NoError(t, err)
	require.False(t, result.Skipped)
	require.Equal(t, wantFilename, result.Filename)

	// final file survives, work dir does not
	_, err = os.Stat(filepath.Join(outputDir, wantFilename))
	require.NoError(t, err)
	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestProcess_DownloadFailure(t *testing.T) {
	d, m := newTestDownloader(t, t.TempDir())

	m.history.EXPECT().IsDownloaded("content-123").Return(false, nil)
	m.engine.EXPECT().FetchInfo(gomock.Any(), gomock.Any()).Return(testMediaInfo(), nil)
	m.engine.EXPECT().DownloadVideo(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("network down"))

	_, err := d.Process(context.Background(), testEpisode())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to download video")
}

func TestProcessURL_ContentNotFound(t *testing.T) {
	d, m := newTestDownloader(t, t.TempDir())

	m.metadata.EXPECT().ContentBySlug(gomock.Any(), "missing-slug").Return(nil, nil)

	_, err := d.ProcessURL(context.Background(), "https://beacon.tv/content/missing-slug")
	require.Error(t, err)
	require.Contains(t, err.Error(), "content not found")
}

func TestProcessBatch(t *testing.T) {
	d, m := newTestDownloader(t, t.TempDir())

	episodes := []*models.Episode{
		{ID: "ep-1", Title: "One", Slug: "ep-1"},
		{ID: "ep-2", Title: "Two", Slug: "ep-2"},
		{ID: "ep-3", Title: "Three", Slug: "ep-3"},
	}

	// ep-1 already downloaded, ep-2 fails at history check, ep-3 already downloaded
	m.history.EXPECT().IsDownloaded("ep-1").Return(true, nil)
	m.history.EXPECT().IsDownloaded("ep-2").Return(false, errors.New("db locked"))
	m.history.EXPECT().IsDownloaded("ep-3").Return(true, nil)

	result, err := d.ProcessBatch(context.Background(), episodes, nil)
	require.NoError(t, err)
	require.Equal(t, 0, result.Succeeded)
	require.Equal(t, 2, result.Skipped)
	require.Equal(t, 1, result.Failed)
}

func TestProcessBatch_StopsWhenAskedTo(t *testing.T) {
	d, m := newTestDownloader(t, t.TempDir())

	episodes := []*models.Episode{
		{ID: "ep-1", Title: "One", Slug: "ep-1"},
		{ID: "ep-2", Title: "Two", Slug: "ep-2"},
	}

	m.history.EXPECT().IsDownloaded("ep-1").Return(false, errors.New("db locked"))

	stop := func(_ *models.Episode, _ error) bool { return false }
	result, err := d.ProcessBatch(context.Background(), episodes, stop)
	require.NoError(t, err)
	require.Equal(t, 1, result.Failed)
	require.Equal(t, 0, result.Skipped)
}

func TestProcessBatch_CancelledContext(t *testing.T) {
	d, _ := newTestDownloader(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := d.ProcessBatch(ctx, []*models.Episode{testEpisode()}, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, result.Succeeded+result.Skipped+result.Failed)
}

func TestFilterEpisodeRange(t *testing.T) {
	episodes := []*models.Episode{
		{ID: "a", EpisodeNumber: intPtr(3)},
		{ID: "b", EpisodeNumber: intPtr(5)},
		{ID: "c", EpisodeNumber: intPtr(8)},
		{ID: "d"}, // non-episodic
	}

	tests := []struct {
		name       string
		start, end int
		wantIDs    []string
	}{
		{name: "bounded range", start: 4, end: 7, wantIDs: []string{"b"}},
		{name: "open upper bound", start: 5, end: 0, wantIDs: []string{"b", "c"}},
		{name: "everything episodic", start: 0, end: 0, wantIDs: []string{"a", "b", "c"}},
		{name: "empty range", start: 10, end: 20, wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEpisodeRange(episodes, tt.start, tt.end)
			var ids []string
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
		})
	}
}
