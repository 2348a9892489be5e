package downloader

import (
	"context"

	"beacon-dl/internal/transfer"
	"beacon-dl/pkg/models"
)

// MetadataClient defines the episode metadata operations used by the downloader
//
//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
type MetadataClient interface {
	ContentBySlug(ctx context.Context, slug string) (*models.Episode, error)
	LatestEpisode(ctx context.Context, seriesSlug string) (*models.Episode, error)
	SeriesEpisodes(ctx context.Context, seriesSlug string) ([]*models.Episode, error)
}

// TransferEngine defines the asset transfer operations used by the downloader
type TransferEngine interface {
	FetchInfo(ctx context.Context, url string) (*transfer.MediaInfo, error)
	DownloadVideo(ctx context.Context, url, destPath, resolution string) error
	DownloadSubtitles(ctx context.Context, url, destDir string) ([]string, error)
}

// Muxer defines the container merge operation used by the downloader
type Muxer interface {
	Merge(ctx context.Context, videoPath string, subtitlePaths []string, outputPath string) error
}

// HistoryStore defines the download history operations used by the downloader
type HistoryStore interface {
	IsDownloaded(contentID string) (bool, error)
	RecordDownload(contentID, slug, title, filename string, fileSize int64, sha256 string) error
}
