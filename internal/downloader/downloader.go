// Package downloader orchestrates the download pipeline: dedup check,
// metadata fetch, asset transfer, merge, and history recording
package downloader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"beacon-dl/internal/beacon"
	"beacon-dl/internal/cleanup"
	"beacon-dl/internal/config"
	"beacon-dl/internal/history"
	"beacon-dl/internal/naming"
	"beacon-dl/internal/transfer"
	"beacon-dl/pkg/models"
)

// Downloader processes one download job at a time, sequentially
type Downloader struct {
	cfg      *config.Config
	composer *naming.Composer
	metadata MetadataClient
	engine   TransferEngine
	muxer    Muxer
	history  HistoryStore
	logger   *slog.Logger

	// outputDir is where final files land and work dirs are created
	outputDir string
}

// New creates a downloader writing into outputDir
func New(cfg *config.Config, outputDir string, metadata MetadataClient, engine TransferEngine, muxer Muxer, store HistoryStore) *Downloader {
	composer := naming.NewComposer(models.VideoMetadata{
		Resolution:    cfg.PreferredResolution,
		SourceType:    cfg.SourceType,
		AudioCodec:    cfg.DefaultAudioCodec,
		AudioChannels: cfg.DefaultAudioChannels,
		VideoCodec:    cfg.DefaultVideoCodec,
	}, cfg.ReleaseGroup)

	return &Downloader{
		cfg:       cfg,
		composer:  composer,
		metadata:  metadata,
		engine:    engine,
		muxer:     muxer,
		history:   store,
		logger:    slog.Default(),
		outputDir: outputDir,
	}
}

// Result describes the outcome of processing one episode
type Result struct {
	Filename string
	Skipped  bool
	Reason   string
}

// SlugFromURL extracts the content slug from a beacon.tv content URL
func SlugFromURL(url string) (string, error) {
	const marker = "/content/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", fmt.Errorf("not a beacon.tv content URL: %s", url)
	}
	slug := url[idx+len(marker):]
	slug = strings.TrimSuffix(slug, "/")
	if i := strings.IndexAny(slug, "?#"); i >= 0 {
		slug = slug[:i]
	}
	if slug == "" {
		return "", fmt.Errorf("no content slug in URL: %s", url)
	}
	return slug, nil
}

// ProcessURL resolves a content URL to its episode metadata and processes it
func (d *Downloader) ProcessURL(ctx context.Context, url string) (*Result, error) {
	slug, err := SlugFromURL(url)
	if err != nil {
		return nil, err
	}

	episode, err := d.metadata.ContentBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve content metadata: %w", err)
	}
	if episode == nil {
		return nil, fmt.Errorf("content not found: %s", slug)
	}

	return d.Process(ctx, episode)
}

// Process downloads one episode end to end. Content already recorded in the
// history, or whose output file already exists, is skipped without any
// network transfer.
func (d *Downloader) Process(ctx context.Context, episode *models.Episode) (*Result, error) {
	// Fast-path dedup: single indexed lookup, no file I/O
	downloaded, err := d.history.IsDownloaded(episode.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check download history: %w", err)
	}
	if downloaded {
		d.logger.Info("Already downloaded, skipping", "content_id", episode.ID, "title", episode.Title)
		return &Result{Skipped: true, Reason: "already in history"}, nil
	}

	url := episode.URL()
	info, err := d.engine.FetchInfo(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stream metadata: %w", err)
	}

	title := episode.Title
	if title == "" {
		title = info.Title
	}

	releaseName := d.composer.ReleaseName(info.ShowName(), title, naming.Classify(title), naming.StreamInfo{
		Height:        info.Height,
		VideoCodec:    info.VideoCodec,
		AudioCodec:    info.AudioCodec,
		AudioChannels: info.Channels(),
	})
	filename := releaseName + "." + d.cfg.ContainerFormat
	finalPath := filepath.Join(d.outputDir, filename)

	if _, err := os.Stat(finalPath); err == nil {
		d.logger.Info("Output file already exists, skipping", "filename", filename)
		return &Result{Filename: filename, Skipped: true, Reason: "file exists"}, nil
	}

	workDir, err := os.MkdirTemp(d.outputDir, cleanup.WorkDirPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	d.logger.Info("Downloading video", "title", title, "resolution", d.cfg.PreferredResolution)
	videoPath := filepath.Join(workDir, "video.mp4")
	if err := d.engine.DownloadVideo(ctx, url, videoPath, d.cfg.PreferredResolution); err != nil {
		return nil, fmt.Errorf("failed to download video: %w", err)
	}

	d.logger.Info("Downloading subtitles", "title", title)
	subtitles, err := d.engine.DownloadSubtitles(ctx, url, workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to download subtitles: %w", err)
	}

	d.logger.Info("Merging", "filename", filename, "subtitles", len(subtitles))
	if err := d.muxer.Merge(ctx, videoPath, subtitles, finalPath); err != nil {
		return nil, fmt.Errorf("failed to merge output file: %w", err)
	}

	stat, err := os.Stat(finalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat output file: %w", err)
	}

	sha256, err := history.FileSHA256(finalPath)
	if err != nil {
		return nil, fmt.Errorf("failed to hash output file: %w", err)
	}

	if err := d.history.RecordDownload(episode.ID, episode.Slug, episode.Title, filename, stat.Size(), sha256); err != nil {
		return nil, fmt.Errorf("failed to record download: %w", err)
	}

	d.logger.Info("Download complete", "filename", filename, "size", stat.Size())
	return &Result{Filename: filename}, nil
}

// BatchResult tallies the outcomes of a batch download
type BatchResult struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// ProcessBatch processes episodes sequentially. A failure on one item does
// not abort the batch unless continueAfter returns false; a nil continueAfter
// always continues.
func (d *Downloader) ProcessBatch(ctx context.Context, episodes []*models.Episode, continueAfter func(episode *models.Episode, err error) bool) (*BatchResult, error) {
	result := &BatchResult{}

	for i, episode := range episodes {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		d.logger.Info("Processing batch item",
			"index", i+1, "total", len(episodes), "title", episode.Title)

		res, err := d.Process(ctx, episode)
		if err != nil {
			result.Failed++
			d.logger.Error("Batch item failed", "title", episode.Title, "error", err)

			if i < len(episodes)-1 && continueAfter != nil && !continueAfter(episode, err) {
				break
			}
			continue
		}

		if res.Skipped {
			result.Skipped++
		} else {
			result.Succeeded++
		}
	}

	return result, nil
}

// FilterEpisodeRange keeps episodes whose episode number falls in [start, end].
// end <= 0 means no upper bound. Non-episodic content is dropped.
func FilterEpisodeRange(episodes []*models.Episode, start, end int) []*models.Episode {
	var filtered []*models.Episode
	for _, episode := range episodes {
		if episode.EpisodeNumber == nil {
			continue
		}
		n := *episode.EpisodeNumber
		if n < start {
			continue
		}
		if end > 0 && n > end {
			continue
		}
		filtered = append(filtered, episode)
	}
	return filtered
}

// ensure the real implementations satisfy the interfaces
var (
	_ MetadataClient = (*beacon.Client)(nil)
	_ TransferEngine = (*transfer.Engine)(nil)
	_ HistoryStore   = (*history.Store)(nil)
)
