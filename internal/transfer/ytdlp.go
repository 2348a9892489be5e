// Package transfer wraps yt-dlp for fetching video and subtitle assets
package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// MediaInfo holds the stream parameters yt-dlp reports for a piece of content
type MediaInfo struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Series        string `json:"series"`
	Uploader      string `json:"uploader"`
	Height        int    `json:"height"`
	VideoCodec    string `json:"vcodec"`
	AudioCodec    string `json:"acodec"`
	AudioChannels *int   `json:"audio_channels"`
}

// ShowName returns the best available show name for the content
func (m *MediaInfo) ShowName() string {
	if m.Series != "" {
		return m.Series
	}
	if m.Uploader != "" {
		return m.Uploader
	}
	return "Critical Role"
}

// Channels renders the reported channel count, or "" when not reported
func (m *MediaInfo) Channels() string {
	if m.AudioChannels == nil {
		return ""
	}
	return strconv.Itoa(*m.AudioChannels)
}

// Engine invokes yt-dlp as a subprocess. All operations are blocking and
// bounded only by network throughput; cancellation happens through the
// context killing the subprocess.
type Engine struct {
	cookieFile string
	userAgent  string
	logger     *slog.Logger
}

// NewEngine creates a transfer engine authenticating with the given cookie file
func NewEngine(cookieFile, userAgent string) *Engine {
	return &Engine{
		cookieFile: cookieFile,
		userAgent:  userAgent,
		logger:     slog.Default(),
	}
}

// baseArgs returns the arguments common to every yt-dlp invocation
func (e *Engine) baseArgs() []string {
	args := []string{"--no-warnings"}
	if e.cookieFile != "" {
		args = append(args, "--cookies", e.cookieFile)
	}
	if e.userAgent != "" {
		args = append(args, "--user-agent", e.userAgent)
	}
	return args
}

// FetchInfo retrieves stream metadata without downloading anything
func (e *Engine) FetchInfo(ctx context.Context, url string) (*MediaInfo, error) {
	args := append(e.baseArgs(), "-J", url)

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp metadata fetch failed: %w", err)
	}

	var info MediaInfo
	if err := json.Unmarshal(output, &info); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp metadata: %w", err)
	}

	return &info, nil
}

// formatSelector builds the yt-dlp format string capped at the preferred
// resolution (e.g. "1080p")
func formatSelector(resolution string) string {
	height := strings.TrimSuffix(resolution, "p")
	return fmt.Sprintf("bestvideo[height<=%s]+bestaudio/best[height<=%s]", height, height)
}

// DownloadVideo fetches the video stream into destPath, merged to mp4
func (e *Engine) DownloadVideo(ctx context.Context, url, destPath, resolution string) error {
	args := append(e.baseArgs(),
		"-f", formatSelector(resolution),
		"--merge-output-format", "mp4",
		"-o", destPath,
		url,
	)

	e.logger.Debug("Starting video transfer", "url", url, "resolution", resolution)

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("yt-dlp download failed: %w\noutput: %s", err, output)
	}
	return nil
}

// DownloadSubtitles fetches every available subtitle track into destDir and
// returns the paths of the files written (subs.<lang>.vtt). Content without
// subtitles yields an empty slice, not an error.
func (e *Engine) DownloadSubtitles(ctx context.Context, url, destDir string) ([]string, error) {
	args := append(e.baseArgs(),
		"--skip-download",
		"--write-subs",
		"--sub-langs", "all",
		"-o", filepath.Join(destDir, "subs"),
		url,
	)

	cmd := exec.CommandContext(ctx, "yt-dlp", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("yt-dlp subtitle download failed: %w\noutput: %s", err, output)
	}

	subs, err := filepath.Glob(filepath.Join(destDir, "subs.*.vtt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list subtitle files: %w", err)
	}
	sort.Strings(subs)
	return subs, nil
}

// Installed checks that yt-dlp is available on PATH
func Installed() error {
	if err := exec.Command("yt-dlp", "--version").Run(); err != nil {
		return fmt.Errorf("yt-dlp not found: %w (install: pip install yt-dlp)", err)
	}
	return nil
}
