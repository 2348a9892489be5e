// Package mux wraps ffmpeg to merge video and subtitle files into one container
package mux

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"beacon-dl/internal/naming"
)

// FFmpeg merges downloaded assets by invoking the ffmpeg binary. Video and
// audio streams are copied, subtitles are converted to srt.
type FFmpeg struct{}

// NewFFmpeg creates an ffmpeg muxer
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{}
}

// Merge combines the video file and subtitle files into outputPath. Each
// subtitle stream is tagged with the ISO 639-2 code derived from the language
// token in its filename.
func (f *FFmpeg) Merge(ctx context.Context, videoPath string, subtitlePaths []string, outputPath string) error {
	args := []string{"-i", videoPath}
	for _, sub := range subtitlePaths {
		args = append(args, "-i", sub)
	}

	args = append(args, "-map", "0:v", "-map", "0:a")
	for i := range subtitlePaths {
		args = append(args, "-map", strconv.Itoa(i+1))
	}

	args = append(args, "-c:v", "copy", "-c:a", "copy")
	if len(subtitlePaths) > 0 {
		args = append(args, "-c:s", "srt")
	}

	for i, sub := range subtitlePaths {
		iso := naming.LanguageToISO(languageToken(sub))
		args = append(args,
			fmt.Sprintf("-metadata:s:s:%d", i),
			fmt.Sprintf("language=%s", iso),
		)
	}

	args = append(args, outputPath, "-y", "-hide_banner", "-loglevel", "warning")

	cmd := exec.CommandContext(ctx, "ffmpeg", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg merge failed: %w\noutput: %s", err, output)
	}
	return nil
}

// languageToken extracts the language token embedded in a subtitle filename.
// "subs.en.vtt" yields "en"; "subs.en.English.vtt" yields "English".
func languageToken(path string) string {
	parts := strings.Split(filepath.Base(path), ".")
	if len(parts) >= 3 {
		return parts[len(parts)-2]
	}
	return "und"
}

// Installed checks that ffmpeg is available on PATH
func Installed() error {
	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		return fmt.Errorf("ffmpeg not found: %w", err)
	}
	return nil
}
