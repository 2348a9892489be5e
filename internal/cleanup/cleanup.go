// Package cleanup removes stale working directories left by interrupted downloads
package cleanup

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// WorkDirPrefix marks temporary working directories created during a download.
// An interrupted run leaves its work dir behind; the next run sweeps it.
const WorkDirPrefix = ".beacon-dl-work-"

// Service removes leftover working directories
type Service struct {
	logger   *slog.Logger
	workRoot string
}

// NewService creates a cleanup service scanning the given directory
func NewService(workRoot string) *Service {
	return &Service{
		logger:   slog.Default(),
		workRoot: workRoot,
	}
}

// SweepStaleWorkDirs deletes every leftover work directory under the work
// root and returns the number removed. Failures on individual directories are
// logged and skipped; the sweep is best effort.
func (s *Service) SweepStaleWorkDirs() (int, error) {
	entries, err := os.ReadDir(s.workRoot)
	if err != nil {
		return 0, fmt.Errorf("failed to read work root: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), WorkDirPrefix) {
			continue
		}

		path := filepath.Join(s.workRoot, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			s.logger.Warn("Failed to remove stale work dir", "path", path, "error", err)
			continue
		}

		s.logger.Info("Removed stale work dir", "path", path)
		removed++
	}

	return removed, nil
}
