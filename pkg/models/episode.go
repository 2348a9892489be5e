// Package models defines the data structures used throughout the application
package models

import (
	"fmt"
	"time"
)

// Collection represents a beacon.tv collection or series
type Collection struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsSeries  bool   `json:"isSeries"`
	ItemCount int    `json:"itemCount"`
}

// Episode represents one piece of beacon.tv content. SeasonNumber and
// EpisodeNumber are nil for non-episodic content (one-shots, specials).
type Episode struct {
	ID                string      `json:"id"`
	Title             string      `json:"title"`
	Slug              string      `json:"slug"`
	SeasonNumber      *int        `json:"seasonNumber"`
	EpisodeNumber     *int        `json:"episodeNumber"`
	ReleaseDate       *time.Time  `json:"releaseDate"`
	DurationMillis    int64       `json:"duration"`
	Description       string      `json:"description"`
	PrimaryCollection *Collection `json:"primaryCollection"`
}

// IsEpisodic reports whether the episode carries season and episode numbers
func (e *Episode) IsEpisodic() bool {
	return e.SeasonNumber != nil && e.EpisodeNumber != nil
}

// SeasonEpisode returns the formatted season/episode token (e.g. "S04E06").
// Numbers are zero-padded to two digits but never truncated, so episode 142
// renders as "E142". Returns "" for non-episodic content.
func (e *Episode) SeasonEpisode() string {
	if !e.IsEpisodic() {
		return ""
	}
	return fmt.Sprintf("S%02dE%02d", *e.SeasonNumber, *e.EpisodeNumber)
}

// DurationFormatted returns a human-readable duration (e.g. "4h 12m")
func (e *Episode) DurationFormatted() string {
	if e.DurationMillis <= 0 {
		return "Unknown"
	}
	seconds := e.DurationMillis / 1000
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// URL returns the full beacon.tv content URL for this episode
func (e *Episode) URL() string {
	return "https://beacon.tv/content/" + e.Slug
}

// EpisodeInfo is the result of title classification. When Episodic is false
// the title did not match any known numbering convention and is used verbatim.
type EpisodeInfo struct {
	Episodic     bool
	Season       int
	Episode      int
	EpisodeTitle string
}

// VideoMetadata holds the technical parameters used to compose a release filename
type VideoMetadata struct {
	Resolution      string
	VideoCodec      string
	AudioCodec      string
	AudioChannels   string
	SourceType      string
	ContainerFormat string
}
