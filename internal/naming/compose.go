package naming

import (
	"fmt"
	"regexp"
	"strings"

	"beacon-dl/pkg/models"
)

// codecPattern maps a stream codec identifier substring to its release-name form
type codecPattern struct {
	substr string
	name   string
}

// videoCodecs and audioCodecs are matched in order against the raw stream
// codec identifier. "eac3" must be listed before "ac3" since it contains
// "ac3" as a substring and would otherwise misclassify as AC3.
var videoCodecs = []codecPattern{
	{"avc", "H.264"},
	{"h264", "H.264"},
	{"x264", "H.264"},
	{"hevc", "H.265"},
	{"h265", "H.265"},
	{"x265", "H.265"},
	{"vp9", "VP9"},
	{"av1", "AV1"},
}

var audioCodecs = []codecPattern{
	{"mp4a", "AAC"},
	{"aac", "AAC"},
	{"opus", "Opus"},
	{"vorbis", "Vorbis"},
	{"eac3", "EAC3"},
	{"ac3", "AC3"},
	{"mp3", "MP3"},
	{"flac", "FLAC"},
}

var integerChannels = regexp.MustCompile(`^\d+$`)
var fractionalChannels = regexp.MustCompile(`^\d+\.\d+$`)

// StreamInfo carries the technical parameters reported for the actual media
// streams. Zero values mean the parameter was not reported and the composer
// falls back to its configured defaults.
type StreamInfo struct {
	Height        int
	VideoCodec    string
	AudioCodec    string
	AudioChannels string
}

// Composer derives canonical release filenames. Defaults fill in whenever a
// stream-level value is absent or unrecognized.
type Composer struct {
	Resolution    string
	SourceType    string
	AudioCodec    string
	AudioChannels string
	VideoCodec    string
	ReleaseGroup  string
}

// NewComposer creates a composer with the given configured defaults
func NewComposer(meta models.VideoMetadata, releaseGroup string) *Composer {
	return &Composer{
		Resolution:    meta.Resolution,
		SourceType:    meta.SourceType,
		AudioCodec:    meta.AudioCodec,
		AudioChannels: meta.AudioChannels,
		VideoCodec:    meta.VideoCodec,
		ReleaseGroup:  releaseGroup,
	}
}

// ReleaseName builds the canonical release filename, without extension.
//
// Episodic:     Show.S04E06.Episode.Title.1080p.WEB-DL.AAC2.0.H.264-Group
// Non-episodic: Show.Title.1080p.WEB-DL.AAC2.0.H.264-Group
//
// When a sanitized non-episodic title already begins with "Show." the show
// name is not prepended a second time.
func (c *Composer) ReleaseName(show, title string, info models.EpisodeInfo, stream StreamInfo) string {
	showToken := Sanitize(show)
	suffix := c.technicalSuffix(stream)

	if info.Episodic {
		titleToken := Sanitize(info.EpisodeTitle)
		return fmt.Sprintf("%s.S%02dE%02d.%s.%s", showToken, info.Season, info.Episode, titleToken, suffix)
	}

	titleToken := Sanitize(title)
	if strings.HasPrefix(titleToken, showToken+".") {
		return fmt.Sprintf("%s.%s", titleToken, suffix)
	}
	return fmt.Sprintf("%s.%s.%s", showToken, titleToken, suffix)
}

// technicalSuffix renders "1080p.WEB-DL.AAC2.0.H.264-Group"
func (c *Composer) technicalSuffix(stream StreamInfo) string {
	resolution := c.Resolution
	if stream.Height > 0 {
		resolution = fmt.Sprintf("%dp", stream.Height)
	}

	videoCodec := matchCodec(videoCodecs, stream.VideoCodec, c.VideoCodec)
	audioCodec := matchCodec(audioCodecs, stream.AudioCodec, c.AudioCodec)
	channels := c.renderChannels(stream.AudioChannels)

	return fmt.Sprintf("%s.%s.%s%s.%s-%s", resolution, c.SourceType, audioCodec, channels, videoCodec, c.ReleaseGroup)
}

// renderChannels normalizes a reported channel count: integers gain a ".0"
// suffix, fractional strings like "5.1" pass through verbatim, anything else
// falls back to the configured default.
func (c *Composer) renderChannels(reported string) string {
	switch {
	case integerChannels.MatchString(reported):
		return reported + ".0"
	case fractionalChannels.MatchString(reported):
		return reported
	default:
		return c.AudioChannels
	}
}

func matchCodec(patterns []codecPattern, identifier, fallback string) string {
	if identifier == "" {
		return fallback
	}
	lower := strings.ToLower(identifier)
	for _, p := range patterns {
		if strings.Contains(lower, p.substr) {
			return p.name
		}
	}
	return fallback
}
