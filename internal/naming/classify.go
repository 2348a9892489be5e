package naming

import (
	"regexp"
	"strconv"

	"beacon-dl/pkg/models"
)

// titlePatterns are the recognized episode-numbering conventions, in priority
// order. The order is a contract: a title matching more than one pattern
// always takes the first listed match.
var titlePatterns = []*regexp.Regexp{
	// "C4 E006 | Knives and Thorns"
	regexp.MustCompile(`^C(\d+)\s+E(\d+)\s+\|\s+(.*)`),
	// "S04E06 - Title" or "S04E06: Title"
	regexp.MustCompile(`^S(\d+)E(\d+)\s*[-:]\s*(.*)`),
	// "S04E06 Title"
	regexp.MustCompile(`^S(\d+)E(\d+)\s+(.*)`),
	// "4x06 - Title" or "4x06: Title"
	regexp.MustCompile(`^(\d+)x(\d+)\s*[-:]\s*(.*)`),
}

// Classify parses a free-text title against the known episode-numbering
// conventions. When no pattern matches, the title is non-episodic and callers
// use it verbatim (after sanitization) as the distinguishing name component.
func Classify(title string) models.EpisodeInfo {
	for _, pattern := range titlePatterns {
		m := pattern.FindStringSubmatch(title)
		if m == nil {
			continue
		}

		season, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		episode, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}

		return models.EpisodeInfo{
			Episodic:     true,
			Season:       season,
			Episode:      episode,
			EpisodeTitle: m[3],
		}
	}

	return models.EpisodeInfo{Episodic: false, EpisodeTitle: title}
}
