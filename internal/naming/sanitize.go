// Package naming derives canonical release filenames from episode metadata
package naming

import "regexp"

const (
	// maxNameLength caps sanitized tokens to keep paths filesystem-safe
	maxNameLength = 200

	// fallbackName is returned when sanitization strips an input to nothing
	fallbackName = "unnamed"
)

var (
	nonAlnumSpaceDot = regexp.MustCompile(`[^a-zA-Z0-9 .]`)
	spaceDotRun      = regexp.MustCompile(`[ .]+`)
	leadingDotDash   = regexp.MustCompile(`^[.-]+`)
)

// Sanitize converts free text into a filesystem-safe dot-separated token.
// Non-ASCII characters and punctuation are stripped, runs of spaces and dots
// collapse to a single dot, and leading dots/dashes are removed. Dots are
// retained in the kept character set, which makes the function idempotent:
// its output passes through unchanged.
func Sanitize(name string) string {
	if name == "" {
		return fallbackName
	}

	clean := nonAlnumSpaceDot.ReplaceAllString(name, "")
	clean = spaceDotRun.ReplaceAllString(clean, ".")
	clean = leadingDotDash.ReplaceAllString(clean, "")

	if len(clean) > maxNameLength {
		clean = clean[:maxNameLength]
	}

	if clean == "" {
		return fallbackName
	}
	return clean
}
