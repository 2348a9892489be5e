package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "pipe separated episode title",
			input: "C4 E007 | On the Scent",
			want:  "C4.E007.On.the.Scent",
		},
		{
			name:  "punctuation stripped",
			input: "Knives & Thorns: Part 1!",
			want:  "Knives.Thorns.Part.1",
		},
		{
			name:  "multiple spaces collapse",
			input: "a    b",
			want:  "a.b",
		},
		{
			name:  "unicode stripped",
			input: "Café Münchën",
			want:  "Caf.Mnchn",
		},
		{
			name:  "dotted input unchanged",
			input: "C4.E007.On.the.Scent",
			want:  "C4.E007.On.the.Scent",
		},
		{
			name:  "mixed space and dot runs collapse",
			input: "a . b...c",
			want:  "a.b.c",
		},
		{
			name:  "leading dots and dashes stripped",
			input: "--- leading",
			want:  "leading",
		},
		{
			name:  "trailing dot kept",
			input: "ends with space ",
			want:  "ends.with.space.",
		},
		{
			name:  "empty input",
			input: "",
			want:  "unnamed",
		},
		{
			name:  "only punctuation",
			input: "!!!",
			want:  "unnamed",
		},
		{
			name:  "truncated to 200 characters",
			input: strings.Repeat("a", 250),
			want:  strings.Repeat("a", 200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"C4 E007 | On the Scent",
		"C4.E007.On.the.Scent",
		"Knives & Thorns",
		"already.sanitized",
		"",
		"!!!",
		"  spaced  out  ",
		". mixed . runs .",
		strings.Repeat("a ", 150),
	}

	for _, input := range inputs {
		once := Sanitize(input)
		require.Equal(t, once, Sanitize(once), "input %q", input)
	}
}
