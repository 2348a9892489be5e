package mux

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLanguageToken(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/tmp/work/subs.en.vtt", "en"},
		{"/tmp/work/subs.en.English.vtt", "English"},
		{"subs.es.vtt", "es"},
		{"noext", "und"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, languageToken(tt.path))
		})
	}
}
