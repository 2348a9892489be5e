package transfer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMediaInfo_ShowName(t *testing.T) {
	tests := []struct {
		name string
		info MediaInfo
		want string
	}{
		{"series preferred", MediaInfo{Series: "Campaign 4", Uploader: "Critical Role"}, "Campaign 4"},
		{"uploader fallback", MediaInfo{Uploader: "Critical Role"}, "Critical Role"},
		{"default", MediaInfo{}, "Critical Role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.info.ShowName())
		})
	}
}

func TestMediaInfo_Channels(t *testing.T) {
	two := 2
	require.Equal(t, "2", (&MediaInfo{AudioChannels: &two}).Channels())
	require.Equal(t, "", (&MediaInfo{}).Channels())
}

func TestMediaInfo_Decode(t *testing.T) {
	payload := `{
		"id": "c4-e006",
		"title": "C4 E006 | Knives and Thorns",
		"series": "Campaign 4",
		"height": 1080,
		"vcodec": "avc1.64001f",
		"acodec": "mp4a.40.2",
		"audio_channels": 2
	}`

	var info MediaInfo
	require.NoError(t, json.Unmarshal([]byte(payload), &info))
	require.Equal(t, 1080, info.Height)
	require.Equal(t, "avc1.64001f", info.VideoCodec)
	require.NotNil(t, info.AudioChannels)
	require.Equal(t, 2, *info.AudioChannels)
}

func TestFormatSelector(t *testing.T) {
	require.Equal(t,
		"bestvideo[height<=1080]+bestaudio/best[height<=1080]",
		formatSelector("1080p"))
	require.Equal(t,
		"bestvideo[height<=720]+bestaudio/best[height<=720]",
		formatSelector("720p"))
}
