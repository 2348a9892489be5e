// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// DefaultUserAgent is sent on API and transfer requests
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	resolutionPattern = regexp.MustCompile(`^\d{3,4}p$`)
	channelsPattern   = regexp.MustCompile(`^\d+\.\d+$`)

	supportedContainers = []string{"mkv", "mp4", "avi", "mov", "webm", "flv", "m4v"}
	validLogLevels      = []string{"debug", "info", "warn", "error"}
)

// Config represents the application configuration. It is constructed once at
// process start and passed into component constructors; there is no ambient
// global settings object.
type Config struct {
	ReleaseGroup        string `env:"RELEASE_GROUP" envDefault:"Pawsty"`
	PreferredResolution string `env:"PREFERRED_RESOLUTION" envDefault:"1080p"`
	SourceType          string `env:"SOURCE_TYPE" envDefault:"WEB-DL"`
	ContainerFormat     string `env:"CONTAINER_FORMAT" envDefault:"mkv"`

	DefaultAudioCodec    string `env:"DEFAULT_AUDIO_CODEC" envDefault:"AAC"`
	DefaultAudioChannels string `env:"DEFAULT_AUDIO_CHANNELS" envDefault:"2.0"`
	DefaultVideoCodec    string `env:"DEFAULT_VIDEO_CODEC" envDefault:"H.264"`

	UserAgent      string `env:"USER_AGENT"`
	BeaconUsername string `env:"BEACON_USERNAME"`
	BeaconPassword string `env:"BEACON_PASSWORD"`
	BrowserProfile string `env:"BROWSER_PROFILE"`
	CookieFile     string `env:"COOKIE_FILE" envDefault:"beacon_cookies.txt"`

	DatabasePath  string `env:"DATABASE_PATH" envDefault:".beacon-dl-history.db"`
	DefaultSeries string `env:"DEFAULT_SERIES" envDefault:"campaign-4"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate rejects malformed technical parameters at load time rather than
// deferring to first use
func (c *Config) Validate() error {
	if !resolutionPattern.MatchString(c.PreferredResolution) {
		return fmt.Errorf("invalid PREFERRED_RESOLUTION %q, must match a form like 1080p", c.PreferredResolution)
	}

	if !channelsPattern.MatchString(c.DefaultAudioChannels) {
		return fmt.Errorf("invalid DEFAULT_AUDIO_CHANNELS %q, must match a form like 2.0", c.DefaultAudioChannels)
	}

	if !slices.Contains(supportedContainers, c.ContainerFormat) {
		return fmt.Errorf("invalid CONTAINER_FORMAT %q, must be one of: %v", c.ContainerFormat, supportedContainers)
	}

	if !slices.Contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level %q, must be one of: %v", c.LogLevel, validLogLevels)
	}

	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH cannot be empty")
	}

	if c.ReleaseGroup == "" {
		return fmt.Errorf("RELEASE_GROUP cannot be empty")
	}

	return nil
}
