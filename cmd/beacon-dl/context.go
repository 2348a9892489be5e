package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"beacon-dl/internal/beacon"
	"beacon-dl/internal/cleanup"
	"beacon-dl/internal/config"
	"beacon-dl/internal/cookies"
	"beacon-dl/internal/downloader"
	"beacon-dl/internal/history"
	"beacon-dl/internal/mux"
	"beacon-dl/internal/transfer"
)

// commandContext lazily constructs the shared dependencies behind the CLI
// commands. Config and store are built at most once per invocation.
type commandContext struct {
	outputFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	storeOnce sync.Once
	store     *history.Store
	storeErr  error

	clientOnce sync.Once
	client     *beacon.Client
	clientErr  error
}

func newCommandContext(outputFlag *string) *commandContext {
	return &commandContext{outputFlag: outputFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.Load()
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureStore() (*history.Store, error) {
	c.storeOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.storeErr = err
			return
		}
		c.store, c.storeErr = history.New(cfg.DatabasePath)
	})
	return c.store, c.storeErr
}

// beaconClient builds the GraphQL client, bootstrapping session cookies from
// the cookie file or, failing that, from an installed browser's cookie store.
func (c *commandContext) beaconClient(ctx context.Context) (*beacon.Client, error) {
	c.clientOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.clientErr = err
			return
		}

		jar, err := c.sessionCookies(ctx, cfg)
		if err != nil {
			c.clientErr = err
			return
		}

		c.client = beacon.New(jar, cfg.UserAgent)
	})
	return c.client, c.clientErr
}

func (c *commandContext) sessionCookies(ctx context.Context, cfg *config.Config) (map[string]string, error) {
	jar, err := cookies.LoadJar(cfg.CookieFile)
	if err == nil && len(jar) > 0 {
		return jar, nil
	}

	slog.Info("No cookie file, extracting session from browser", "browser", cfg.BrowserProfile)

	extracted, err := cookies.Extract(ctx, cookies.ExtractOptions{
		Browser: cfg.BrowserProfile,
		Domain:  "beacon.tv",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract browser cookies: %w", err)
	}
	if len(extracted) == 0 {
		return nil, fmt.Errorf("no beacon.tv session found: sign in with a browser (%v) or provide %s",
			cookies.SupportedBrowsers(), cfg.CookieFile)
	}

	if err := cookies.WriteFile(cfg.CookieFile, extracted); err != nil {
		slog.Warn("Failed to persist cookie file", "path", cfg.CookieFile, "error", err)
	}

	jar = make(map[string]string, len(extracted))
	for _, cookie := range extracted {
		jar[cookie.Name] = cookie.Value
	}
	return jar, nil
}

// newDownloader assembles the full pipeline. The cookie bootstrap runs first
// so the transfer engine can authenticate with the same cookie file.
func (c *commandContext) newDownloader(ctx context.Context) (*downloader.Downloader, error) {
	if err := transfer.Installed(); err != nil {
		return nil, err
	}
	if err := mux.Installed(); err != nil {
		return nil, err
	}

	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	client, err := c.beaconClient(ctx)
	if err != nil {
		return nil, err
	}
	store, err := c.ensureStore()
	if err != nil {
		return nil, err
	}

	outputDir := c.outputDir()
	if swept, err := cleanup.NewService(outputDir).SweepStaleWorkDirs(); err != nil {
		slog.Warn("Failed to sweep stale work directories", "error", err)
	} else if swept > 0 {
		slog.Info("Removed stale work directories", "count", swept)
	}

	engine := transfer.NewEngine(cfg.CookieFile, cfg.UserAgent)
	return downloader.New(cfg, outputDir, client, engine, mux.NewFFmpeg(), store), nil
}

func (c *commandContext) outputDir() string {
	if c.outputFlag == nil || *c.outputFlag == "" {
		return "."
	}
	return *c.outputFlag
}

func (c *commandContext) close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
