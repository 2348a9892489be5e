package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var outputFlag string

	ctx := newCommandContext(&outputFlag)

	rootCmd := &cobra.Command{
		Use:           "beacon-dl [url]",
		Short:         "Download and archive beacon.tv content",
		Long: `beacon-dl downloads videos from beacon.tv, names them by scene release
conventions, and keeps a local history so nothing is fetched twice.

Run without arguments to download the latest episode of the default series.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			setupLogging(cfg.LogLevel)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(ctx, cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", ".", "Directory downloads are written to")

	rootCmd.AddCommand(newDownloadCommand(ctx))
	rootCmd.AddCommand(newBatchDownloadCommand(ctx))
	rootCmd.AddCommand(newListSeriesCommand(ctx))
	rootCmd.AddCommand(newListEpisodesCommand(ctx))
	rootCmd.AddCommand(newCheckNewCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))
	rootCmd.AddCommand(newVerifyCommand(ctx))
	rootCmd.AddCommand(newRemoveCommand(ctx))
	rootCmd.AddCommand(newClearHistoryCommand(ctx))

	return rootCmd
}

func setupLogging(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}
