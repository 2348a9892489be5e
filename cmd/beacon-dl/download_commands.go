package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"beacon-dl/internal/downloader"
	"beacon-dl/pkg/models"
)

func newDownloadCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "download [url]",
		Short: "Download one piece of content (latest episode when no URL is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(ctx, cmd, args)
		},
	}
}

func runDownload(c *commandContext, cmd *cobra.Command, args []string) error {
	d, err := c.newDownloader(cmd.Context())
	if err != nil {
		return err
	}

	var result *downloader.Result
	if len(args) == 0 {
		cfg, err := c.ensureConfig()
		if err != nil {
			return err
		}
		client, err := c.beaconClient(cmd.Context())
		if err != nil {
			return err
		}

		episode, err := client.LatestEpisode(cmd.Context(), cfg.DefaultSeries)
		if err != nil {
			return err
		}
		if episode == nil {
			return fmt.Errorf("no episodes found for series %q", cfg.DefaultSeries)
		}

		fmt.Printf("Latest episode of %s: %s\n", cfg.DefaultSeries, episode.Title)
		result, err = d.Process(cmd.Context(), episode)
		if err != nil {
			return err
		}
	} else {
		result, err = d.ProcessURL(cmd.Context(), args[0])
		if err != nil {
			return err
		}
	}

	if result.Skipped {
		fmt.Printf("Skipped (%s)\n", result.Reason)
		return nil
	}
	fmt.Printf("Saved %s\n", result.Filename)
	return nil
}

func newBatchDownloadCommand(ctx *commandContext) *cobra.Command {
	var startFlag, endFlag int
	var yesFlag bool

	cmd := &cobra.Command{
		Use:   "batch-download <series>",
		Short: "Download every episode of a series, optionally bounded by episode number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.beaconClient(cmd.Context())
			if err != nil {
				return err
			}

			episodes, err := client.SeriesEpisodes(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			episodes = downloader.FilterEpisodeRange(episodes, startFlag, endFlag)
			if len(episodes) == 0 {
				return fmt.Errorf("no episodes of %q in the requested range", args[0])
			}

			d, err := ctx.newDownloader(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Downloading %d episode(s) of %s\n", len(episodes), args[0])

			continueAfter := func(episode *models.Episode, err error) bool {
				if yesFlag {
					return true
				}
				return promptYesNo(fmt.Sprintf("%q failed (%v). Continue with remaining episodes?", episode.Title, err))
			}

			result, err := d.ProcessBatch(cmd.Context(), episodes, continueAfter)
			if result != nil {
				fmt.Printf("Done: %d downloaded, %d skipped, %d failed\n",
					result.Succeeded, result.Skipped, result.Failed)
			}
			if err != nil {
				return err
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d episode(s) failed", result.Failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&startFlag, "start", 0, "First episode number to include")
	cmd.Flags().IntVar(&endFlag, "end", 0, "Last episode number to include (0 = no bound)")
	cmd.Flags().BoolVarP(&yesFlag, "yes", "y", false, "Continue past failures without prompting")

	return cmd
}

func promptYesNo(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
