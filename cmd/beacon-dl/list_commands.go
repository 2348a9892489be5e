package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newListSeriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-series",
		Short: "List the series available on beacon.tv",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.beaconClient(cmd.Context())
			if err != nil {
				return err
			}

			collections, err := client.Collections(cmd.Context())
			if err != nil {
				return err
			}
			if len(collections) == 0 {
				fmt.Println("No series found")
				return nil
			}

			rows := make([][]string, 0, len(collections))
			for _, collection := range collections {
				rows = append(rows, []string{
					collection.Name,
					collection.Slug,
					strconv.Itoa(collection.ItemCount),
				})
			}

			fmt.Println(renderTable(
				[]string{"Name", "Slug", "Episodes"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}

func newListEpisodesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list-episodes <series>",
		Short: "List the episodes of a series",
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
			if len(episodes) == 0 {
				fmt.Printf("No episodes found for %s\n", args[0])
				return nil
			}

			rows := make([][]string, 0, len(episodes))
			for _, episode := range episodes {
				marker := episode.SeasonEpisode()
				if marker == "" {
					marker = "-"
				}
				released := "-"
				if episode.ReleaseDate != nil {
					released = episode.ReleaseDate.Format("2006-01-02")
				}
				rows = append(rows, []string{
					marker,
					episode.Title,
					released,
					episode.DurationFormatted(),
				})
			}

			fmt.Println(renderTable(
				[]string{"Episode", "Title", "Released", "Duration"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}
}

func newCheckNewCommand(ctx *commandContext) *cobra.Command {
	var seriesFlag string

	cmd := &cobra.Command{
		Use:   "check-new",
		Short: "Check whether the latest episode of a series has been downloaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			series := seriesFlag
			if series == "" {
				series = cfg.DefaultSeries
			}

			client, err := ctx.beaconClient(cmd.Context())
			if err != nil {
				return err
			}
			store, err := ctx.ensureStore()
			if err != nil {
				return err
			}

			episode, err := client.LatestEpisode(cmd.Context(), series)
			if err != nil {
				return err
			}
			if episode == nil {
				return fmt.Errorf("no episodes found for series %q", series)
			}

			downloaded, err := store.IsDownloaded(episode.ID)
			if err != nil {
				return err
			}

			released := ""
			if episode.ReleaseDate != nil {
				released = fmt.Sprintf(" (released %s)", humanize.Time(*episode.ReleaseDate))
			}

			if downloaded {
				fmt.Printf("Up to date: %s%s already downloaded\n", episode.Title, released)
				return nil
			}
			fmt.Printf("New episode available: %s%s\n", episode.Title, released)
			fmt.Printf("Download it with: beacon-dl download %s\n", episode.URL())
			return nil
		},
	}

	cmd.Flags().StringVar(&seriesFlag, "series", "", "Series slug to check (defaults to DEFAULT_SERIES)")

	return cmd
}
