package main

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"beacon-dl/internal/naming"
	"beacon-dl/pkg/models"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the download history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore()
			if err != nil {
				return err
			}

			records, err := store.ListDownloads(limitFlag)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No downloads recorded")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				size := "-"
				if record.FileSize != nil {
					size = humanize.Bytes(uint64(*record.FileSize))
				}
				rows = append(rows, []string{
					humanize.Time(record.DownloadedAt),
					episodeMarker(record.Title),
					record.Title,
					size,
					string(record.Status),
				})
			}

			fmt.Println(renderTable(
				[]string{"Downloaded", "Episode", "Title", "Size", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))

			total, err := store.CountDownloads()
			if err != nil {
				return err
			}
			fmt.Printf("%d of %d record(s) shown\n", len(records), total)
			return nil
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 25, "Maximum records to show (0 = all)")

	return cmd
}

// episodeMarker derives an "S04E06" style marker from a stored title, or "-"
// for content whose title carries no episode numbering
func episodeMarker(title string) string {
	info := naming.Classify(title)
	if !info.Episodic {
		return "-"
	}
	return fmt.Sprintf("S%02dE%02d", info.Season, info.Episode)
}

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var fullFlag bool

	cmd := &cobra.Command{
		Use:   "verify [filename]",
		Short: "Verify downloaded files against the history",
		Long: `Verify checks that downloaded files still exist and match their recorded
size. With --full the SHA-256 of each file is recomputed as well, which can
take a while for a large library.

With no filename every record in the history is checked. Files are looked up
in the output directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore()
			if err != nil {
				return err
			}

			var records []*models.DownloadRecord
			if len(args) == 1 {
				record, err := store.GetDownloadByFilename(args[0])
				if err != nil {
					return err
				}
				if record == nil {
					return fmt.Errorf("no download recorded for %q", args[0])
				}
				records = []*models.DownloadRecord{record}
			} else {
				records, err = store.ListDownloads(0)
				if err != nil {
					return err
				}
			}
			if len(records) == 0 {
				fmt.Println("Nothing to verify")
				return nil
			}

			dir := ctx.outputDir()
			valid := 0
			for _, record := range records {
				path := filepath.Join(dir, record.Filename)

				var result models.VerifyResult
				if fullFlag {
					result, err = store.VerifyRecord(record, path)
				} else {
					result, err = store.QuickVerifyRecord(record, path)
				}
				if err != nil {
					return err
				}

				if result == models.VerifyValid {
					valid++
				}
				fmt.Printf("%-14s %s\n", result, record.Filename)
			}

			invalid := len(records) - valid
			fmt.Printf("\n%d valid, %d invalid\n", valid, invalid)
			if invalid > 0 {
				return fmt.Errorf("%d file(s) failed verification", invalid)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fullFlag, "full", false, "Recompute SHA-256 hashes instead of checking size only")

	return cmd
}

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <content-id>",
		Short: "Remove one record from the download history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore()
			if err != nil {
				return err
			}

			removed, err := store.RemoveDownload(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no record for content id %q", args[0])
			}
			fmt.Printf("Removed %s from history\n", args[0])
			return nil
		},
	}
}

func newClearHistoryCommand(ctx *commandContext) *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "clear-history",
		Short: "Delete every record from the download history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.ensureStore()
			if err != nil {
				return err
			}

			count, err := store.CountDownloads()
			if err != nil {
				return err
			}
			if count == 0 {
				fmt.Println("History is already empty")
				return nil
			}

			if !forceFlag && !promptYesNo(fmt.Sprintf("This deletes %d record(s). Continue?", count)) {
				fmt.Println("Aborted")
				return nil
			}

			deleted, err := store.ClearHistory()
			if err != nil {
				return err
			}
			fmt.Printf("Deleted %d record(s)\n", deleted)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}
