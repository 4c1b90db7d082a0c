package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tonearm/internal/catalog"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the most recent library scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			out := cmd.OutOrStdout()

			store, err := catalog.Open(catalogPath(cfg))
			if err != nil {
				return fmt.Errorf("open scan catalog: %w", err)
			}
			defer store.Close()

			summary, err := store.LatestSummary(cmd.Context())
			if errors.Is(err, catalog.ErrNoScans) {
				fmt.Fprintln(out, "no scans recorded yet; run tonearm organize or tonearm check first")
				return nil
			}
			if err != nil {
				return fmt.Errorf("read scan catalog: %w", err)
			}

			rows := [][]string{
				{"Scan", summary.ScanID},
				{"Source", summary.SourceDir},
				{"When", summary.CreatedAt.Local().Format("2006-01-02 15:04:05")},
				{"Songs", strconv.Itoa(summary.Songs)},
				{"Artists", strconv.Itoa(summary.Artists)},
				{"Albums", strconv.Itoa(summary.Albums)},
				{"Unknown artist", strconv.Itoa(summary.Unknown)},
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows))

			if len(summary.TopArtists) > 0 {
				artistRows := make([][]string, 0, len(summary.TopArtists))
				for _, a := range summary.TopArtists {
					artistRows = append(artistRows, []string{a.Name, strconv.Itoa(a.Songs)})
				}
				fmt.Fprintln(out, renderTable([]string{"Artist", "Songs"}, artistRows, 2))
			}
			return nil
		},
	}
	return cmd
}
