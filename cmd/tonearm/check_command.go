package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"tonearm/internal/consistency"
	"tonearm/internal/library"
	"tonearm/internal/logging"
	"tonearm/internal/tags"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var (
		musicDirFlag string
		dryRun       bool
		verbose      int
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find and fix inconsistent tag metadata",
		Long: `Index the music directory and look for artists or albums whose names only
differ in casing, and for albums whose songs disagree about the total track
or disc count. Each finding is presented interactively; accepted fixes are
written back into the files' tags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger := logging.NewComponentLogger(ctx.ensureLogger(), "check")
			out := cmd.OutOrStdout()

			musicDir, err := resolveMusicDir(musicDirFlag, cfg)
			if err != nil {
				return err
			}

			logger.Info("indexing music directory", logging.Path(musicDir))
			ix := scanLibrary(out, musicDir, verbose)
			recordScan(cmd.Context(), cfg, logger, ix)

			resolver := newPromptResolver(cmd.InOrStdin(), out)
			report := consistency.Check(ix, resolver)
			if report.Empty() {
				fmt.Fprintln(out, "no fixes accepted")
				return nil
			}
			if dryRun {
				fmt.Fprintln(out, "dry run, no tags were changed")
				return nil
			}

			errs := applyReport(out, logger, ix, report)
			if len(errs) > 0 {
				for _, writeErr := range errs {
					fmt.Fprintf(out, "  %v\n", writeErr)
				}
				return fmt.Errorf("%d tag write(s) failed", len(errs))
			}
			fmt.Fprintln(out, "done")
			return nil
		},
	}

	cmd.Flags().StringVarP(&musicDirFlag, "music-dir", "m", "", "Music directory to index")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Resolve interactively but write nothing")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "Print more detail; repeat for per-file output")

	return cmd
}

// applyReport writes every accepted fix back into the affected files' tags.
// Failures are collected so one unwritable file never stops the rest.
func applyReport(out io.Writer, logger *slog.Logger, ix *library.MusicIndex, report consistency.Report) []error {
	var errs []error
	write := func(song *library.Song, patch tags.Patch) {
		fmt.Fprintf(out, "updating %s\n", song.CurrentFile)
		if err := tags.WriteMetadata(song.CurrentFile, patch); err != nil {
			logger.Error("tag write failed", logging.Path(song.CurrentFile), logging.Error(err))
			errs = append(errs, err)
		}
	}

	for _, rename := range report.ArtistRenames {
		for _, artist := range []*library.Artist{rename.First, rename.Second} {
			old := artist.Name
			if old == rename.Name {
				continue
			}
			for _, album := range artist.Albums {
				for _, si := range album.Songs {
					song := &ix.Songs[si]
					var patch tags.Patch
					if song.Artist == old {
						patch.Artist = &rename.Name
					}
					if song.AlbumArtist == old {
						patch.AlbumArtist = &rename.Name
					}
					if patch.Artist == nil && patch.AlbumArtist == nil {
						continue
					}
					write(song, patch)
				}
			}
		}
	}

	for _, rename := range report.AlbumRenames {
		for _, album := range []*library.Album{rename.First, rename.Second} {
			if album.Name == rename.Name {
				continue
			}
			for _, si := range album.Songs {
				write(&ix.Songs[si], tags.Patch{Album: &rename.Name})
			}
		}
	}

	for _, fix := range report.TrackTotalFixes {
		total := fix.Total
		for _, si := range fix.Album.Songs {
			song := &ix.Songs[si]
			if song.TotalTracks == total {
				continue
			}
			write(song, tags.Patch{TotalTracks: &total})
		}
	}

	for _, fix := range report.DiscTotalFixes {
		total := fix.Total
		for _, si := range fix.Album.Songs {
			song := &ix.Songs[si]
			if song.TotalDiscs == total {
				continue
			}
			write(song, tags.Patch{TotalDiscs: &total})
		}
	}

	return errs
}
