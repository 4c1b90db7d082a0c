package main

import (
	"bufio"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"tonearm/internal/consistency"
	"tonearm/internal/logging"
	"tonearm/internal/organizer"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var (
		musicDirFlag  string
		outputDirFlag string
		copyFlag      bool
		assumeYesFlag bool
		dryRun        bool
		verbose       int
	)

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Reorganize a music directory into artist and album folders",
		Long: `Index every audio file beneath the music directory by its tag metadata,
plan a canonical artist/album layout, and move (or copy) the files into it.
Files whose tags name no artist are gathered under an "unknown"
directory. Nothing is changed before the plan is confirmed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logger := logging.NewComponentLogger(ctx.ensureLogger(), "organize")
			out := cmd.OutOrStdout()

			musicDir, err := resolveMusicDir(musicDirFlag, cfg)
			if err != nil {
				return err
			}
			outputDir, outputGiven, err := resolveOutputDir(outputDirFlag, cfg, musicDir)
			if err != nil {
				return err
			}
			copyMode := copyFlag || cfg.Organize.Copy
			if copyMode && !outputGiven {
				return fmt.Errorf("copying requires an output directory; pass --output-dir or set paths.output_dir")
			}
			assumeYes := assumeYesFlag || cfg.Organize.AssumeYes

			logger.Info("indexing music directory", logging.Path(musicDir))
			ix := scanLibrary(out, musicDir, verbose)
			recordScan(cmd.Context(), cfg, logger, ix)

			consistency.Check(ix, warnResolver{out: out})

			changes := organizer.BuildChanges(ix, outputDir)
			if changes.Empty() {
				fmt.Fprintln(out, "nothing to do")
				return nil
			}

			printChanges(out, changes, verbose)
			if dryRun {
				fmt.Fprintln(out, "dry run, no files were changed")
				return nil
			}
			if !assumeYes {
				if !askConfirmation(bufio.NewReader(cmd.InOrStdin()), out, "apply these changes") {
					return fmt.Errorf("aborted")
				}
			}

			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "tonearm.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another tonearm run is already applying changes")
			}
			defer lock.Unlock()

			op := organizer.OpMove
			if copyMode {
				op = organizer.OpCopy
			}
			errs := applyChanges(out, logger, changes, op, verbose)
			if len(errs) > 0 {
				for _, applyErr := range errs {
					fmt.Fprintf(out, "  %v\n", applyErr)
				}
				return fmt.Errorf("%d operation(s) failed", len(errs))
			}
			fmt.Fprintln(out, "done")
			return nil
		},
	}

	cmd.Flags().StringVarP(&musicDirFlag, "music-dir", "m", "", "Music directory to index")
	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "", "Directory the new layout is created in")
	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy files instead of moving them")
	cmd.Flags().BoolVarP(&assumeYesFlag, "yes", "y", false, "Apply changes without asking for confirmation")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show the plan without changing any files")
	cmd.Flags().CountVarP(&verbose, "verbose", "v", "Print more detail; repeat for per-file output")

	return cmd
}
