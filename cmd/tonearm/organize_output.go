package main

import (
	"fmt"
	"io"
	"log/slog"

	"tonearm/internal/logging"
	"tonearm/internal/organizer"
)

// printChanges previews a plan. The default output is a short summary;
// verbose output renders the full plan as tables.
func printChanges(out io.Writer, changes *organizer.Changes, verbose int) {
	if verbose < 1 {
		fmt.Fprintf(out, "%d directories to create, %d files to relocate\n",
			len(changes.DirCreations), len(changes.FileOperations))
		return
	}

	if len(changes.DirCreations) > 0 {
		rows := make([][]string, 0, len(changes.DirCreations))
		for _, d := range changes.DirCreations {
			rows = append(rows, []string{d.Path})
		}
		fmt.Fprintln(out, renderTable([]string{"Create Directory"}, rows))
	}
	if len(changes.FileOperations) > 0 {
		rows := make([][]string, 0, len(changes.FileOperations))
		for _, f := range changes.FileOperations {
			rows = append(rows, []string{f.Old, f.New})
		}
		fmt.Fprintln(out, renderTable([]string{"From", "To"}, rows))
	}
}

// applyChanges executes the plan, printing progress and collecting every
// failure so one bad file never stops the rest of the run.
func applyChanges(out io.Writer, logger *slog.Logger, changes *organizer.Changes, op organizer.FileOp, verbose int) []error {
	var errs []error
	for d, err := range changes.DirCreationSteps() {
		if verbose >= 1 {
			fmt.Fprintf(out, "mkdir %s\n", d.Path)
		}
		if err != nil {
			logger.Error("directory creation failed", logging.Path(d.Path), logging.Error(err))
			errs = append(errs, err)
		}
	}
	verb := op.String()
	for f, err := range changes.FileOperationSteps(op) {
		if verbose >= 1 {
			fmt.Fprintf(out, "%s %s -> %s\n", verb, f.Old, f.New)
		}
		if err != nil {
			logger.Error("file operation failed",
				logging.String("op", verb),
				logging.Path(f.Old),
				logging.Error(err))
			errs = append(errs, err)
		}
	}
	return errs
}
