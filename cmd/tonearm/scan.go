package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"tonearm/internal/config"
	"tonearm/internal/library"
	"tonearm/internal/tags"
)

// scanLibrary indexes every audio file beneath musicDir, reporting progress
// on out. At verbosity 2 and above every file path is printed; otherwise a
// terminal gets a single live counter line.
func scanLibrary(out io.Writer, musicDir string, verbose int) *library.MusicIndex {
	ix := library.NewIndex(musicDir)
	live := verbose < 2 && stdoutIsTerminal()
	count := 0
	for si := range ix.Scan(tags.ReadMetadata) {
		count++
		if verbose >= 2 {
			fmt.Fprintln(out, ix.Songs[si].CurrentFile)
		} else if live {
			fmt.Fprintf(out, "\r%d files indexed", count)
		}
	}
	if live && count > 0 {
		fmt.Fprintln(out)
	} else if verbose < 2 {
		fmt.Fprintf(out, "%d files indexed\n", count)
	}
	return ix
}

// resolveMusicDir picks the flag value over the configured one and requires
// the result to be an existing directory.
func resolveMusicDir(flagValue string, cfg *config.Config) (string, error) {
	dir := strings.TrimSpace(flagValue)
	if dir == "" {
		dir = strings.TrimSpace(cfg.Paths.MusicDir)
	}
	if dir == "" {
		return "", fmt.Errorf("no music directory given; pass --music-dir or set paths.music_dir")
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", fmt.Errorf("resolve music directory: %w", err)
	}
	info, err := os.Stat(expanded)
	if err != nil {
		return "", fmt.Errorf("music directory %s: %w", expanded, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("music directory %s is not a directory", expanded)
	}
	return expanded, nil
}

// resolveOutputDir picks the flag value over the configured one and falls
// back to the music directory for an in-place reorganization. The boolean
// reports whether an output directory was given explicitly.
func resolveOutputDir(flagValue string, cfg *config.Config, musicDir string) (string, bool, error) {
	dir := strings.TrimSpace(flagValue)
	if dir == "" {
		dir = strings.TrimSpace(cfg.Paths.OutputDir)
	}
	if dir == "" {
		return musicDir, false, nil
	}
	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", false, fmt.Errorf("resolve output directory: %w", err)
	}
	return expanded, true, nil
}
