package organizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tonearm/internal/library"
	"tonearm/internal/textutil"
)

// DirCreation schedules one target directory.
type DirCreation struct {
	Path string
}

// FileOperation schedules one file to be moved or copied. Whether the
// operation moves or copies is decided at apply time, uniformly for the whole
// plan.
type FileOperation struct {
	Old string
	New string
}

// Changes is a full reorganization plan: directory creations first, then the
// file operations that depend on them.
type Changes struct {
	DirCreations   []DirCreation
	FileOperations []FileOperation
}

// Empty reports whether the plan contains no work.
func (c *Changes) Empty() bool {
	return len(c.DirCreations) == 0 && len(c.FileOperations) == 0
}

// BuildChanges computes the plan that reorganizes the indexed library under
// outputDir. It only probes the filesystem for existence, never modifies it,
// and skips operations whose destination already matches the current path, so
// planning an already organized library yields an empty plan.
func BuildChanges(ix *library.MusicIndex, outputDir string) *Changes {
	changes := &Changes{}

	if !exists(outputDir) {
		changes.DirCreations = append(changes.DirCreations, DirCreation{Path: outputDir})
	}

	for ai := range ix.Artists {
		artist := &ix.Artists[ai]
		artistDir := filepath.Join(outputDir, textutil.SanitizeSegment(artist.Name))
		if !exists(artistDir) {
			changes.DirCreations = append(changes.DirCreations, DirCreation{Path: artistDir})
		}

		for bi := range artist.Albums {
			album := &artist.Albums[bi]
			single := isSingle(ix, album)

			albumDir := artistDir
			if album.Named {
				albumDir = filepath.Join(artistDir, textutil.SanitizeSegment(album.Name))
			}
			if !single && !exists(albumDir) {
				changes.DirCreations = append(changes.DirCreations, DirCreation{Path: albumDir})
			}

			for _, si := range album.Songs {
				song := &ix.Songs[si]
				var newFile string
				if single {
					newFile = filepath.Join(artistDir, singleFileName(song))
				} else {
					newFile = filepath.Join(albumDir, albumFileName(song))
				}
				if newFile != song.CurrentFile {
					changes.FileOperations = append(changes.FileOperations, FileOperation{Old: song.CurrentFile, New: newFile})
				}
			}
		}
	}

	if len(ix.Unknown) > 0 {
		unknownDir := filepath.Join(outputDir, "unknown")
		if !exists(unknownDir) {
			changes.DirCreations = append(changes.DirCreations, DirCreation{Path: unknownDir})
		}
		for _, si := range ix.Unknown {
			song := &ix.Songs[si]
			newFile := filepath.Join(unknownDir, filepath.Base(song.CurrentFile))
			if newFile != song.CurrentFile {
				changes.FileOperations = append(changes.FileOperations, FileOperation{Old: song.CurrentFile, New: newFile})
			}
		}
	}

	return changes
}

// isSingle decides whether an album is flattened directly under the artist
// directory: albums with no name tag, an empty name, or exactly one song whose
// name reads "{title} - single" (case-insensitive).
func isSingle(ix *library.MusicIndex, album *library.Album) bool {
	if !album.Named || album.Name == "" {
		return true
	}
	if len(album.Songs) != 1 {
		return false
	}
	title := ix.Songs[album.Songs[0]].Title
	if title == "" {
		return false
	}
	return strings.EqualFold(album.Name, title+" - single")
}

// singleFileName renders "{artist} - {title}.{ext}". Missing artist or title
// render as empty segments, never as placeholders.
func singleFileName(song *library.Song) string {
	ext := filepath.Ext(song.CurrentFile)
	return textutil.SanitizeSegment(song.Artist) + " - " + textutil.SanitizeSegment(song.Title) + ext
}

// albumFileName renders "{track:02} - {artist} - {title}.{ext}" with a
// missing track number rendered as 00.
func albumFileName(song *library.Song) string {
	ext := filepath.Ext(song.CurrentFile)
	return fmt.Sprintf("%02d - %s - %s%s",
		song.Track,
		textutil.SanitizeSegment(song.Artist),
		textutil.SanitizeSegment(song.Title),
		ext,
	)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
