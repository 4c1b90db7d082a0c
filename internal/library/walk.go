package library

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

var musicExtensions = map[string]struct{}{
	".mp3": {},
	".m4a": {},
	".m4b": {},
	".m4p": {},
	".m4v": {},
}

// IsMusicFile reports whether the path has a recognized audio extension.
func IsMusicFile(path string) bool {
	_, ok := musicExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Files walks root lazily and yields the audio files beneath it. Entries whose
// name starts with a dot are skipped along with their descendants, as are
// unreadable directory entries. The root itself is always entered.
func Files(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are never fatal to a scan.
				return nil
			}
			if path != root && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !IsMusicFile(path) {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}
