package organizer

import (
	"path/filepath"
	"strings"
	"testing"

	"tonearm/internal/library"
	"tonearm/internal/testsupport"
)

func touch(t *testing.T, path string) {
	t.Helper()
	testsupport.WriteFile(t, path, []byte("x"))
}

func TestBuildChangesAlbumLayout(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "library")
	a := filepath.Join(src, "a.mp3")
	b := filepath.Join(src, "b.mp3")
	touch(t, a)
	touch(t, b)

	ix := library.NewIndex(src)
	ix.Add(library.Metadata{Artist: "Abba", Album: "Gold", HasAlbum: true, Track: 1, Title: "X"}, a)
	ix.Add(library.Metadata{Artist: "Abba", Album: "Gold", HasAlbum: true, Track: 2, Title: "Y"}, b)

	changes := BuildChanges(ix, out)

	wantDirs := []string{
		out,
		filepath.Join(out, "Abba"),
		filepath.Join(out, "Abba", "Gold"),
	}
	if len(changes.DirCreations) != len(wantDirs) {
		t.Fatalf("dir creations = %+v, want %v", changes.DirCreations, wantDirs)
	}
	for i, want := range wantDirs {
		if changes.DirCreations[i].Path != want {
			t.Errorf("dir[%d] = %q, want %q", i, changes.DirCreations[i].Path, want)
		}
	}

	wantFiles := []FileOperation{
		{Old: a, New: filepath.Join(out, "Abba", "Gold", "01 - Abba - X.mp3")},
		{Old: b, New: filepath.Join(out, "Abba", "Gold", "02 - Abba - Y.mp3")},
	}
	if len(changes.FileOperations) != len(wantFiles) {
		t.Fatalf("file operations = %+v", changes.FileOperations)
	}
	for i, want := range wantFiles {
		if changes.FileOperations[i] != want {
			t.Errorf("file[%d] = %+v, want %+v", i, changes.FileOperations[i], want)
		}
	}
}

func TestBuildChangesSingleDetection(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "library")
	path := filepath.Join(src, "s.mp3")
	touch(t, path)

	ix := library.NewIndex(src)
	ix.Add(library.Metadata{Artist: "Abba", Album: "X - Single", HasAlbum: true, Track: 1, Title: "X"}, path)

	changes := BuildChanges(ix, out)

	// Only the output root and the artist directory; no album directory.
	// Compare paths relative to out: absolute temp paths contain the test
	// name and would match any substring probe.
	for _, d := range changes.DirCreations {
		rel, err := filepath.Rel(out, d.Path)
		if err != nil {
			t.Fatalf("rel %q: %v", d.Path, err)
		}
		if rel != "." && rel != "Abba" {
			t.Errorf("single must not get an album directory: %q", rel)
		}
	}
	want := filepath.Join(out, "Abba", "Abba - X.mp3")
	if len(changes.FileOperations) != 1 || changes.FileOperations[0].New != want {
		t.Fatalf("file operations = %+v, want destination %q", changes.FileOperations, want)
	}
}

func TestBuildChangesSingleRules(t *testing.T) {
	tests := []struct {
		name   string
		meta   []library.Metadata
		single bool
	}{
		{
			name:   "absent album",
			meta:   []library.Metadata{{Artist: "A", Title: "t"}},
			single: true,
		},
		{
			name:   "empty album name",
			meta:   []library.Metadata{{Artist: "A", Album: "", HasAlbum: true, Title: "t"}},
			single: true,
		},
		{
			name: "title single with album mate",
			meta: []library.Metadata{
				{Artist: "A", Album: "t - single", HasAlbum: true, Title: "t"},
				{Artist: "A", Album: "t - single", HasAlbum: true, Title: "u"},
			},
			single: false,
		},
		{
			name:   "regular album",
			meta:   []library.Metadata{{Artist: "A", Album: "Real", HasAlbum: true, Title: "t"}},
			single: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := t.TempDir()
			ix := library.NewIndex(src)
			for i, m := range tt.meta {
				p := filepath.Join(src, string(rune('a'+i))+".mp3")
				touch(t, p)
				ix.Add(m, p)
			}
			album := &ix.Artists[0].Albums[0]
			if got := isSingle(ix, album); got != tt.single {
				t.Errorf("isSingle = %v, want %v", got, tt.single)
			}
		})
	}
}

func TestBuildChangesMissingTrackRendersZeroes(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "library")
	path := filepath.Join(src, "a.mp3")
	touch(t, path)

	ix := library.NewIndex(src)
	ix.Add(library.Metadata{Artist: "A", Album: "Basement Tapes", HasAlbum: true, Title: "t"}, path)

	changes := BuildChanges(ix, out)
	if len(changes.FileOperations) != 1 {
		t.Fatalf("file operations = %+v", changes.FileOperations)
	}
	if base := filepath.Base(changes.FileOperations[0].New); !strings.HasPrefix(base, "00 - ") {
		t.Errorf("missing track should render 00 prefix, got %q", base)
	}
}

func TestBuildChangesMissingArtistAndTitleRenderEmpty(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "library")
	path := filepath.Join(src, "a.mp3")
	touch(t, path)

	ix := library.NewIndex(src)
	ix.Add(library.Metadata{AlbumArtist: "Various", Album: "Mix", HasAlbum: true, Track: 3}, path)

	changes := BuildChanges(ix, out)
	want := "03 -  - .mp3"
	if base := filepath.Base(changes.FileOperations[0].New); base != want {
		t.Errorf("destination name = %q, want %q", base, want)
	}
}

func TestBuildChangesSanitizesSegments(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "library")
	path := filepath.Join(src, "a.mp3")
	touch(t, path)

	ix := library.NewIndex(src)
	ix.Add(library.Metadata{Artist: "AC/DC", Album: "Back?", HasAlbum: true, Track: 1, Title: "T.N.T."}, path)

	changes := BuildChanges(ix, out)
	var gotDirs []string
	for _, d := range changes.DirCreations {
		gotDirs = append(gotDirs, d.Path)
	}
	wantAlbumDir := filepath.Join(out, "ACDC", "Back")
	if gotDirs[len(gotDirs)-1] != wantAlbumDir {
		t.Errorf("album dir = %q, want %q", gotDirs[len(gotDirs)-1], wantAlbumDir)
	}
	wantName := "01 - ACDC - T.N.T_.mp3"
	if base := filepath.Base(changes.FileOperations[0].New); base != wantName {
		t.Errorf("file name = %q, want %q", base, wantName)
	}
}

func TestBuildChangesUnknownBucket(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "library")
	path := filepath.Join(src, "mystery.mp3")
	touch(t, path)

	ix := library.NewIndex(src)
	ix.Add(library.Metadata{Title: "no artist"}, path)

	changes := BuildChanges(ix, out)
	unknownDir := filepath.Join(out, "unknown")
	foundDir := false
	for _, d := range changes.DirCreations {
		if d.Path == unknownDir {
			foundDir = true
		}
	}
	if !foundDir {
		t.Error("unknown directory not scheduled")
	}
	want := filepath.Join(unknownDir, "mystery.mp3")
	if len(changes.FileOperations) != 1 || changes.FileOperations[0].New != want {
		t.Fatalf("file operations = %+v, want destination %q", changes.FileOperations, want)
	}
}

func TestBuildChangesIdempotent(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "library")
	a := filepath.Join(src, "a.mp3")
	b := filepath.Join(src, "b.mp3")
	touch(t, a)
	touch(t, b)

	ix := library.NewIndex(src)
	ix.Add(library.Metadata{Artist: "Abba", Album: "Gold", HasAlbum: true, Track: 1, Title: "X"}, a)
	ix.Add(library.Metadata{Artist: "Abba", Album: "Gold", HasAlbum: true, Track: 2, Title: "Y"}, b)

	first := BuildChanges(ix, out)
	if errs := first.Apply(OpMove); len(errs) != 0 {
		t.Fatalf("apply errors: %v", errs)
	}

	// rebuild the index against the organized layout
	ix2 := library.NewIndex(out)
	ix2.Add(library.Metadata{Artist: "Abba", Album: "Gold", HasAlbum: true, Track: 1, Title: "X"},
		filepath.Join(out, "Abba", "Gold", "01 - Abba - X.mp3"))
	ix2.Add(library.Metadata{Artist: "Abba", Album: "Gold", HasAlbum: true, Track: 2, Title: "Y"},
		filepath.Join(out, "Abba", "Gold", "02 - Abba - Y.mp3"))

	second := BuildChanges(ix2, out)
	if !second.Empty() {
		t.Fatalf("second plan should be empty, got %+v", second)
	}
}
