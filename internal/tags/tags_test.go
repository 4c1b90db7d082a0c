package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"

	"tonearm/internal/library"
	"tonearm/internal/testsupport"
)

func TestForPathSelection(t *testing.T) {
	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"x.mp3", ".mp3", true},
		{"x.MP3", ".mp3", true},
		{"x.m4a", ".m4a", true},
		{"x.m4b", ".m4b", true},
		{"x.m4p", ".m4p", true},
		{"x.m4v", ".m4v", true},
		{"x.flac", "", false},
		{"x", "", false},
	}
	for _, tt := range tests {
		codec, ok := ForPath(tt.path)
		if ok != tt.ok {
			t.Errorf("ForPath(%q) ok = %v, want %v", tt.path, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		found := false
		for _, ext := range codec.Extensions() {
			if ext == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("ForPath(%q) selected codec without %q", tt.path, tt.want)
		}
	}
}

func TestReadMetadataNeverFails(t *testing.T) {
	// Unknown extension.
	if m := ReadMetadata("/nonexistent/file.flac"); m != (library.Metadata{}) {
		t.Errorf("unknown extension should read as absent metadata: %+v", m)
	}
	// Missing file.
	if m := ReadMetadata("/nonexistent/file.mp3"); m != (library.Metadata{}) {
		t.Errorf("missing file should read as absent metadata: %+v", m)
	}
	// Garbage content.
	dir := t.TempDir()
	path := filepath.Join(dir, "garbage.m4a")
	if err := os.WriteFile(path, []byte("not an mp4"), 0o644); err != nil {
		t.Fatal(err)
	}
	if m := ReadMetadata(path); m != (library.Metadata{}) {
		t.Errorf("unparseable file should read as absent metadata: %+v", m)
	}
}

func TestID3RoundTrip(t *testing.T) {
	path := testsupport.TouchAudio(t, t.TempDir(), "song.mp3")

	artist := "Abba"
	title := "X"
	album := "Gold"
	track := 1
	total := 12
	err := WriteMetadata(path, Patch{
		Artist: &artist, Title: &title, Album: &album,
		Track: &track, TotalTracks: &total,
	})
	if err != nil {
		t.Fatal(err)
	}

	m := ReadMetadata(path)
	if m.Artist != "Abba" || m.Title != "X" || m.Album != "Gold" || !m.HasAlbum {
		t.Fatalf("unexpected strings after round trip: %+v", m)
	}
	if m.Track != 1 || m.TotalTracks != 12 {
		t.Fatalf("unexpected numbering after round trip: %+v", m)
	}
}

func TestID3PatchRemovesFields(t *testing.T) {
	path := testsupport.TouchAudio(t, t.TempDir(), "song.mp3")

	artist := "Someone"
	title := "Something"
	track := 4
	if err := WriteMetadata(path, Patch{Artist: &artist, Title: &title, Track: &track}); err != nil {
		t.Fatal(err)
	}

	// Empty string / zero are explicit removals; nil fields stay untouched.
	empty := ""
	zero := 0
	if err := WriteMetadata(path, Patch{Title: &empty, Track: &zero}); err != nil {
		t.Fatal(err)
	}

	m := ReadMetadata(path)
	if m.Title != "" {
		t.Errorf("title should be removed, got %q", m.Title)
	}
	if m.Track != 0 {
		t.Errorf("track should be removed, got %d", m.Track)
	}
	if m.Artist != "Someone" {
		t.Errorf("artist should be untouched, got %q", m.Artist)
	}
}

func TestWriteMetadataUnknownExtension(t *testing.T) {
	if err := WriteMetadata("x.ogg", Patch{}); err == nil {
		t.Fatal("expected error for unrecognized extension")
	}
}

func TestSplitPair(t *testing.T) {
	tests := []struct {
		text        string
		number, tot int
	}{
		{"3/12", 3, 12},
		{"3", 3, 0},
		{"", 0, 0},
		{"0/0", 0, 0},
		{"x/y", 0, 0},
		{" 7 / 10 ", 7, 10},
	}
	for _, tt := range tests {
		n, m := splitPair(tt.text)
		if n != tt.number || m != tt.tot {
			t.Errorf("splitPair(%q) = (%d, %d), want (%d, %d)", tt.text, n, m, tt.number, tt.tot)
		}
	}
}

func TestID3AlbumPresenceTracksFrameNotText(t *testing.T) {
	// A TALB frame holding an empty string is a present album with an empty
	// name, distinct from a tag that has no TALB frame at all.
	empty := testsupport.TouchAudio(t, t.TempDir(), "empty-album.mp3")
	id3, err := id3v2.Open(empty, id3v2.Options{Parse: false})
	if err != nil {
		t.Fatal(err)
	}
	id3.AddTextFrame("TALB", id3v2.EncodingUTF8, "")
	if err := id3.Save(); err != nil {
		t.Fatal(err)
	}
	if err := id3.Close(); err != nil {
		t.Fatal(err)
	}

	m := ReadMetadata(empty)
	if !m.HasAlbum || m.Album != "" {
		t.Errorf("empty album frame should read as present: %+v", m)
	}

	// No TALB frame at all reads as absent.
	absent := testsupport.TouchAudio(t, t.TempDir(), "no-album.mp3")
	artist := "Someone"
	if err := WriteMetadata(absent, Patch{Artist: &artist}); err != nil {
		t.Fatal(err)
	}
	if m := ReadMetadata(absent); m.HasAlbum {
		t.Errorf("missing album frame should read as absent: %+v", m)
	}
}
