package library

import (
	"testing"
)

func TestAddGroupsByAlbumArtistFirst(t *testing.T) {
	ix := NewIndex("/music")
	ix.Add(Metadata{AlbumArtist: "X", Artist: "Y", Album: "A", HasAlbum: true, Title: "t"}, "/music/a.mp3")

	if len(ix.Artists) != 1 || ix.Artists[0].Name != "X" {
		t.Fatalf("expected grouping under album artist X, got %+v", ix.Artists)
	}
	if len(ix.Unknown) != 0 {
		t.Fatalf("unexpected unknown songs: %v", ix.Unknown)
	}
}

func TestAddWithoutAnyArtistGoesToUnknown(t *testing.T) {
	ix := NewIndex("/music")
	si := ix.Add(Metadata{Title: "mystery"}, "/music/m.mp3")

	if len(ix.Artists) != 0 {
		t.Fatalf("expected no artists, got %+v", ix.Artists)
	}
	if len(ix.Unknown) != 1 || ix.Unknown[0] != si {
		t.Fatalf("expected unknown = [%d], got %v", si, ix.Unknown)
	}
}

func TestAddPreservesFirstSeenOrder(t *testing.T) {
	ix := NewIndex("/music")
	ix.Add(Metadata{Artist: "B", Album: "2", HasAlbum: true}, "/music/1.mp3")
	ix.Add(Metadata{Artist: "A", Album: "1", HasAlbum: true}, "/music/2.mp3")
	ix.Add(Metadata{Artist: "B", Album: "1", HasAlbum: true}, "/music/3.mp3")
	ix.Add(Metadata{Artist: "B", Album: "2", HasAlbum: true}, "/music/4.mp3")

	if got := []string{ix.Artists[0].Name, ix.Artists[1].Name}; got[0] != "B" || got[1] != "A" {
		t.Fatalf("artist order = %v, want [B A]", got)
	}
	albums := ix.Artists[0].Albums
	if len(albums) != 2 || albums[0].Name != "2" || albums[1].Name != "1" {
		t.Fatalf("album order under B = %+v, want [2 1]", albums)
	}
	if len(albums[0].Songs) != 2 {
		t.Fatalf("album 2 songs = %v", albums[0].Songs)
	}
}

func TestAddExactNameEqualityNotCaseFolded(t *testing.T) {
	ix := NewIndex("/music")
	ix.Add(Metadata{Artist: "abba", Album: "Gold", HasAlbum: true}, "/music/1.mp3")
	ix.Add(Metadata{Artist: "Abba", Album: "Gold", HasAlbum: true}, "/music/2.mp3")
	ix.Add(Metadata{Artist: "abba", Album: "gold", HasAlbum: true}, "/music/3.mp3")

	if len(ix.Artists) != 2 {
		t.Fatalf("differently cased artists must not merge: %+v", ix.Artists)
	}
	if len(ix.Artists[0].Albums) != 2 {
		t.Fatalf("differently cased albums must not merge: %+v", ix.Artists[0].Albums)
	}
}

func TestAddDistinguishesAbsentAndEmptyAlbum(t *testing.T) {
	ix := NewIndex("/music")
	ix.Add(Metadata{Artist: "A"}, "/music/1.mp3")
	ix.Add(Metadata{Artist: "A", Album: "", HasAlbum: true}, "/music/2.mp3")

	if len(ix.Artists[0].Albums) != 2 {
		t.Fatalf("absent and empty album tags must group separately: %+v", ix.Artists[0].Albums)
	}
	if ix.Artists[0].Albums[0].Named || !ix.Artists[0].Albums[1].Named {
		t.Fatalf("album presence flags wrong: %+v", ix.Artists[0].Albums)
	}
}

func TestIndexReferencesAreValid(t *testing.T) {
	ix := NewIndex("/music")
	ix.Add(Metadata{Artist: "A", Album: "1", HasAlbum: true}, "/music/1.mp3")
	ix.Add(Metadata{}, "/music/2.mp3")
	ix.Add(Metadata{AlbumArtist: "B"}, "/music/3.mp3")

	check := func(si int) {
		if si < 0 || si >= len(ix.Songs) {
			t.Fatalf("song index %d out of range [0, %d)", si, len(ix.Songs))
		}
	}
	for _, ar := range ix.Artists {
		for _, al := range ar.Albums {
			for _, si := range al.Songs {
				check(si)
			}
		}
	}
	for _, si := range ix.Unknown {
		check(si)
	}
}
