package tags

import (
	"os"
	"strconv"

	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"

	"tonearm/internal/library"
)

// mp4Codec handles the MP4 atom container family. Reads go through the pure
// Go tag parser; writes go through taglib so the atom layout is preserved.
type mp4Codec struct{}

const (
	propTrackTotal = "TRACKTOTAL"
	propDiscTotal  = "DISCTOTAL"
)

func (c *mp4Codec) Extensions() []string {
	return []string{".m4a", ".m4b", ".m4p", ".m4v"}
}

func (c *mp4Codec) Read(path string) (library.Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return library.Metadata{}, err
	}
	defer file.Close()

	m, err := tag.ReadFrom(file)
	if err != nil {
		return library.Metadata{}, err
	}

	track, totalTracks := m.Track()
	disc, totalDiscs := m.Disc()
	return library.Metadata{
		Track:       normCount(track),
		TotalTracks: normCount(totalTracks),
		Disc:        normCount(disc),
		TotalDiscs:  normCount(totalDiscs),
		Artist:      normString(m.Artist()),
		AlbumArtist: normString(m.AlbumArtist()),
		Album:       normString(m.Album()),
		HasAlbum:    hasAlbumAtom(m),
		Title:       normString(m.Title()),
	}, nil
}

// hasAlbumAtom reports whether the container carries an album atom at all,
// even one with empty text. The raw key keeps the \xa9 prefix in some parser
// versions and drops it in others, so both spellings are probed.
func hasAlbumAtom(m tag.Metadata) bool {
	raw := m.Raw()
	if _, ok := raw["\xa9alb"]; ok {
		return true
	}
	_, ok := raw["alb"]
	return ok
}

func (c *mp4Codec) Write(path string, patch Patch) error {
	updates := make(map[string][]string)

	setText := func(key string, value *string) {
		if value == nil {
			return
		}
		if *value == "" {
			updates[key] = nil
			return
		}
		updates[key] = []string{*value}
	}
	setText(taglib.Artist, patch.Artist)
	setText(taglib.AlbumArtist, patch.AlbumArtist)
	setText(taglib.Album, patch.Album)
	setText(taglib.Title, patch.Title)

	setCount := func(key string, value *int) {
		if value == nil {
			return
		}
		if n := normCount(*value); n > 0 {
			updates[key] = []string{strconv.Itoa(n)}
			return
		}
		updates[key] = nil
	}
	setCount(taglib.TrackNumber, patch.Track)
	setCount(propTrackTotal, patch.TotalTracks)
	setCount(taglib.DiscNumber, patch.Disc)
	setCount(propDiscTotal, patch.TotalDiscs)

	if len(updates) == 0 {
		return nil
	}
	return taglib.WriteTags(path, updates, 0)
}
