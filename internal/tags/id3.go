package tags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bogem/id3v2/v2"

	"tonearm/internal/library"
)

// id3Codec handles MP3 files through ID3v2 tags. Writes always produce
// ID3v2.4 with UTF-8 encoded frames.
type id3Codec struct{}

const (
	frameAlbumArtist = "TPE2"
	frameTrack       = "TRCK"
	frameDisc        = "TPOS"
)

func (c *id3Codec) Extensions() []string {
	return []string{".mp3"}
}

func (c *id3Codec) Read(path string) (library.Metadata, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return library.Metadata{}, err
	}
	defer tag.Close()

	track, totalTracks := splitPair(tag.GetTextFrame(frameTrack).Text)
	disc, totalDiscs := splitPair(tag.GetTextFrame(frameDisc).Text)

	// Frame presence, not text content: an explicitly empty TALB frame is a
	// present album with an empty name.
	hasAlbum := len(tag.GetFrames("TALB")) > 0
	return library.Metadata{
		Track:       track,
		TotalTracks: totalTracks,
		Disc:        disc,
		TotalDiscs:  totalDiscs,
		Artist:      normString(tag.Artist()),
		AlbumArtist: normString(tag.GetTextFrame(frameAlbumArtist).Text),
		Album:       normString(tag.Album()),
		HasAlbum:    hasAlbum,
		Title:       normString(tag.Title()),
	}, nil
}

func (c *id3Codec) Write(path string, patch Patch) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		// Files without a parseable tag get a fresh one.
		tag, err = id3v2.Open(path, id3v2.Options{Parse: false})
		if err != nil {
			return err
		}
	}
	defer tag.Close()
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	setText := func(id string, value *string, set func(string)) {
		if value == nil {
			return
		}
		if *value == "" {
			tag.DeleteFrames(id)
			return
		}
		set(*value)
	}
	setText("TPE1", patch.Artist, tag.SetArtist)
	setText("TALB", patch.Album, tag.SetAlbum)
	setText("TIT2", patch.Title, tag.SetTitle)
	setText(frameAlbumArtist, patch.AlbumArtist, func(v string) {
		tag.AddTextFrame(frameAlbumArtist, id3v2.EncodingUTF8, v)
	})

	writePair(tag, frameTrack, patch.Track, patch.TotalTracks)
	writePair(tag, frameDisc, patch.Disc, patch.TotalDiscs)

	return tag.Save()
}

// writePair merges a number/total patch into an existing "n/m" frame,
// removing the frame when both values end up absent.
func writePair(tag *id3v2.Tag, frameID string, number, total *int) {
	if number == nil && total == nil {
		return
	}
	n, m := splitPair(tag.GetTextFrame(frameID).Text)
	if number != nil {
		n = normCount(*number)
	}
	if total != nil {
		m = normCount(*total)
	}
	if n == 0 && m == 0 {
		tag.DeleteFrames(frameID)
		return
	}
	text := strconv.Itoa(n)
	if m > 0 {
		text = fmt.Sprintf("%d/%d", n, m)
	}
	tag.AddTextFrame(frameID, id3v2.EncodingUTF8, text)
}

// splitPair parses an ID3 "n" or "n/m" numeric frame. Malformed or zero
// segments read as absent.
func splitPair(text string) (int, int) {
	numberText, totalText, _ := strings.Cut(strings.TrimSpace(text), "/")
	number, _ := strconv.Atoi(strings.TrimSpace(numberText))
	total, _ := strconv.Atoi(strings.TrimSpace(totalText))
	return normCount(number), normCount(total)
}
