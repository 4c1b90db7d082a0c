package consistency

import (
	"sort"
	"strings"

	"tonearm/internal/library"
)

// Resolver decides what to do about one detected conflict. Each method
// returns a proposed replacement value and whether the conflict should be
// fixed; returning false leaves the conflict alone. Implementations must not
// mutate the index.
type Resolver interface {
	ResolveArtists(a, b *library.Artist) (string, bool)
	ResolveAlbums(artist *library.Artist, a, b *library.Album) (string, bool)
	ResolveTotalTracks(artist *library.Artist, album *library.Album, groups []TrackTotalGroup) (int, bool)
	ResolveTotalDiscs(artist *library.Artist, album *library.Album, totals []int) (int, bool)
}

// TrackTotalGroup is one partition of an album's songs sharing a
// total-tracks value. A zero Total means the value is absent.
type TrackTotalGroup struct {
	Total int
	Songs []*library.Song
}

// ArtistRename proposes one canonical name for a pair of artists whose names
// collide case-insensitively.
type ArtistRename struct {
	First  *library.Artist
	Second *library.Artist
	Name   string
}

// AlbumRename proposes one canonical name for a pair of albums under the same
// artist whose names collide case-insensitively.
type AlbumRename struct {
	Artist *library.Artist
	First  *library.Album
	Second *library.Album
	Name   string
}

// TrackTotalFix proposes a uniform total-tracks value for an album whose
// songs disagree.
type TrackTotalFix struct {
	Artist *library.Artist
	Album  *library.Album
	Total  int
}

// DiscTotalFix proposes a uniform total-discs value for an album whose songs
// disagree.
type DiscTotalFix struct {
	Artist *library.Artist
	Album  *library.Album
	Total  int
}

// Report collects the proposals accepted by a Resolver during one full pass.
type Report struct {
	ArtistRenames   []ArtistRename
	AlbumRenames    []AlbumRename
	TrackTotalFixes []TrackTotalFix
	DiscTotalFixes  []DiscTotalFix
}

// Empty reports whether the pass produced no accepted proposals.
func (r Report) Empty() bool {
	return len(r.ArtistRenames) == 0 &&
		len(r.AlbumRenames) == 0 &&
		len(r.TrackTotalFixes) == 0 &&
		len(r.DiscTotalFixes) == 0
}

// Check runs all four heuristics over the index in one pass.
func Check(ix *library.MusicIndex, resolver Resolver) Report {
	return Report{
		ArtistRenames:   CheckArtists(ix, resolver),
		AlbumRenames:    CheckAlbums(ix, resolver),
		TrackTotalFixes: CheckTotalTracks(ix, resolver),
		DiscTotalFixes:  CheckTotalDiscs(ix, resolver),
	}
}

// CheckArtists visits every unordered pair of distinct artists whose names
// are equal case-insensitively.
func CheckArtists(ix *library.MusicIndex, resolver Resolver) []ArtistRename {
	var renames []ArtistRename
	for i := range ix.Artists {
		for j := i + 1; j < len(ix.Artists); j++ {
			a, b := &ix.Artists[i], &ix.Artists[j]
			if !strings.EqualFold(a.Name, b.Name) {
				continue
			}
			if name, ok := resolver.ResolveArtists(a, b); ok {
				renames = append(renames, ArtistRename{First: a, Second: b, Name: name})
			}
		}
	}
	return renames
}

// CheckAlbums visits, for every artist, every unordered pair of named albums
// whose names are equal case-insensitively.
func CheckAlbums(ix *library.MusicIndex, resolver Resolver) []AlbumRename {
	var renames []AlbumRename
	for ai := range ix.Artists {
		artist := &ix.Artists[ai]
		for i := range artist.Albums {
			for j := i + 1; j < len(artist.Albums); j++ {
				a, b := &artist.Albums[i], &artist.Albums[j]
				if !a.Named || !b.Named {
					continue
				}
				if !strings.EqualFold(a.Name, b.Name) {
					continue
				}
				if name, ok := resolver.ResolveAlbums(artist, a, b); ok {
					renames = append(renames, AlbumRename{Artist: artist, First: a, Second: b, Name: name})
				}
			}
		}
	}
	return renames
}

// CheckTotalTracks partitions every album's songs by total-tracks value
// (absence is a distinct value) and reports albums with more than one group.
// Groups keep the order the values were first seen in.
func CheckTotalTracks(ix *library.MusicIndex, resolver Resolver) []TrackTotalFix {
	var fixes []TrackTotalFix
	for ai := range ix.Artists {
		artist := &ix.Artists[ai]
		for bi := range artist.Albums {
			album := &artist.Albums[bi]

			var groups []TrackTotalGroup
		songs:
			for _, si := range album.Songs {
				song := &ix.Songs[si]
				for gi := range groups {
					if groups[gi].Total == song.TotalTracks {
						groups[gi].Songs = append(groups[gi].Songs, song)
						continue songs
					}
				}
				groups = append(groups, TrackTotalGroup{Total: song.TotalTracks, Songs: []*library.Song{song}})
			}

			if len(groups) <= 1 {
				continue
			}
			if total, ok := resolver.ResolveTotalTracks(artist, album, groups); ok {
				fixes = append(fixes, TrackTotalFix{Artist: artist, Album: album, Total: total})
			}
		}
	}
	return fixes
}

// CheckTotalDiscs reports albums whose songs carry more than one distinct
// total-discs value. The resolver sees the sorted, deduplicated values with
// absence represented as zero.
func CheckTotalDiscs(ix *library.MusicIndex, resolver Resolver) []DiscTotalFix {
	var fixes []DiscTotalFix
	for ai := range ix.Artists {
		artist := &ix.Artists[ai]
		for bi := range artist.Albums {
			album := &artist.Albums[bi]

			totals := make([]int, 0, len(album.Songs))
			for _, si := range album.Songs {
				totals = append(totals, ix.Songs[si].TotalDiscs)
			}
			sort.Ints(totals)
			totals = dedupe(totals)

			if len(totals) <= 1 {
				continue
			}
			if total, ok := resolver.ResolveTotalDiscs(artist, album, totals); ok {
				fixes = append(fixes, DiscTotalFix{Artist: artist, Album: album, Total: total})
			}
		}
	}
	return fixes
}

func dedupe(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
