package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"tonearm/internal/consistency"
	"tonearm/internal/library"
)

// warnResolver prints each detected conflict and declines to fix it. The
// organize command uses it so inconsistencies are surfaced without touching
// any tags.
type warnResolver struct {
	out io.Writer
}

func (w warnResolver) ResolveArtists(a, b *library.Artist) (string, bool) {
	fmt.Fprintf(w.out, "warning: inconsistent artist naming: %q and %q\n", a.Name, b.Name)
	return "", false
}

func (w warnResolver) ResolveAlbums(artist *library.Artist, a, b *library.Album) (string, bool) {
	fmt.Fprintf(w.out, "warning: inconsistent album naming under %q: %q and %q\n",
		artist.Name, a.Name, b.Name)
	return "", false
}

func (w warnResolver) ResolveTotalTracks(artist *library.Artist, album *library.Album, groups []consistency.TrackTotalGroup) (int, bool) {
	fmt.Fprintf(w.out, "warning: inconsistent total track count on %q by %q: %s\n",
		album.Name, artist.Name, describeTrackGroups(groups))
	return 0, false
}

func (w warnResolver) ResolveTotalDiscs(artist *library.Artist, album *library.Album, totals []int) (int, bool) {
	fmt.Fprintf(w.out, "warning: inconsistent total disc count on %q by %q: %s\n",
		album.Name, artist.Name, describeTotals(totals))
	return 0, false
}

// promptResolver asks the user what to do about each conflict through a
// numbered option list. Option zero always leaves the conflict alone. All
// prompts read from one shared buffered reader so answers piped ahead of the
// next prompt are not lost.
type promptResolver struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptResolver(in io.Reader, out io.Writer) promptResolver {
	return promptResolver{in: bufio.NewReader(in), out: out}
}

func (p promptResolver) ResolveArtists(a, b *library.Artist) (string, bool) {
	fmt.Fprintf(p.out, "inconsistent artist naming: %q and %q\n", a.Name, b.Name)
	return p.pickName(a.Name, b.Name)
}

func (p promptResolver) ResolveAlbums(artist *library.Artist, a, b *library.Album) (string, bool) {
	fmt.Fprintf(p.out, "inconsistent album naming under %q: %q and %q\n",
		artist.Name, a.Name, b.Name)
	return p.pickName(a.Name, b.Name)
}

func (p promptResolver) pickName(first, second string) (string, bool) {
	options := []string{
		"skip",
		fmt.Sprintf("use %q", first),
		fmt.Sprintf("use %q", second),
		"enter a different name",
	}
	switch askOption(p.in, p.out, options) {
	case 1:
		return first, true
	case 2:
		return second, true
	case 3:
		if name := askLine(p.in, p.out, "name"); name != "" {
			return name, true
		}
	}
	return "", false
}

func (p promptResolver) ResolveTotalTracks(artist *library.Artist, album *library.Album, groups []consistency.TrackTotalGroup) (int, bool) {
	fmt.Fprintf(p.out, "inconsistent total track count on %q by %q: %s\n",
		album.Name, artist.Name, describeTrackGroups(groups))
	options := make([]string, 0, len(groups)+2)
	options = append(options, "skip")
	for _, g := range groups {
		options = append(options, describeTotal(g.Total))
	}
	options = append(options, "enter a different count")
	choice := askOption(p.in, p.out, options)
	switch {
	case choice == 0:
		return 0, false
	case choice <= len(groups):
		return groups[choice-1].Total, true
	default:
		return p.pickCount()
	}
}

func (p promptResolver) ResolveTotalDiscs(artist *library.Artist, album *library.Album, totals []int) (int, bool) {
	fmt.Fprintf(p.out, "inconsistent total disc count on %q by %q: %s\n",
		album.Name, artist.Name, describeTotals(totals))
	options := make([]string, 0, len(totals)+2)
	options = append(options, "skip")
	for _, t := range totals {
		options = append(options, describeTotal(t))
	}
	options = append(options, "enter a different count")
	choice := askOption(p.in, p.out, options)
	switch {
	case choice == 0:
		return 0, false
	case choice <= len(totals):
		return totals[choice-1], true
	default:
		return p.pickCount()
	}
}

func (p promptResolver) pickCount() (int, bool) {
	for {
		line := askLine(p.in, p.out, "count")
		if line == "" {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= 0 {
			return n, true
		}
		fmt.Fprintln(p.out, "invalid input")
	}
}

func describeTrackGroups(groups []consistency.TrackTotalGroup) string {
	s := ""
	for i, g := range groups {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d song(s) with %s", len(g.Songs), describeTotal(g.Total))
	}
	return s
}

func describeTotals(totals []int) string {
	s := ""
	for i, t := range totals {
		if i > 0 {
			s += ", "
		}
		s += describeTotal(t)
	}
	return s
}

func describeTotal(total int) string {
	if total == 0 {
		return "no total"
	}
	return fmt.Sprintf("total %d", total)
}
