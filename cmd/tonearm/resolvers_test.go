package main

import (
	"bytes"
	"strings"
	"testing"

	"tonearm/internal/consistency"
	"tonearm/internal/library"
)

func TestPromptResolverArtists(t *testing.T) {
	a := &library.Artist{Name: "Foo Bar"}
	b := &library.Artist{Name: "foo bar"}

	cases := []struct {
		name     string
		input    string
		wantName string
		wantOK   bool
	}{
		{"skip", "0\n", "", false},
		{"first", "1\n", "Foo Bar", true},
		{"second", "2\n", "foo bar", true},
		{"custom", "3\nFOO BAR\n", "FOO BAR", true},
		{"custom empty skips", "3\n\n", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			r := newPromptResolver(strings.NewReader(tc.input), &out)
			name, ok := r.ResolveArtists(a, b)
			if ok != tc.wantOK || name != tc.wantName {
				t.Fatalf("ResolveArtists = (%q, %v), want (%q, %v)", name, ok, tc.wantName, tc.wantOK)
			}
		})
	}
}

func TestPromptResolverTotalTracks(t *testing.T) {
	artist := &library.Artist{Name: "Foo"}
	album := &library.Album{Name: "Bar", Named: true}
	groups := []consistency.TrackTotalGroup{
		{Total: 10, Songs: []*library.Song{{}, {}}},
		{Total: 0, Songs: []*library.Song{{}}},
	}

	var out bytes.Buffer
	r := newPromptResolver(strings.NewReader("1\n"), &out)
	total, ok := r.ResolveTotalTracks(artist, album, groups)
	if !ok || total != 10 {
		t.Fatalf("ResolveTotalTracks = (%d, %v), want (10, true)", total, ok)
	}

	r = newPromptResolver(strings.NewReader("2\n"), &out)
	total, ok = r.ResolveTotalTracks(artist, album, groups)
	if !ok || total != 0 {
		t.Fatalf("picking the absent group should propose removal, got (%d, %v)", total, ok)
	}

	r = newPromptResolver(strings.NewReader("3\n12\n"), &out)
	total, ok = r.ResolveTotalTracks(artist, album, groups)
	if !ok || total != 12 {
		t.Fatalf("custom count = (%d, %v), want (12, true)", total, ok)
	}
}

func TestWarnResolverNeverFixes(t *testing.T) {
	var out bytes.Buffer
	r := warnResolver{out: &out}

	if _, ok := r.ResolveArtists(&library.Artist{Name: "A"}, &library.Artist{Name: "a"}); ok {
		t.Fatal("warnResolver must not propose artist fixes")
	}
	if _, ok := r.ResolveTotalDiscs(&library.Artist{Name: "A"}, &library.Album{Name: "B", Named: true}, []int{0, 1}); ok {
		t.Fatal("warnResolver must not propose disc fixes")
	}
	if !strings.Contains(out.String(), "warning") {
		t.Fatalf("expected warnings in output, got %q", out.String())
	}
}

func TestPromptResolverHandlesConsecutiveConflicts(t *testing.T) {
	a := &library.Artist{Name: "Foo Bar"}
	b := &library.Artist{Name: "foo bar"}

	var out bytes.Buffer
	r := newPromptResolver(strings.NewReader("1\n2\n"), &out)

	name, ok := r.ResolveArtists(a, b)
	if !ok || name != "Foo Bar" {
		t.Fatalf("first conflict = (%q, %v), want (%q, true)", name, ok, "Foo Bar")
	}
	name, ok = r.ResolveArtists(a, b)
	if !ok || name != "foo bar" {
		t.Fatalf("second conflict lost its piped answer: (%q, %v)", name, ok)
	}
}
