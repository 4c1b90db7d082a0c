package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrFilesystem, "organizing", "move file", "failed to move file into library", cause)

	if !errors.Is(err, ErrFilesystem) {
		t.Fatalf("expected error to match ErrFilesystem: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected error to wrap cause: %v", err)
	}
	for _, want := range []string{"organizing", "move file", "disk full"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err.Error(), want)
		}
	}
}

func TestWrapNilMarkerDefaultsTransient(t *testing.T) {
	err := Wrap(nil, "scanning", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected transient marker: %v", err)
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := Wrap(ErrValidation, "", "", "", nil)
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}
