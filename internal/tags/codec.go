package tags

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"tonearm/internal/library"
	"tonearm/internal/services"
)

// Patch describes a partial metadata update. A nil field is left untouched; a
// pointer to the empty string or to zero removes the field from the file.
type Patch struct {
	Artist      *string
	AlbumArtist *string
	Album       *string
	Title       *string
	Track       *int
	TotalTracks *int
	Disc        *int
	TotalDiscs  *int
}

// Codec reads and writes the tag container of one format family.
type Codec interface {
	// Extensions lists the lowercase file extensions this codec handles,
	// including the leading dot.
	Extensions() []string
	Read(path string) (library.Metadata, error)
	Write(path string, patch Patch) error
}

var codecs = buildRegistry(&id3Codec{}, &mp4Codec{})

func buildRegistry(list ...Codec) map[string]Codec {
	registry := make(map[string]Codec)
	for _, codec := range list {
		for _, ext := range codec.Extensions() {
			registry[ext] = codec
		}
	}
	return registry
}

// ForPath selects the codec for the file's extension.
func ForPath(path string) (Codec, bool) {
	codec, ok := codecs[strings.ToLower(filepath.Ext(path))]
	return codec, ok
}

// ReadMetadata maps a file path to its metadata. It never fails: unknown
// extensions and unreadable or unparseable tags yield all-absent metadata.
func ReadMetadata(path string) library.Metadata {
	codec, ok := ForPath(path)
	if !ok {
		return library.Metadata{}
	}
	m, err := codec.Read(path)
	if err != nil {
		return library.Metadata{}
	}
	return m
}

// WriteMetadata applies the present fields of the patch to the file's tag.
func WriteMetadata(path string, patch Patch) error {
	codec, ok := ForPath(path)
	if !ok {
		return services.Wrap(services.ErrTagWrite, "tagging", "select codec", "unrecognized audio extension: "+filepath.Ext(path), nil)
	}
	if err := codec.Write(path, patch); err != nil {
		return services.Wrap(services.ErrTagWrite, "tagging", "write tag", path, err)
	}
	return nil
}

// normString NFC-normalizes a tag string so differently composed Unicode
// spellings of the same name group together.
func normString(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// normCount maps non-positive stored values to absent.
func normCount(n int) int {
	if n <= 0 {
		return 0
	}
	return n
}
