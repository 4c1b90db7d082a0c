package textutil

import "strings"

// segmentReplacer removes filesystem-unsafe characters from a path segment.
var segmentReplacer = strings.NewReplacer(
	"<", "",
	">", "",
	":", "",
	"\"", "",
	"/", "",
	"\\", "",
	"|", "",
	"?", "",
	"*", "",
)

// SanitizeSegment strips filesystem-unsafe characters from a single path
// segment. Forbidden characters are removed outright, not replaced. A leading
// or trailing dot is replaced with an underscore so the segment can never be
// hidden or read as a relative path component.
func SanitizeSegment(name string) string {
	s := segmentReplacer.Replace(name)
	if strings.HasPrefix(s, ".") {
		s = "_" + s[1:]
	}
	if strings.HasSuffix(s, ".") {
		s = s[:len(s)-1] + "_"
	}
	return s
}
