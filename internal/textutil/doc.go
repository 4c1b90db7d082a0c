// Package textutil provides text helpers for turning tag values into safe
// filesystem path segments.
//
// Sanitization removes the characters that are invalid on common filesystems
// rather than substituting placeholders, and guards leading/trailing dots so a
// tag value can never produce a hidden file or a traversal-ambiguous segment.
// Sanitize one path segment at a time, never a joined path.
package textutil
