// Package library builds the grouped music index that planning and
// consistency checks operate on.
//
// A MusicIndex owns the flat list of scanned songs in discovery order and
// groups them into an artist/album hierarchy keyed by exact tag equality.
// Songs without a usable artist tag land in the unknown bucket. Grouping
// preserves first-seen ordering of artists and albums because that ordering is
// observable in the reorganization plan.
//
// Scanning is lazy: the index is mutated incrementally as the returned
// sequence is consumed, so a caller can report per-file progress and stop
// early with a partially built index.
package library
