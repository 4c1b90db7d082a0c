// Package organizer plans and applies the filesystem operations that bring a
// scanned library into the canonical Artist/Album/NN - Artist - Title layout.
//
// Planning is a pure function of a built index and an output root: it derives
// every song's destination, diffs against current locations, and emits the
// directory creations and file operations still needed. The only filesystem
// access during planning is existence probing, so an already organized library
// plans to an empty change set. Applying a plan runs directory creations
// before file operations, uses move or copy semantics uniformly, and collects
// individual failures without aborting the batch.
package organizer
