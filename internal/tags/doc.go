// Package tags reads and writes audio file metadata behind a per-container
// codec abstraction.
//
// A codec is selected once by file extension: ID3v2 for MP3 files and the MP4
// atom family for m4a/m4b/m4p/m4v. Reads never fail at the boundary: any
// parse problem yields all-absent metadata so the scan can continue. Writes
// surface errors to the caller. Tag strings are NFC-normalized on read
// and zero track/disc counts are normalized to absent.
package tags
