package library

import "iter"

// ReadFunc maps a file path to its metadata. Implementations must not fail:
// on any read problem they return an all-absent Metadata so the song is
// routed to the unknown bucket instead of aborting the scan.
type ReadFunc func(path string) Metadata

// Scan returns a lazy sequence over the audio files beneath the index source
// directory, yielding each song's index and metadata. The index is mutated
// incrementally as the sequence is consumed: breaking out early leaves a
// partially built index, and draining the sequence is equivalent to Read.
func (ix *MusicIndex) Scan(read ReadFunc) iter.Seq2[int, Metadata] {
	return func(yield func(int, Metadata) bool) {
		for path := range Files(ix.SourceDir) {
			m := read(path)
			si := ix.Add(m, path)
			if !yield(si, m) {
				return
			}
		}
	}
}

// Read consumes the full scan synchronously and reports the number of songs
// indexed.
func (ix *MusicIndex) Read(read ReadFunc) int {
	count := 0
	for range ix.Scan(read) {
		count++
	}
	return count
}
