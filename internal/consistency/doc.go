// Package consistency detects likely metadata entry errors in a built music
// index.
//
// Four independent heuristics compare sibling entities: artist names and album
// names that differ only by casing, and albums whose songs disagree on the
// total-tracks or total-discs count. Each check hands every candidate conflict
// to an injected Resolver and collects the proposals it returns; nothing here
// mutates the index or the files. Applying accepted proposals is a separate,
// explicit step owned by the caller.
package consistency
