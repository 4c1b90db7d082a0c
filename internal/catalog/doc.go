// Package catalog persists a snapshot of the most recent library scan.
//
// The snapshot is written after a scan completes and read back by the status
// command so library statistics can be shown without rescanning. It is purely
// informational: planning always works from a fresh in-memory index and never
// consults the catalog.
package catalog
