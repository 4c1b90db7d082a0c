package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"tonearm/internal/library"
)

// ErrNoScans is returned when the catalog holds no recorded scan.
var ErrNoScans = errors.New("catalog: no scans recorded")

// Store manages scan snapshot persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database and applies
// migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) applyMigrations(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS scans (
    id            TEXT PRIMARY KEY,
    source_dir    TEXT NOT NULL,
    created_at    TEXT NOT NULL,
    song_count    INTEGER NOT NULL,
    artist_count  INTEGER NOT NULL,
    album_count   INTEGER NOT NULL,
    unknown_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS songs (
    scan_id        TEXT NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
    position       INTEGER NOT NULL,
    path           TEXT NOT NULL,
    grouped_artist TEXT NOT NULL,
    album          TEXT NOT NULL,
    artist         TEXT NOT NULL,
    title          TEXT NOT NULL,
    track          INTEGER NOT NULL,
    total_tracks   INTEGER NOT NULL,
    disc           INTEGER NOT NULL,
    total_discs    INTEGER NOT NULL,
    PRIMARY KEY (scan_id, position)
);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply catalog schema: %w", err)
	}
	return nil
}

// SaveScan records a snapshot of the index and returns the new scan
// identifier. Earlier snapshots of the same source directory are replaced.
func (s *Store) SaveScan(ctx context.Context, ix *library.MusicIndex) (string, error) {
	scanID := uuid.NewString()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)

	albumCount := 0
	for _, artist := range ix.Artists {
		albumCount += len(artist.Albums)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin catalog tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM scans WHERE source_dir = ?`, ix.SourceDir); err != nil {
		return "", fmt.Errorf("prune previous scans: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO scans (id, source_dir, created_at, song_count, artist_count, album_count, unknown_count)
         VALUES (?, ?, ?, ?, ?, ?, ?)`,
		scanID, ix.SourceDir, createdAt,
		len(ix.Songs), len(ix.Artists), albumCount, len(ix.Unknown),
	)
	if err != nil {
		return "", fmt.Errorf("insert scan: %w", err)
	}

	groupedArtist := make([]string, len(ix.Songs))
	groupedAlbum := make([]string, len(ix.Songs))
	for _, artist := range ix.Artists {
		for _, album := range artist.Albums {
			for _, si := range album.Songs {
				groupedArtist[si] = artist.Name
				groupedAlbum[si] = album.Name
			}
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO songs (scan_id, position, path, grouped_artist, album, artist, title, track, total_tracks, disc, total_discs)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare song insert: %w", err)
	}
	defer stmt.Close()

	for si, song := range ix.Songs {
		_, err := stmt.ExecContext(ctx,
			scanID, si, song.CurrentFile,
			groupedArtist[si], groupedAlbum[si],
			song.Artist, song.Title,
			song.Track, song.TotalTracks, song.Disc, song.TotalDiscs,
		)
		if err != nil {
			return "", fmt.Errorf("insert song %d: %w", si, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit catalog tx: %w", err)
	}
	return scanID, nil
}

// ArtistCount pairs an artist name with its song count.
type ArtistCount struct {
	Name  string
	Songs int
}

// Summary describes one recorded scan.
type Summary struct {
	ScanID     string
	SourceDir  string
	CreatedAt  time.Time
	Songs      int
	Artists    int
	Albums     int
	Unknown    int
	TopArtists []ArtistCount
}

// LatestSummary returns the most recent scan snapshot, or ErrNoScans when
// the catalog is empty.
func (s *Store) LatestSummary(ctx context.Context) (*Summary, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_dir, created_at, song_count, artist_count, album_count, unknown_count
         FROM scans ORDER BY created_at DESC LIMIT 1`)

	var summary Summary
	var createdAt string
	err := row.Scan(&summary.ScanID, &summary.SourceDir, &createdAt,
		&summary.Songs, &summary.Artists, &summary.Albums, &summary.Unknown)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoScans
	}
	if err != nil {
		return nil, fmt.Errorf("read scan row: %w", err)
	}
	if summary.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parse scan timestamp: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT grouped_artist, COUNT(*) AS songs FROM songs
         WHERE scan_id = ? AND grouped_artist != ''
         GROUP BY grouped_artist ORDER BY songs DESC, grouped_artist ASC LIMIT 5`,
		summary.ScanID)
	if err != nil {
		return nil, fmt.Errorf("query top artists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ac ArtistCount
		if err := rows.Scan(&ac.Name, &ac.Songs); err != nil {
			return nil, fmt.Errorf("scan top artist row: %w", err)
		}
		summary.TopArtists = append(summary.TopArtists, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate top artists: %w", err)
	}

	return &summary, nil
}
