package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"tonearm/internal/catalog"
	"tonearm/internal/config"
	"tonearm/internal/library"
	"tonearm/internal/logging"
)

func catalogPath(cfg *config.Config) string {
	return filepath.Join(cfg.Paths.LogDir, "catalog.db")
}

// recordScan snapshots the index into the scan catalog. Catalog failures are
// logged and swallowed; the catalog is bookkeeping, not part of the run.
func recordScan(ctx context.Context, cfg *config.Config, logger *slog.Logger, ix *library.MusicIndex) {
	store, err := catalog.Open(catalogPath(cfg))
	if err != nil {
		logger.Warn("open scan catalog failed", logging.Error(err))
		return
	}
	defer store.Close()

	scanID, err := store.SaveScan(ctx, ix)
	if err != nil {
		logger.Warn("record scan failed", logging.Error(err))
		return
	}
	logger.Info("scan recorded",
		logging.String(logging.FieldScanID, scanID),
		logging.Int("songs", len(ix.Songs)))
}
