package services

import (
	"context"
	"fmt"
	"os"

	"sticker-goblin/internal/catalog"
	"sticker-goblin/internal/debug/timing"
	"sticker-goblin/internal/logger"
	"sticker-goblin/internal/models"
)

const catalogComponent = "CatalogService"

// CatalogService reads the sticker catalog from disk
type CatalogService struct {
	opts    catalog.Options
	logger  logger.Logger
	timings *timing.Tracker
}

// NewCatalogService creates a catalog service
func NewCatalogService(opts catalog.Options, log logger.Logger, timings *timing.Tracker) *CatalogService {
	return &CatalogService{
		opts:    opts,
		logger:  log,
		timings: timings,
	}
}

// LoadFile reads, decodes and validates the catalog at path. Only file-level
// problems are errors; malformed records are logged and skipped.
func (cs *CatalogService) LoadFile(ctx context.Context, path string) (models.Catalog, error) {
	ctx = cs.timings.StartTiming(ctx, "catalog_load")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	format := catalog.FormatFromPath(path)
	records, err := catalog.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	sheets, rejected := catalog.Load(records, cs.opts)
	for _, r := range rejected {
		cs.logger.Debug(catalogComponent, "record skipped", map[string]interface{}{
			"index":  r.Index,
			"sheet":  r.Sheet,
			"reason": r.Reason,
		})
	}

	elapsed := cs.timings.EndTiming(ctx)
	cs.logger.Info(catalogComponent, "catalog loaded", map[string]interface{}{
		"path":         path,
		"format":       format.String(),
		"records":      len(records),
		"sheets":       sheets.Len(),
		"stickers":     sheets.StickerCount(),
		"skipped":      len(rejected),
		"vowel_source": cs.opts.VowelSource.String(),
		"duration_ms":  elapsed.Milliseconds(),
	})

	if !sheets.CanDraw() {
		cs.logger.Warning(catalogComponent, "catalog too small to draw", map[string]interface{}{
			"sheets":   sheets.Len(),
			"required": models.SheetsPerDraw,
		})
	}

	return sheets, nil
}
