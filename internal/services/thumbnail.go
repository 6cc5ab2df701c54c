package services

import (
	"context"
	"fmt"
	"image"

	"sticker-goblin/internal/debug/timing"
	"sticker-goblin/internal/logger"
	"sticker-goblin/internal/models"
)

const thumbnailComponent = "ThumbnailService"

// Decoder turns an image file into a display-sized image
type Decoder interface {
	DecodeThumbnail(path string, bounds models.ThumbnailBounds) (image.Image, error)
}

// ThumbnailService decodes sheet images once and caches them by sheet id
type ThumbnailService struct {
	decoder    Decoder
	repository *models.ThumbnailRepository
	bounds     models.ThumbnailBounds
	resolve    func(ref string) string
	logger     logger.Logger
	timings    *timing.Tracker
}

// NewThumbnailService creates a thumbnail service. resolve maps catalog
// image references to file paths.
func NewThumbnailService(
	decoder Decoder,
	repo *models.ThumbnailRepository,
	bounds models.ThumbnailBounds,
	resolve func(ref string) string,
	log logger.Logger,
	timings *timing.Tracker,
) *ThumbnailService {
	return &ThumbnailService{
		decoder:    decoder,
		repository: repo,
		bounds:     bounds,
		resolve:    resolve,
		logger:     log,
		timings:    timings,
	}
}

// Preload decodes every sheet image in the catalog. A sheet whose image
// fails is recorded as failed and later shown as a text placeholder.
func (ts *ThumbnailService) Preload(ctx context.Context, c models.Catalog) error {
	for _, sheet := range c {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := ts.load(ctx, sheet); err != nil {
			fields := map[string]interface{}{
				"sheet": sheet.ID,
				"image": sheet.Image,
				"error": err.Error(),
			}
			if ts.repository.MarkFailed(sheet.ID, err) {
				ts.logger.Warning(thumbnailComponent, "sheet image unavailable, using text placeholder", fields)
			} else {
				ts.logger.Warning(thumbnailComponent, "sheet image unavailable, keeping earlier image for this id", fields)
			}
		}
	}

	stats := ts.repository.GetStats()
	ts.logger.Info(thumbnailComponent, "thumbnails preloaded", map[string]interface{}{
		"loaded":      stats.Loaded,
		"failed":      stats.Failed,
		"pixels":      stats.Pixels,
		"duration_ms": stats.TotalLoadTime.Milliseconds(),
	})
	return nil
}

func (ts *ThumbnailService) load(ctx context.Context, sheet models.StickerSheet) error {
	path := ts.resolve(sheet.Image)
	ctx = ts.timings.StartTiming(ctx, "thumbnail_decode")

	img, err := ts.decoder.DecodeThumbnail(path, ts.bounds)
	elapsed := ts.timings.EndTiming(ctx)
	if err != nil {
		return err
	}
	if img == nil {
		return fmt.Errorf("decode %s: no image returned", path)
	}

	bounds := img.Bounds()
	ts.repository.Store(&models.Thumbnail{
		SheetID:  sheet.ID,
		Image:    img,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Source:   path,
		LoadTime: elapsed,
	})

	ts.logger.Debug(thumbnailComponent, "thumbnail decoded", map[string]interface{}{
		"sheet":  sheet.ID,
		"path":   path,
		"width":  bounds.Dx(),
		"height": bounds.Dy(),
	})
	return nil
}

// Lookup returns the cached image for a sheet, or nil
func (ts *ThumbnailService) Lookup(sheetID string) image.Image {
	thumb := ts.repository.Get(sheetID)
	if thumb == nil {
		return nil
	}
	return thumb.Image
}

// Cleanup releases cached thumbnails
func (ts *ThumbnailService) Cleanup() {
	ts.repository.Shutdown()
}
