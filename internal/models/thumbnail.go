package models

import (
	"image"
	"sync"
	"time"
)

// ThumbnailBounds is the box a sheet image is shrunk into for display
type ThumbnailBounds struct {
	MaxWidth  int
	MaxHeight int
}

// Fit returns the largest size not exceeding the bounds that keeps the
// aspect ratio of width x height. Images already inside the box keep their
// size; dimensions never drop below one pixel.
func (b ThumbnailBounds) Fit(width, height int) (int, int) {
	if width <= 0 || height <= 0 || b.MaxWidth <= 0 || b.MaxHeight <= 0 {
		return width, height
	}
	if width <= b.MaxWidth && height <= b.MaxHeight {
		return width, height
	}

	// Compare width/MaxWidth against height/MaxHeight without floats
	if width*b.MaxHeight >= height*b.MaxWidth {
		h := height * b.MaxWidth / width
		return b.MaxWidth, max(h, 1)
	}
	w := width * b.MaxHeight / height
	return max(w, 1), b.MaxHeight
}

// Thumbnail is a decoded, display-sized sheet image
type Thumbnail struct {
	SheetID  string
	Image    image.Image
	Width    int
	Height   int
	Source   string
	LoadTime time.Duration
}

// ThumbnailRepository caches decoded thumbnails keyed by sheet identifier
type ThumbnailRepository struct {
	mu         sync.RWMutex
	thumbnails map[string]*Thumbnail
	failures   map[string]error
}

// NewThumbnailRepository creates an empty repository
func NewThumbnailRepository() *ThumbnailRepository {
	return &ThumbnailRepository{
		thumbnails: make(map[string]*Thumbnail),
		failures:   make(map[string]error),
	}
}

// Store records a decoded thumbnail, replacing any earlier entry
func (r *ThumbnailRepository) Store(thumb *Thumbnail) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.thumbnails[thumb.SheetID] = thumb
	delete(r.failures, thumb.SheetID)
}

// MarkFailed records why a sheet has no thumbnail. Sheets may share an id;
// a thumbnail already decoded for the id is kept and false is returned.
func (r *ThumbnailRepository) MarkFailed(sheetID string, err error) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.thumbnails[sheetID]; ok {
		return false
	}
	r.failures[sheetID] = err
	return true
}

// Get returns the thumbnail for a sheet, or nil when none was decoded
func (r *ThumbnailRepository) Get(sheetID string) *Thumbnail {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.thumbnails[sheetID]
}

// Failure returns the decode error recorded for a sheet
func (r *ThumbnailRepository) Failure(sheetID string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.failures[sheetID]
}

// GetStats summarises the cache contents
func (r *ThumbnailRepository) GetStats() ThumbnailStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := ThumbnailStats{
		Loaded: len(r.thumbnails),
		Failed: len(r.failures),
	}
	for _, thumb := range r.thumbnails {
		stats.Pixels += int64(thumb.Width * thumb.Height)
		stats.TotalLoadTime += thumb.LoadTime
	}
	return stats
}

// ThumbnailStats contains statistics about the thumbnail cache
type ThumbnailStats struct {
	Loaded        int
	Failed        int
	Pixels        int64
	TotalLoadTime time.Duration
}

// Clear drops every cached thumbnail and failure
func (r *ThumbnailRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.thumbnails = make(map[string]*Thumbnail)
	r.failures = make(map[string]error)
}

// Shutdown releases all cached images
func (r *ThumbnailRepository) Shutdown() {
	r.Clear()
}
