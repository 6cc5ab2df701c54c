// Package draw picks three sticker sheets and finds the word with the most
// vowels among their stickers.
package draw

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"sticker-goblin/internal/models"
)

// ErrInsufficientData is returned when the catalog holds fewer sheets than
// one draw needs
var ErrInsufficientData = errors.New("not enough sticker sheets to draw")

// Engine performs draws against a catalog. It holds no catalog state; the
// random source is its only dependency, so a seeded source makes every
// draw reproducible. An Engine is not safe for concurrent use.
type Engine struct {
	rng  *rand.Rand
	mode models.TieMode
}

// NewEngine creates an engine using rng for sampling and tie-breaking
func NewEngine(rng *rand.Rand, mode models.TieMode) *Engine {
	return &Engine{rng: rng, mode: mode}
}

// NewSeededEngine creates an engine with a deterministic PCG source
func NewSeededEngine(seed uint64, mode models.TieMode) *Engine {
	return NewEngine(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), mode)
}

// Mode returns the tie-handling mode
func (e *Engine) Mode() models.TieMode {
	return e.mode
}

// Draw samples three distinct sheets and evaluates their stickers
func (e *Engine) Draw(catalog models.Catalog) (*models.DrawResult, error) {
	if !catalog.CanDraw() {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrInsufficientData, catalog.Len(), models.SheetsPerDraw)
	}

	result := Evaluate(e.Sample(catalog, models.SheetsPerDraw))
	result.Mode = e.mode

	if e.mode == models.TieRandom && len(result.Winners) > 1 {
		pick := result.Winners[e.rng.IntN(len(result.Winners))]
		result.Winners = []models.PoolEntry{pick}
	}

	return result, nil
}

// Sample returns min(n, len(catalog)) distinct sheets in random order.
// Every subset of that size is equally likely.
func (e *Engine) Sample(catalog models.Catalog, n int) []models.StickerSheet {
	n = min(n, len(catalog))
	if n <= 0 {
		return nil
	}

	indices := make([]int, len(catalog))
	for i := range indices {
		indices[i] = i
	}

	// Partial Fisher-Yates: only the first n positions are shuffled
	sheets := make([]models.StickerSheet, n)
	for i := 0; i < n; i++ {
		j := i + e.rng.IntN(len(indices)-i)
		indices[i], indices[j] = indices[j], indices[i]
		sheets[i] = catalog[indices[i]]
	}

	return sheets
}

// Evaluate flattens the stickers of sheets in sheet-then-sticker order and
// collects every entry sharing the highest vowel count. An empty pool has
// no winners.
func Evaluate(sheets []models.StickerSheet) *models.DrawResult {
	result := &models.DrawResult{
		Sheets: sheets,
		Mode:   models.TieReport,
	}

	for _, sheet := range sheets {
		for _, sticker := range sheet.Stickers {
			result.Pool = append(result.Pool, models.PoolEntry{
				Word:   sticker.Word,
				Vowels: sticker.Vowels,
				Sheet:  sheet.ID,
			})
		}
	}

	if len(result.Pool) == 0 {
		return result
	}

	result.MaxVowels = result.Pool[0].Vowels
	for _, entry := range result.Pool[1:] {
		result.MaxVowels = max(result.MaxVowels, entry.Vowels)
	}

	for _, entry := range result.Pool {
		if entry.Vowels == result.MaxVowels {
			result.Winners = append(result.Winners, entry)
		}
	}
	result.TiedCount = len(result.Winners)

	return result
}
