package controllers

import (
	"context"
	"fmt"
	"image"
	"time"

	"sticker-goblin/internal/debug/timing"
	"sticker-goblin/internal/draw"
	"sticker-goblin/internal/logger"
	"sticker-goblin/internal/models"

	"github.com/google/uuid"
)

const component = "DrawController"

// State is the phase of the interactive draw flow
type State int

const (
	StateIdle State = iota
	StateAnimating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnimating:
		return "animating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Scheduler runs fn on the UI thread once d has elapsed
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// View is the rendering surface the controller drives
type View interface {
	ShowSlot(slot int, img image.Image, label string)
	ShowResult(text string)
	SetTriggerEnabled(enabled bool)
	SetStatus(status string)
}

// Thumbnails resolves a sheet id to its decoded image, or nil
type Thumbnails interface {
	Lookup(sheetID string) image.Image
}

// Options tunes the shuffle animation
type Options struct {
	Frames      int
	Delay       time.Duration
	CatalogPath string
}

// DrawController owns the Idle/Animating state machine. Every method must
// be called on the UI thread; the scheduler guarantees ticks never overlap,
// so no locking is needed.
type DrawController struct {
	catalog   models.Catalog
	loadErr   error
	engine    *draw.Engine
	thumbs    Thumbnails
	scheduler Scheduler
	opts      Options
	logger    logger.Logger
	timings   *timing.Tracker

	view  View
	state State
	draws int
}

// NewDrawController creates a controller. loadErr is the catalog load
// failure, if any; the trigger then stays disabled.
func NewDrawController(
	catalog models.Catalog,
	loadErr error,
	engine *draw.Engine,
	thumbs Thumbnails,
	scheduler Scheduler,
	opts Options,
	log logger.Logger,
	timings *timing.Tracker,
) *DrawController {
	return &DrawController{
		catalog:   catalog,
		loadErr:   loadErr,
		engine:    engine,
		thumbs:    thumbs,
		scheduler: scheduler,
		opts:      opts,
		logger:    log,
		timings:   timings,
		state:     StateIdle,
	}
}

// SetView attaches the view the controller renders into
func (dc *DrawController) SetView(view View) {
	dc.view = view
}

// State returns the current phase
func (dc *DrawController) State() State {
	return dc.state
}

// Draws returns how many draws completed
func (dc *DrawController) Draws() int {
	return dc.draws
}

// CanPress reports whether a press would start a draw
func (dc *DrawController) CanPress() bool {
	return dc.loadErr == nil && dc.state == StateIdle && dc.catalog.CanDraw()
}

// Start renders the initial screen: placeholder sheets, and either a ready
// trigger or the reason drawing is unavailable
func (dc *DrawController) Start() {
	if dc.loadErr != nil {
		dc.view.ShowResult(fmt.Sprintf("Failed to load %s:\n%v", dc.opts.CatalogPath, dc.loadErr))
		dc.showSheets(nil)
		dc.view.SetTriggerEnabled(false)
		dc.view.SetStatus("Catalog unavailable")
		dc.logger.Error(component, dc.loadErr, map[string]interface{}{"path": dc.opts.CatalogPath})
		return
	}

	dc.showSheets(dc.engine.Sample(dc.catalog, models.SheetsPerDraw))

	if !dc.catalog.CanDraw() {
		dc.view.SetTriggerEnabled(false)
		dc.view.SetStatus(fmt.Sprintf("Need at least %d sticker sheets (have %d)", models.SheetsPerDraw, dc.catalog.Len()))
		return
	}

	dc.view.SetTriggerEnabled(true)
	dc.view.SetStatus(fmt.Sprintf("Ready: %d sheets loaded", dc.catalog.Len()))
}

// Press starts the shuffle animation. It is ignored, returning false, while
// an animation runs or when the catalog cannot support a draw.
func (dc *DrawController) Press() bool {
	if !dc.CanPress() {
		dc.logger.Debug(component, "press ignored", map[string]interface{}{
			"state":  dc.state.String(),
			"sheets": dc.catalog.Len(),
		})
		return false
	}

	dc.state = StateAnimating
	dc.view.SetTriggerEnabled(false)
	dc.view.SetStatus("Shuffling...")
	dc.tick(0)
	return true
}

func (dc *DrawController) tick(frame int) {
	if frame >= dc.opts.Frames {
		dc.finish()
		return
	}

	dc.showSheets(dc.engine.Sample(dc.catalog, models.SheetsPerDraw))
	dc.scheduler.AfterFunc(dc.opts.Delay, func() {
		dc.tick(frame + 1)
	})
}

func (dc *DrawController) finish() {
	drawID := uuid.NewString()
	ctx := dc.timings.StartTiming(context.Background(), "draw")

	result, err := dc.engine.Draw(dc.catalog)
	elapsed := dc.timings.EndTiming(ctx)

	dc.state = StateIdle
	dc.view.SetTriggerEnabled(true)

	if err != nil {
		dc.logger.Error(component, err, map[string]interface{}{"draw_id": drawID})
		dc.view.ShowResult(err.Error())
		dc.view.SetStatus("Draw failed")
		return
	}

	dc.draws++
	dc.showSheets(result.Sheets)
	dc.view.ShowResult(draw.Report(result))
	dc.view.SetStatus(fmt.Sprintf("Draw %d complete", dc.draws))

	winners := make([]string, len(result.Winners))
	for i, w := range result.Winners {
		winners[i] = w.Word
	}
	dc.logger.Info(component, "draw complete", map[string]interface{}{
		"draw_id":     drawID,
		"sheets":      result.SheetIDs(),
		"pool_size":   len(result.Pool),
		"max_vowels":  result.MaxVowels,
		"winners":     winners,
		"tied":        result.Tied(),
		"tie_mode":    result.Mode.String(),
		"duration_us": elapsed.Microseconds(),
	})
}

// showSheets fills the three slots, falling back to a text label for
// sheets without a decoded image and for empty slots
func (dc *DrawController) showSheets(sheets []models.StickerSheet) {
	for slot := 0; slot < models.SheetsPerDraw; slot++ {
		if slot >= len(sheets) {
			dc.view.ShowSlot(slot, nil, draw.EmptySlotLabel(slot))
			continue
		}

		sheet := sheets[slot]
		var img image.Image
		if dc.thumbs != nil {
			img = dc.thumbs.Lookup(sheet.ID)
		}
		if img != nil {
			dc.view.ShowSlot(slot, img, "")
		} else {
			dc.view.ShowSlot(slot, nil, draw.SlotLabel(sheet.ID))
		}
	}
}
