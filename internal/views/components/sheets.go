package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	SlotWidth  = 280
	SlotHeight = 170
)

var (
	placeholderFill   = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	placeholderBorder = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// SheetSlot is one card in the row of drawn sheets. It shows the sheet's
// thumbnail, or a text label on a blank card when there is none.
type SheetSlot struct {
	container   *fyne.Container
	image       *canvas.Image
	label       *widget.Label
	placeholder image.Image
	hasImage    bool
}

func newSheetSlot(placeholder image.Image, label string) *SheetSlot {
	s := &SheetSlot{placeholder: placeholder}

	s.image = canvas.NewImageFromImage(placeholder)
	s.image.FillMode = canvas.ImageFillContain
	s.image.ScaleMode = canvas.ImageScaleSmooth
	s.image.SetMinSize(fyne.NewSize(SlotWidth, SlotHeight))

	s.label = widget.NewLabel(label)
	s.label.Alignment = fyne.TextAlignCenter
	s.label.TextStyle = fyne.TextStyle{Bold: true}

	s.container = container.NewStack(
		canvas.NewRectangle(color.RGBA{R: 252, G: 252, B: 252, A: 255}),
		s.image,
		container.NewCenter(s.label),
	)
	return s
}

// Set shows img, or label on the blank card when img is nil. Must run on
// the UI thread.
func (s *SheetSlot) Set(img image.Image, label string) {
	if img != nil {
		s.image.Image = img
		s.hasImage = true
		s.label.SetText("")
		s.label.Hide()
	} else {
		s.image.Image = s.placeholder
		s.hasImage = false
		s.label.SetText(label)
		s.label.Show()
	}
	s.image.Refresh()
}

// HasImage reports whether a thumbnail is showing
func (s *SheetSlot) HasImage() bool {
	return s.hasImage
}

// Label returns the fallback text currently shown
func (s *SheetSlot) Label() string {
	return s.label.Text
}

// SheetDisplay lays out the fixed row of sheet slots
type SheetDisplay struct {
	container *fyne.Container
	slots     []*SheetSlot
}

// NewSheetDisplay creates count slots labelled by emptyLabel until the
// first draw
func NewSheetDisplay(count int, emptyLabel func(slot int) string) *SheetDisplay {
	placeholder := NewPlaceholderImage(SlotWidth, SlotHeight)
	d := &SheetDisplay{slots: make([]*SheetSlot, count)}

	cards := make([]fyne.CanvasObject, count)
	for i := range d.slots {
		d.slots[i] = newSheetSlot(placeholder, emptyLabel(i))
		cards[i] = d.slots[i].container
	}
	d.container = container.NewGridWithColumns(count, cards...)
	return d
}

// SetSlot updates one slot; out of range slots are ignored
func (d *SheetDisplay) SetSlot(slot int, img image.Image, label string) {
	if slot < 0 || slot >= len(d.slots) {
		return
	}
	d.slots[slot].Set(img, label)
}

// Slot returns the slot at index i
func (d *SheetDisplay) Slot(i int) *SheetSlot {
	return d.slots[i]
}

// GetContainer returns the row container
func (d *SheetDisplay) GetContainer() *fyne.Container {
	return d.container
}

// NewPlaceholderImage draws a light gray card with a one pixel border
func NewPlaceholderImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				img.SetRGBA(x, y, placeholderBorder)
			} else {
				img.SetRGBA(x, y, placeholderFill)
			}
		}
	}
	return img
}
