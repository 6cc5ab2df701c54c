package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the controller status next to catalog information
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	catalogInfo *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{
		statusLabel: widget.NewLabel("Starting..."),
		catalogInfo: widget.NewLabel("No catalog loaded"),
	}
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.catalogInfo,
	)
	return sb
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// SetCatalogInfo summarises the loaded catalog
func (sb *StatusBar) SetCatalogInfo(sheets, stickers int, tieMode string) {
	sb.catalogInfo.SetText(fmt.Sprintf("Catalog: %d sheets, %d stickers, ties: %s", sheets, stickers, tieMode))
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

// ResultPanel is the read-only multi-line report area
type ResultPanel struct {
	container *fyne.Container
	text      *widget.Label
}

// NewResultPanel creates an empty result panel
func NewResultPanel() *ResultPanel {
	rp := &ResultPanel{
		text: widget.NewLabel("Press Shuffle to draw three sticker sheets."),
	}
	rp.text.Wrapping = fyne.TextWrapWord
	rp.text.TextStyle = fyne.TextStyle{Monospace: true}

	scroll := container.NewVScroll(rp.text)
	scroll.SetMinSize(fyne.NewSize(0, 220))
	rp.container = container.NewStack(scroll)
	return rp
}

// SetText replaces the panel contents
func (rp *ResultPanel) SetText(text string) {
	rp.text.SetText(text)
}

// GetText returns the panel contents
func (rp *ResultPanel) GetText() string {
	return rp.text.Text
}

// GetContainer returns the panel container
func (rp *ResultPanel) GetContainer() *fyne.Container {
	return rp.container
}
