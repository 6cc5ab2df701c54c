package views

import (
	"image"

	"sticker-goblin/internal/draw"
	"sticker-goblin/internal/models"
	"sticker-goblin/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MainView is the single Sticker Goblin window. Its methods touch widgets
// directly and must run on the UI thread.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	header        *widget.Label
	sheets        *components.SheetDisplay
	result        *components.ResultPanel
	toolbar       *components.Toolbar
	statusBar     *components.StatusBar
}

// NewMainView builds the layout and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	mv := &MainView{
		window:    window,
		header:    widget.NewLabelWithStyle("Draw three sticker sheets and find the word with the most vowels", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		sheets:    components.NewSheetDisplay(models.SheetsPerDraw, draw.EmptySlotLabel),
		result:    components.NewResultPanel(),
		toolbar:   components.NewToolbar(),
		statusBar: components.NewStatusBar(),
	}

	top := container.NewVBox(mv.header, mv.sheets.GetContainer())
	bottom := container.NewVBox(mv.toolbar.GetContainer(), widget.NewSeparator(), mv.statusBar.GetContainer())

	mv.mainContainer = container.NewBorder(
		top,
		bottom,
		nil,
		nil,
		mv.result.GetContainer(),
	)
	window.SetContent(mv.mainContainer)
	return mv
}

// SetShuffleHandler sets the handler for trigger presses
func (mv *MainView) SetShuffleHandler(handler func()) {
	mv.toolbar.SetShuffleHandler(handler)
}

// ShowSlot renders one sheet slot
func (mv *MainView) ShowSlot(slot int, img image.Image, label string) {
	mv.sheets.SetSlot(slot, img, label)
}

// ShowResult replaces the report text
func (mv *MainView) ShowResult(text string) {
	mv.result.SetText(text)
}

// SetTriggerEnabled enables or disables the shuffle trigger
func (mv *MainView) SetTriggerEnabled(enabled bool) {
	mv.toolbar.SetShuffleEnabled(enabled)
}

// SetStatus updates the status bar message
func (mv *MainView) SetStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// SetCatalogInfo summarises the loaded catalog in the status bar
func (mv *MainView) SetCatalogInfo(c models.Catalog, mode models.TieMode) {
	mv.statusBar.SetCatalogInfo(c.Len(), c.StickerCount(), mode.String())
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}
