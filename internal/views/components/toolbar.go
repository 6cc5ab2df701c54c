package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the shuffle trigger along the bottom of the window
type Toolbar struct {
	container     *fyne.Container
	shuffleButton *widget.Button

	shuffleHandler func()
}

// NewToolbar creates a toolbar whose trigger starts disabled
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.shuffleButton = widget.NewButton("Shuffle", func() {
		if t.shuffleHandler != nil {
			t.shuffleHandler()
		}
	})
	t.shuffleButton.Importance = widget.HighImportance
	t.shuffleButton.Disable()

	t.container = container.NewHBox(
		layout.NewSpacer(),
		t.shuffleButton,
		layout.NewSpacer(),
	)
	return t
}

// SetShuffleHandler sets the callback run when the trigger is pressed
func (t *Toolbar) SetShuffleHandler(handler func()) {
	t.shuffleHandler = handler
}

// SetShuffleEnabled enables or disables the trigger
func (t *Toolbar) SetShuffleEnabled(enabled bool) {
	if enabled {
		t.shuffleButton.Enable()
	} else {
		t.shuffleButton.Disable()
	}
}

// ShuffleEnabled reports whether the trigger accepts presses
func (t *Toolbar) ShuffleEnabled() bool {
	return !t.shuffleButton.Disabled()
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
