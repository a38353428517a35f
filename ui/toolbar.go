package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Stencil/pkg/editor"
	"github.com/dixieflatline76/Stencil/util/log"
)

// Toolbar holds the editor buttons. The image actions are disabled until an
// image has been fit.
type Toolbar struct {
	Open    *widget.Button
	ZoomIn  *widget.Button
	ZoomOut *widget.Button
	Reset   *widget.Button
	Clear   *widget.Button

	box *fyne.Container
}

// NewToolbar creates the buttons. onOpen shows the file picker.
func NewToolbar(intents *editor.Intents, onOpen func()) *Toolbar {
	tb := &Toolbar{
		Open:    widget.NewButtonWithIcon("Open Image", theme.FolderOpenIcon(), onOpen),
		ZoomIn:  widget.NewButtonWithIcon("", theme.ZoomInIcon(), zoomAction(intents.ZoomIn)),
		ZoomOut: widget.NewButtonWithIcon("", theme.ZoomOutIcon(), zoomAction(intents.ZoomOut)),
		Reset:   widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), intents.Reset),
		Clear:   widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), intents.Clear),
	}
	tb.Open.Importance = widget.HighImportance
	tb.box = container.NewHBox(tb.Open, widget.NewSeparator(), tb.ZoomIn, tb.ZoomOut, tb.Reset, tb.Clear)
	tb.Refresh(editor.State{})
	return tb
}

// Refresh enables the image actions only when st is editable.
func (tb *Toolbar) Refresh(st editor.State) {
	for _, b := range tb.imageActions() {
		if st.Ready() {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}

func (tb *Toolbar) imageActions() []*widget.Button {
	return []*widget.Button{tb.ZoomIn, tb.ZoomOut, tb.Reset, tb.Clear}
}

// zoomAction adapts a zoom intent to a button or menu callback. A zoom
// without an image or with a full queue is dropped.
func zoomAction(zoom func() error) func() {
	return func() {
		if err := zoom(); err != nil {
			log.Debugf("ui: zoom dropped: %v", err)
		}
	}
}

// Container returns the toolbar row.
func (tb *Toolbar) Container() *fyne.Container {
	return tb.box
}
