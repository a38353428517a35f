package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Stencil/pkg/editor"
	"github.com/dixieflatline76/Stencil/pkg/scene"
)

// wheelUnitsPerScroll converts fyne scroll distance to wheel delta units, so
// one notch zooms by roughly the same step as a browser wheel tick.
const wheelUnitsPerScroll = 10

// EditorWidget shows the scene and forwards pointer input to the controller.
type EditorWidget struct {
	widget.BaseWidget

	ctrl   *editor.Controller
	scene  *scene.Scene
	raster *canvas.Raster
	size   fyne.Size // logical canvas size
}

var (
	_ desktop.Mouseable  = (*EditorWidget)(nil)
	_ desktop.Cursorable = (*EditorWidget)(nil)
	_ fyne.Draggable     = (*EditorWidget)(nil)
	_ fyne.Scrollable    = (*EditorWidget)(nil)
)

// NewEditorWidget creates the view for sc driven by ctrl.
func NewEditorWidget(ctrl *editor.Controller, sc *scene.Scene) *EditorWidget {
	w, h := sc.Size()
	ew := &EditorWidget{
		ctrl:  ctrl,
		scene: sc,
		size:  fyne.NewSize(float32(w), float32(h)),
	}
	ew.raster = canvas.NewRaster(func(int, int) image.Image { return sc.Render() })
	ew.raster.ScaleMode = canvas.ImageScaleSmooth
	ew.raster.SetMinSize(ew.size)
	ew.ExtendBaseWidget(ew)

	sc.OnRender(ew.raster.Refresh)
	return ew
}

// CreateRenderer implements fyne.Widget.
func (ew *EditorWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ew.raster)
}

// Resize keeps the controller's view scale in step with the displayed size.
func (ew *EditorWidget) Resize(size fyne.Size) {
	ew.BaseWidget.Resize(size)
	if ew.size.Width > 0 {
		ew.ctrl.SetViewScale(float64(size.Width / ew.size.Width))
	}
}

// MouseDown starts a drag when the pointer is over the image.
func (ew *EditorWidget) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	ew.ctrl.PointerDown(float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseUp ends a drag.
func (ew *EditorWidget) MouseUp(*desktop.MouseEvent) {
	ew.ctrl.PointerUp()
}

// Dragged moves the image while dragging.
func (ew *EditorWidget) Dragged(ev *fyne.DragEvent) {
	ew.ctrl.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
}

// DragEnd ends a drag that finished outside the widget.
func (ew *EditorWidget) DragEnd() {
	ew.ctrl.PointerUp()
}

// Scrolled zooms around the pointer. Scrolling up zooms in.
func (ew *EditorWidget) Scrolled(ev *fyne.ScrollEvent) {
	ew.ctrl.Wheel(-float64(ev.Scrolled.DY)*wheelUnitsPerScroll, float64(ev.Position.X), float64(ev.Position.Y))
}

// Cursor shows a crosshair while dragging.
func (ew *EditorWidget) Cursor() desktop.Cursor {
	if ew.ctrl.Dragging() {
		return desktop.CrosshairCursor
	}
	return desktop.DefaultCursor
}
