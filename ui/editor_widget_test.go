package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/dixieflatline76/Stencil/config"
	"github.com/dixieflatline76/Stencil/pkg/editor"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// newLoadedEditor returns a synchronous editor with an 800x400 image fit.
func newLoadedEditor(t *testing.T) *editor.Editor {
	t.Helper()
	run := func(fn func()) { fn() }
	ed := editor.New(config.DefaultEditorConfig(), editor.WithSpawn(run), editor.WithPost(run))
	t.Cleanup(ed.Close)

	url, err := editor.FileToDataURL(bytes.NewReader(pngBytes(t, 800, 400)))
	require.NoError(t, err)
	ed.Store.SetImage(url)
	require.True(t, ed.Store.State().Ready())
	return ed
}

func TestEditorWidget(t *testing.T) {
	test.NewTempApp(t)

	t.Run("Minimum size is the canvas", func(t *testing.T) {
		ed := newLoadedEditor(t)
		ew := NewEditorWidget(ed.Controller, ed.Scene)
		assert.Equal(t, fyne.NewSize(600, 600), ew.MinSize())
	})

	t.Run("Drag pans and commits on release", func(t *testing.T) {
		ed := newLoadedEditor(t)
		ew := NewEditorWidget(ed.Controller, ed.Scene)
		w := test.NewWindow(ew)
		defer w.Close()
		ew.Resize(fyne.NewSize(600, 600))

		ew.MouseDown(&desktop.MouseEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(300, 300)},
			Button:     desktop.MouseButtonPrimary,
		})
		assert.Equal(t, desktop.CrosshairCursor, ew.Cursor())
		ew.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(350, 300)}})
		assert.Equal(t, 300.0, ed.Store.State().Current.X)

		ew.DragEnd()
		ew.MouseUp(&desktop.MouseEvent{})
		assert.Equal(t, stencil.Transform{Scale: 1, X: 350, Y: 300}, *ed.Store.State().Current)
		assert.Equal(t, desktop.DefaultCursor, ew.Cursor())
	})

	t.Run("Secondary button does not drag", func(t *testing.T) {
		ed := newLoadedEditor(t)
		ew := NewEditorWidget(ed.Controller, ed.Scene)
		ew.MouseDown(&desktop.MouseEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(300, 300)},
			Button:     desktop.MouseButtonSecondary,
		})
		assert.False(t, ed.Controller.Dragging())
	})

	t.Run("Scrolling up zooms in around the pointer", func(t *testing.T) {
		ed := newLoadedEditor(t)
		ew := NewEditorWidget(ed.Controller, ed.Scene)
		ew.Scrolled(&fyne.ScrollEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(300, 300)},
			Scrolled:   fyne.NewDelta(0, 10),
		})
		cur := ed.Store.State().Current
		assert.Greater(t, cur.Scale, 1.0)
		assert.InDelta(t, 300.0, cur.X, 1e-9)
		assert.InDelta(t, 300.0, cur.Y, 1e-9)
	})

	t.Run("Resize updates the view scale", func(t *testing.T) {
		ed := newLoadedEditor(t)
		ew := NewEditorWidget(ed.Controller, ed.Scene)
		ew.Resize(fyne.NewSize(300, 300))
		assert.Equal(t, 0.5, ed.Controller.ViewScale())
	})
}

func TestToolbar(t *testing.T) {
	test.NewTempApp(t)
	ed := newLoadedEditor(t)

	opened := 0
	tb := NewToolbar(ed.Intents, func() { opened++ })
	for _, b := range tb.imageActions() {
		assert.True(t, b.Disabled(), "image actions start disabled")
	}
	assert.False(t, tb.Open.Disabled())

	test.Tap(tb.Open)
	assert.Equal(t, 1, opened)

	tb.Refresh(ed.Store.State())
	for _, b := range tb.imageActions() {
		assert.False(t, b.Disabled())
	}

	ed.Store.SetTransform(stencil.Transform{Scale: 2, X: 300, Y: 300}, editor.OriginController)
	test.Tap(tb.Reset)
	assert.Equal(t, 1.0, ed.Store.State().Current.Scale)

	test.Tap(tb.Clear)
	assert.False(t, ed.Store.State().HasImage())
	tb.Refresh(ed.Store.State())
	for _, b := range tb.imageActions() {
		assert.True(t, b.Disabled())
	}
}
