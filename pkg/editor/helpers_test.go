package editor

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/dixieflatline76/Stencil/config"
	"github.com/dixieflatline76/Stencil/pkg/scene"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func dataURL(t *testing.T, w, h int) string {
	t.Helper()
	url, err := FileToDataURL(bytes.NewReader(pngBytes(t, w, h)))
	require.NoError(t, err)
	return url
}

func newTestScene() *scene.Scene {
	return NewScene(config.DefaultEditorConfig())
}

// loadedController returns a controller over an 800x400 image fit into the
// default 400x400 stencil: scale 1 at the canvas center.
func loadedController(t *testing.T) (*Controller, *Store, *scene.Scene) {
	t.Helper()
	store := NewStore()
	sc := newTestScene()
	obj := sc.SetImage(image.NewNRGBA(image.Rect(0, 0, 800, 400)))
	w, h := obj.Size()
	initial := stencil.InitialTransform(w, h, sc.Frame())
	require.Equal(t, stencil.Transform{Scale: 1, X: 300, Y: 300}, initial)
	sc.Apply(initial)

	store.SetImage("data:image/png;base64,AAAA")
	store.SetInitialTransform(initial)
	return NewController(store, sc, config.DefaultEditorConfig()), store, sc
}

func synchronous() []Option {
	run := func(fn func()) { fn() }
	return []Option{WithSpawn(run), WithPost(run)}
}

// recorder collects store changes.
type recorder struct {
	changes []Change
}

func (r *recorder) record(c Change) { r.changes = append(r.changes, c) }

func (r *recorder) kinds() []ChangeKind {
	out := make([]ChangeKind, len(r.changes))
	for i, c := range r.changes {
		out[i] = c.Kind
	}
	return out
}
