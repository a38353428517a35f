package scene

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

// createSplitImage returns a w x h image, red on the left half and blue on the right.
func createSplitImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, image.Rect(0, 0, w/2, h), &image.Uniform{red}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(w/2, 0, w, h), &image.Uniform{blue}, image.Point{}, draw.Src)
	return img
}

func newTestScene() *Scene {
	return New(600, 600, stencil.Centered(600, 600, 400, 400, 20), DefaultOptions())
}

func assertColor(t *testing.T, img image.Image, x, y int, want color.NRGBA) {
	t.Helper()
	got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	assert.InDelta(t, want.R, got.R, 2, "red at %d,%d", x, y)
	assert.InDelta(t, want.G, got.G, 2, "green at %d,%d", x, y)
	assert.InDelta(t, want.B, got.B, 2, "blue at %d,%d", x, y)
}

func TestScene_ImageLifecycle(t *testing.T) {
	s := newTestScene()
	assert.Nil(t, s.Image())
	assert.False(t, s.HitTest(300, 300))
	assert.False(t, s.Apply(stencil.Transform{Scale: 1, X: 300, Y: 300}))

	obj := s.SetImage(createSplitImage(800, 400))
	require.NotNil(t, obj)
	assert.NotEmpty(t, obj.ID)
	w, h := obj.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 400.0, h)
	assert.Equal(t, stencil.Transform{Scale: 1, X: 300, Y: 300}, obj.Transform())

	assert.True(t, s.HitTest(300, 300))
	assert.False(t, s.HitTest(300, 50))

	s.RemoveImage()
	assert.Nil(t, s.Image())
	assert.False(t, s.HitTest(300, 300))
}

func TestScene_Apply(t *testing.T) {
	s := newTestScene()
	obj := s.SetImage(createSplitImage(800, 400))

	next := stencil.Transform{Scale: 2, X: 250, Y: 310}
	assert.True(t, s.Apply(next))
	assert.False(t, s.Apply(next), "applying the same transform twice is a no-op")
	assert.True(t, obj.Matches(next))
	assert.Equal(t, stencil.Rect{Left: -550, Top: -90, Width: 1600, Height: 800}, obj.BoundingBox())
}

func TestScene_Render(t *testing.T) {
	s := newTestScene()
	bg := DefaultOptions().Background.(color.NRGBA)

	t.Run("Empty scene is background", func(t *testing.T) {
		out := s.Render()
		assert.Equal(t, image.Rect(0, 0, 600, 600), out.Bounds())
		assertColor(t, out, 300, 300, bg)
	})

	s.SetImage(createSplitImage(800, 400))

	t.Run("Image shows through the stencil only", func(t *testing.T) {
		out := s.Render()
		// Image x=400 sits on canvas x=300: red to the left, blue to the right.
		assertColor(t, out, 200, 300, red)
		assertColor(t, out, 400, 300, blue)
		// The image extends past the stencil but is clipped.
		assertColor(t, out, 50, 300, bg)
		assertColor(t, out, 550, 300, bg)
		// Rounded corner cuts the image.
		assertColor(t, out, 103, 103, bg)
	})

	t.Run("Render is cached until the scene changes", func(t *testing.T) {
		first := s.Render()
		assert.Same(t, first, s.Render())

		s.Apply(stencil.Transform{Scale: 1, X: 500, Y: 300})
		moved := s.Render()
		assert.NotSame(t, first, moved)
		// Image x=400 now sits on canvas x=500, so x=400 shows red.
		assertColor(t, moved, 400, 300, red)
	})
}

func TestScene_ScaledBitmapCache(t *testing.T) {
	s := newTestScene()
	obj := s.SetImage(createSplitImage(800, 400))

	s.Render()
	first := s.scaled.img
	require.NotNil(t, first)
	assert.Equal(t, obj.ID, s.scaled.id)
	assert.Equal(t, image.Rect(0, 0, 800, 400), first.Bounds())

	t.Run("Pan reuses the resample", func(t *testing.T) {
		s.Apply(stencil.Transform{Scale: 1, X: 450, Y: 300})
		out := s.Render()
		assert.Same(t, first, s.scaled.img)
		// Image x=400 now sits on canvas x=450.
		assertColor(t, out, 440, 300, red)
		assertColor(t, out, 460, 300, blue)
	})

	t.Run("Scale change resamples", func(t *testing.T) {
		s.Apply(stencil.Transform{Scale: 1.5, X: 300, Y: 300})
		out := s.Render()
		assert.NotSame(t, first, s.scaled.img)
		assert.Equal(t, image.Rect(0, 0, 1200, 600), s.scaled.img.Bounds())
		assertColor(t, out, 280, 300, red)
		assertColor(t, out, 320, 300, blue)
	})

	t.Run("New object resamples", func(t *testing.T) {
		before := s.scaled.img
		next := s.SetImage(createSplitImage(800, 400))
		s.Apply(stencil.Transform{Scale: 1.5, X: 300, Y: 300})
		s.Render()
		assert.NotSame(t, before, s.scaled.img)
		assert.Equal(t, next.ID, s.scaled.id)
	})

	t.Run("Remove drops the cache", func(t *testing.T) {
		s.RemoveImage()
		assert.Nil(t, s.scaled.img)
	})

	t.Run("Oversized scales render without caching", func(t *testing.T) {
		big := newTestScene()
		// 6000x2000 at scale 5 is over the cache limit.
		big.SetImage(createSplitImage(1200, 400))
		big.Apply(stencil.Transform{Scale: 5, X: 300, Y: 300})
		out := big.Render()
		assert.Nil(t, big.scaled.img)
		assertColor(t, out, 280, 300, red)
		assertColor(t, out, 320, 300, blue)
	})
}

func TestScene_RequestRender(t *testing.T) {
	s := newTestScene()
	calls := 0
	s.RequestRender() // no callback registered yet
	s.OnRender(func() { calls++ })
	s.RequestRender()
	s.RequestRender()
	assert.Equal(t, 2, calls)
}

func TestRoundedRectMask(t *testing.T) {
	frame := stencil.Centered(600, 600, 400, 400, 20)
	mask := roundedRectMask(600, 600, frame)

	assert.Equal(t, uint8(0xff), mask.AlphaAt(300, 300).A)
	assert.Equal(t, uint8(0xff), mask.AlphaAt(110, 300).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(90, 300).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(101, 101).A)
}
