// Package scene is the drawing surface of the editor: a fixed-size canvas
// holding one image object clipped to the stencil, with a dashed frame drawn
// on top. It renders to an image.Image that the UI shows through a raster.
package scene

import (
	"image"
	"image/color"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
)

// Options controls how the scene is painted.
type Options struct {
	Background  color.Color
	FrameStroke color.Color
	FrameWidth  float64
	FrameDash   []float64
	Filter      imaging.ResampleFilter
}

// DefaultOptions returns the reference look: light grey background and a 2px
// translucent dashed frame.
func DefaultOptions() Options {
	return Options{
		Background:  color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
		FrameStroke: color.NRGBA{A: 77}, // rgba(0,0,0,0.3)
		FrameWidth:  2,
		FrameDash:   []float64{5, 5},
		Filter:      imaging.Linear,
	}
}

// Scene is a fixed-size canvas with at most one image object.
type Scene struct {
	mu sync.Mutex

	width  int
	height int
	frame  stencil.Frame
	opts   Options

	image *ImageObject

	clip       *image.Alpha // stencil shape, opaque inside
	frameLayer *image.RGBA  // dashed outline, transparent elsewhere

	version  uint64 // bumped on every visible change
	rendered uint64
	last     *image.RGBA

	scaled scaledBitmap // image object resampled at its current scale

	onRender func()
}

// New creates a width x height scene with the given stencil.
func New(width, height int, frame stencil.Frame, opts Options) *Scene {
	return &Scene{
		width:      width,
		height:     height,
		frame:      frame,
		opts:       opts,
		clip:       roundedRectMask(width, height, frame),
		frameLayer: dashedFrame(width, height, frame, opts),
		version:    1,
	}
}

// Size returns the logical canvas size.
func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// Frame returns the stencil.
func (s *Scene) Frame() stencil.Frame {
	return s.frame
}

// OnRender registers the function called by RequestRender.
func (s *Scene) OnRender(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRender = fn
}

// RequestRender asks the host to repaint.
func (s *Scene) RequestRender() {
	s.mu.Lock()
	fn := s.onRender
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// SetImage replaces the image object with a new one for img, placed at scale
// 1 on the canvas center. It returns the new object.
func (s *Scene) SetImage(img image.Image) *ImageObject {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj := newImageObject(img)
	obj.tf.X = float64(s.width) / 2
	obj.tf.Y = float64(s.height) / 2
	s.image = obj
	s.version++
	return obj
}

// RemoveImage drops the image object, if any.
func (s *Scene) RemoveImage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.image == nil {
		return
	}
	s.image = nil
	s.scaled = scaledBitmap{}
	s.version++
}

// Image returns the current image object or nil.
func (s *Scene) Image() *ImageObject {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.image
}

// HitTest reports whether the canvas point (x, y) is over the image object.
func (s *Scene) HitTest(x, y float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.image != nil && s.image.BoundingBox().Contains(x, y)
}

// Apply places the image object at t. It returns false when there is no
// image or it is already at t.
func (s *Scene) Apply(t stencil.Transform) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.image == nil || s.image.Matches(t) {
		return false
	}
	s.image.tf = t
	s.version++
	return true
}
