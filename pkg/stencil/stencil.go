// Package stencil holds the geometry of the crop frame and the pure math that
// keeps an image covering it: cover scale, zoom limits, pointer-anchored zoom
// and bounds clamping. Nothing in here touches a drawing surface.
package stencil

import "fmt"

// MaxZoom is the default upper zoom bound.
const MaxZoom = 5.0

// Transform is the placement of an image on the canvas. X and Y are the
// position of the image center in canvas coordinates.
type Transform struct {
	Scale float64 `json:"scale"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// String implements fmt.Stringer.
func (t Transform) String() string {
	return fmt.Sprintf("{scale:%.4f x:%.2f y:%.2f}", t.Scale, t.X, t.Y)
}

// Ptr returns a pointer to a copy of t.
func (t Transform) Ptr() *Transform {
	return &t
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right() && y >= r.Top && y <= r.Bottom()
}

// Covers reports whether r fully covers o.
func (r Rect) Covers(o Rect) bool {
	return r.Left <= o.Left && r.Top <= o.Top && r.Right() >= o.Right() && r.Bottom() >= o.Bottom()
}

// Frame is the stencil: a fixed rounded rectangle the image must always cover.
type Frame struct {
	Left         float64
	Top          float64
	Width        float64
	Height       float64
	CornerRadius float64
}

// Centered returns a w x h frame centered in a canvasW x canvasH canvas.
func Centered(canvasW, canvasH, w, h, radius float64) Frame {
	return Frame{
		Left:         (canvasW - w) / 2,
		Top:          (canvasH - h) / 2,
		Width:        w,
		Height:       h,
		CornerRadius: radius,
	}
}

// Rect returns the frame bounds without the corner radius.
func (f Frame) Rect() Rect {
	return Rect{Left: f.Left, Top: f.Top, Width: f.Width, Height: f.Height}
}

// Right returns the x coordinate of the right edge.
func (f Frame) Right() float64 { return f.Left + f.Width }

// Bottom returns the y coordinate of the bottom edge.
func (f Frame) Bottom() float64 { return f.Top + f.Height }

// Center returns the center point of the frame.
func (f Frame) Center() (float64, float64) {
	return f.Left + f.Width/2, f.Top + f.Height/2
}

// Aspect returns width / height.
func (f Frame) Aspect() float64 {
	return f.Width / f.Height
}
