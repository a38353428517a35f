package editor

import (
	"context"

	"github.com/dixieflatline76/Stencil/config"
	"github.com/dixieflatline76/Stencil/pkg/scene"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/dixieflatline76/Stencil/util/log"
)

// Controller turns pointer, wheel and zoom commands into transforms on the
// scene. Drags update the scene only and commit to the store when the pointer
// is released; wheel and command zooms update both at once.
//
// Gesture methods are not synchronized and must be called from the UI
// goroutine. Send may be called from anywhere.
type Controller struct {
	store *Store
	scene *scene.Scene
	cfg   config.EditorConfig

	commands chan Command

	viewScale float64
	dragging  bool
	dragID    string // object the gesture started on
	lastX     float64
	lastY     float64
}

// NewController creates a controller for the given store and scene.
func NewController(store *Store, sc *scene.Scene, cfg config.EditorConfig) *Controller {
	return &Controller{
		store:     store,
		scene:     sc,
		cfg:       cfg,
		commands:  make(chan Command, commandQueueSize),
		viewScale: 1,
	}
}

// Send queues cmd without blocking. It returns ErrNoImage when there is no
// image to act on and ErrCommandQueueFull when the queue is full.
func (c *Controller) Send(cmd Command) error {
	if !c.store.State().Ready() {
		log.Debugf("controller: %s dropped, no image", cmd.Kind)
		return ErrNoImage
	}
	select {
	case c.commands <- cmd:
		return nil
	default:
		log.Printf("controller: command queue full, dropping %s", cmd.Kind)
		return ErrCommandQueueFull
	}
}

// Run drains queued commands until ctx is done. Each command is executed via
// post, which must run it on the UI goroutine.
func (c *Controller) Run(ctx context.Context, post func(func())) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-c.commands:
			post(func() { c.Dispatch(cmd) })
		}
	}
}

// Dispatch executes one command immediately.
func (c *Controller) Dispatch(cmd Command) {
	switch cmd.Kind {
	case CommandZoomIn:
		c.Zoom(c.cfg.ZoomStep)
	case CommandZoomOut:
		c.Zoom(1 / c.cfg.ZoomStep)
	default:
		log.Printf("controller: unknown command %d", cmd.Kind)
	}
}

// SetViewScale sets the view-to-canvas scale, i.e. the displayed size of the
// canvas divided by its logical size. Non-positive values are ignored.
func (c *Controller) SetViewScale(s float64) {
	if s <= 0 {
		return
	}
	c.viewScale = s
}

// ViewScale returns the current view-to-canvas scale.
func (c *Controller) ViewScale() float64 {
	return c.viewScale
}

// Dragging reports whether a drag gesture is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

func (c *Controller) toCanvas(x, y float64) (float64, float64) {
	return x / c.viewScale, y / c.viewScale
}

// PointerDown starts a drag if the view point (x, y) is over the image.
func (c *Controller) PointerDown(x, y float64) bool {
	cx, cy := c.toCanvas(x, y)
	obj := c.scene.Image()
	if obj == nil || !c.scene.HitTest(cx, cy) {
		return false
	}
	c.dragging = true
	c.dragID = obj.ID
	c.lastX, c.lastY = x, y
	return true
}

// dragTarget returns the object being dragged. A gesture whose object was
// replaced or removed is abandoned without a commit.
func (c *Controller) dragTarget() *scene.ImageObject {
	if !c.dragging {
		return nil
	}
	obj := c.scene.Image()
	if obj == nil || obj.ID != c.dragID {
		log.Debugf("controller: drag target %s gone, gesture abandoned", c.dragID)
		c.dragging = false
		c.dragID = ""
		return nil
	}
	return obj
}

// PointerMove moves the image by the pointer delta while dragging. The store
// is not touched until PointerUp.
func (c *Controller) PointerMove(x, y float64) {
	obj := c.dragTarget()
	if obj == nil {
		return
	}
	dx := (x - c.lastX) / c.viewScale
	dy := (y - c.lastY) / c.viewScale
	c.lastX, c.lastY = x, y

	w, h := obj.Size()
	t := obj.Transform()
	t.X += dx
	t.Y += dy
	if c.scene.Apply(stencil.Clamp(w, h, t, c.scene.Frame())) {
		c.scene.RequestRender()
	}
}

// PointerUp ends a drag and commits the final placement.
func (c *Controller) PointerUp() {
	obj := c.dragTarget()
	if obj == nil {
		return
	}
	c.dragging = false
	c.dragID = ""
	c.store.SetTransform(obj.Transform(), OriginController)
}

// Wheel zooms by deltaY wheel units around the view point (x, y).
func (c *Controller) Wheel(deltaY, x, y float64) {
	obj := c.scene.Image()
	if obj == nil || deltaY == 0 {
		return
	}
	t := obj.Transform()
	px, py := c.toCanvas(x, y)
	c.commit(obj, stencil.WheelScale(t.Scale, c.cfg.WheelZoomBase, deltaY), px, py, true)
}

// Zoom multiplies the scale by factor, keeping the position.
func (c *Controller) Zoom(factor float64) {
	obj := c.scene.Image()
	if obj == nil || factor <= 0 {
		return
	}
	t := obj.Transform()
	c.commit(obj, t.Scale*factor, t.X, t.Y, false)
}

// commit applies the zoom to the scene and the store in one step. When
// anchored is false the position is kept and only bounds-clamped.
func (c *Controller) commit(obj *scene.ImageObject, newScale, px, py float64, anchored bool) {
	w, h := obj.Size()
	f := c.scene.Frame()
	t := obj.Transform()

	var next stencil.Transform
	if anchored {
		next = stencil.ZoomAt(w, h, t, f, newScale, c.cfg.MaxZoom, px, py)
	} else {
		next = stencil.Clamp(w, h, stencil.Transform{
			Scale: stencil.ClampZoom(newScale, stencil.MinZoom(w, h, f), c.cfg.MaxZoom),
			X:     px,
			Y:     py,
		}, f)
	}
	if !c.scene.Apply(next) {
		return
	}
	c.scene.RequestRender()
	c.store.SetTransform(next, OriginController)
}
