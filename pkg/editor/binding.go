package editor

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/dixieflatline76/Stencil/pkg/focus"
	"github.com/dixieflatline76/Stencil/pkg/scene"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/dixieflatline76/Stencil/util/log"
)

// focusTimeout caps smart placement so a slow analysis never stalls opening.
const focusTimeout = 3 * time.Second

// Binding mirrors the store into the scene. It loads and fits new images,
// removes cleared ones and pushes transforms written by anyone other than the
// controller or itself.
type Binding struct {
	store *Store
	scene *scene.Scene
	settings

	mu          sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	unsubscribe func()
}

// NewBinding creates a binding between store and sc. Call Start to begin.
func NewBinding(store *Store, sc *scene.Scene, opts ...Option) *Binding {
	h := defaultSettings()
	for _, opt := range opts {
		opt(&h)
	}
	return &Binding{store: store, scene: sc, settings: h}
}

// Start subscribes to the store and syncs the scene with its current state.
func (b *Binding) Start() {
	b.mu.Lock()
	if b.unsubscribe != nil {
		b.mu.Unlock()
		return
	}
	b.ctx, b.cancel = context.WithCancel(context.Background())
	b.unsubscribe = b.store.Subscribe(b.handle)
	b.mu.Unlock()

	if st := b.store.State(); st.HasImage() && st.Current == nil {
		b.load(st.ImageSource)
	}
}

// Stop unsubscribes and abandons any load in flight.
func (b *Binding) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.unsubscribe == nil {
		return
	}
	b.unsubscribe()
	b.unsubscribe = nil
	b.cancel()
}

// SetFinder replaces the smart placement finder for future loads. nil
// disables smart placement.
func (b *Binding) SetFinder(f focus.Finder) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.finder = f
}

func (b *Binding) currentFinder() focus.Finder {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.finder
}

func (b *Binding) context() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ctx == nil {
		return context.Background()
	}
	return b.ctx
}

func (b *Binding) handle(c Change) {
	switch c.Kind {
	case ImageSet:
		// The old bitmap must not be edited while the new one loads.
		b.scene.RemoveImage()
		b.scene.RequestRender()
		b.load(c.Next.ImageSource)
	case ImageCleared:
		b.scene.RemoveImage()
		b.scene.RequestRender()
	case TransformSet, TransformReset:
		if c.Origin == OriginController || c.Origin == OriginBinding {
			return
		}
		if c.Next.Current != nil {
			b.push(*c.Next.Current)
		}
	}
}

type loadResult struct {
	img   image.Image
	focus *focus.Point
	err   error
}

// load decodes source in the background and finishes on the UI goroutine.
func (b *Binding) load(source string) {
	ctx := b.context()
	finder := b.currentFinder()
	b.spawn(func() {
		res := loadResult{}
		res.img, res.err = DecodeDataURL(ctx, source)
		if res.err == nil && finder != nil {
			fctx, cancel := context.WithTimeout(ctx, focusTimeout)
			pt, err := finder.Find(fctx, res.img)
			cancel()
			switch {
			case err == nil:
				res.focus = &pt
			case errors.Is(err, focus.ErrNotFound):
			default:
				log.Printf("binding: focus analysis failed: %v", err)
			}
		}
		b.post(func() { b.finishLoad(source, res) })
	})
}

func (b *Binding) finishLoad(source string, res loadResult) {
	if b.context().Err() != nil {
		return
	}
	st := b.store.State()
	if st.ImageSource != source || st.Current != nil {
		log.Debugf("binding: discarding stale load")
		return
	}
	if res.err != nil {
		log.Printf("binding: failed to load image: %v", res.err)
		b.store.ClearImage()
		b.reportError(fmt.Errorf("opening image: %w", res.err))
		return
	}

	obj := b.scene.SetImage(res.img)
	w, h := obj.Size()
	f := b.scene.Frame()
	t := stencil.InitialTransform(w, h, f)
	if res.focus != nil {
		t = stencil.FocusTransform(w, h, f, res.focus.X, res.focus.Y)
	}
	b.scene.Apply(t)
	b.scene.RequestRender()
	log.Debugf("binding: fit %.0fx%.0f image at %s", w, h, t)
	b.store.SetInitialTransform(t)
}

// push places the scene object at t, re-clamped to the stencil. A clamped
// result that differs from t is written back so the store stays truthful.
func (b *Binding) push(t stencil.Transform) {
	obj := b.scene.Image()
	if obj == nil {
		return
	}
	w, h := obj.Size()
	f := b.scene.Frame()
	clamped := stencil.Clamp(w, h, stencil.Transform{
		Scale: stencil.ClampZoom(t.Scale, stencil.MinZoom(w, h, f), b.maxZoom),
		X:     t.X,
		Y:     t.Y,
	}, f)
	if b.scene.Apply(clamped) {
		b.scene.RequestRender()
	}
	if clamped != t {
		b.store.SetTransform(clamped, OriginBinding)
	}
}
