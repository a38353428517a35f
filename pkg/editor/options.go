package editor

import (
	"github.com/dixieflatline76/Stencil/pkg/focus"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
)

// settings are the host integration points shared by the binding and intents.
type settings struct {
	post    func(func()) // run on the UI goroutine
	spawn   func(func()) // run in the background
	finder  focus.Finder
	onError func(error)
	maxZoom float64
}

func defaultSettings() settings {
	return settings{
		post:    func(fn func()) { fn() },
		spawn:   func(fn func()) { go fn() },
		maxZoom: stencil.MaxZoom,
	}
}

// Option configures a Binding or Intents.
type Option func(*settings)

// WithPost sets how completions are marshalled back to the UI goroutine.
// The app passes fyne.Do.
func WithPost(post func(func())) Option {
	return func(h *settings) {
		if post != nil {
			h.post = post
		}
	}
}

// WithSpawn sets how background work is started. Tests pass a synchronous
// runner.
func WithSpawn(spawn func(func())) Option {
	return func(h *settings) {
		if spawn != nil {
			h.spawn = spawn
		}
	}
}

// WithFinder enables smart initial placement.
func WithFinder(f focus.Finder) Option {
	return func(h *settings) {
		h.finder = f
	}
}

// WithMaxZoom sets the upper zoom bound used when re-clamping pushed
// transforms.
func WithMaxZoom(z float64) Option {
	return func(h *settings) {
		if z > 0 {
			h.maxZoom = z
		}
	}
}

// WithErrorHandler sets the callback for load and read failures. It is
// called on the UI goroutine.
func WithErrorHandler(fn func(error)) Option {
	return func(h *settings) {
		h.onError = fn
	}
}

func (h settings) reportError(err error) {
	if h.onError != nil {
		h.onError(err)
	}
}
