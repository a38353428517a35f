// Package editor holds the editing state of the stencil editor and the
// pieces that keep it in step with the scene: the store, the gesture
// controller, the render binding and the toolbar intents.
//
// Data flows one way for state-driven updates:
//
//	intents/controller -> Store -> Binding -> scene
//
// During a drag the controller moves the scene directly and commits to the
// store when the gesture ends.
package editor

import (
	"context"

	"github.com/dixieflatline76/Stencil/config"
	"github.com/dixieflatline76/Stencil/pkg/scene"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
)

// Editor bundles the collaborating parts of one editing session.
type Editor struct {
	Store      *Store
	Scene      *scene.Scene
	Controller *Controller
	Binding    *Binding
	Intents    *Intents
}

// NewScene creates a scene sized and framed per cfg.
func NewScene(cfg config.EditorConfig) *scene.Scene {
	frame := stencil.Centered(cfg.CanvasWidth, cfg.CanvasHeight, cfg.StencilWidth, cfg.StencilHeight, cfg.StencilRadius)
	return scene.New(int(cfg.CanvasWidth), int(cfg.CanvasHeight), frame, scene.DefaultOptions())
}

// New wires a store, scene, controller, binding and intents together. The
// binding is started; call Run to process zoom commands.
func New(cfg config.EditorConfig, opts ...Option) *Editor {
	store := NewStore()
	sc := NewScene(cfg)
	ctrl := NewController(store, sc, cfg)
	opts = append([]Option{WithMaxZoom(cfg.MaxZoom)}, opts...)

	e := &Editor{
		Store:      store,
		Scene:      sc,
		Controller: ctrl,
		Binding:    NewBinding(store, sc, opts...),
		Intents:    NewIntents(store, ctrl, opts...),
	}
	e.Binding.Start()
	return e
}

// Run executes queued zoom commands through post until ctx is done.
func (e *Editor) Run(ctx context.Context, post func(func())) {
	e.Controller.Run(ctx, post)
}

// Close stops the binding.
func (e *Editor) Close() {
	e.Binding.Stop()
}
