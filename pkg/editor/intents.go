package editor

import (
	"fmt"
	"io"
	"os"

	"github.com/dixieflatline76/Stencil/util"
	"github.com/dixieflatline76/Stencil/util/log"
)

// Intents are the toolbar and menu actions.
type Intents struct {
	store *Store
	ctrl  *Controller
	settings

	uploads *util.SafeCounter
}

// NewIntents creates the action set for store and ctrl.
func NewIntents(store *Store, ctrl *Controller, opts ...Option) *Intents {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Intents{store: store, ctrl: ctrl, settings: s, uploads: util.NewSafeInt()}
}

// Open reads r in the background and sets the image when done. Overlapping
// opens are not cancelled; the last one to finish wins. A nil reader is a
// no-op. Open closes r.
func (i *Intents) Open(name string, r io.ReadCloser) {
	if r == nil {
		return
	}
	seq := i.uploads.Increment()
	log.Debugf("intents: upload %d started (%s)", seq, name)
	i.spawn(func() {
		defer r.Close()
		url, err := FileToDataURL(r)
		i.post(func() {
			if err != nil {
				log.Printf("intents: upload %d (%s) failed: %v", seq, name, err)
				i.reportError(fmt.Errorf("reading %s: %w", name, err))
				return
			}
			log.Debugf("intents: upload %d complete", seq)
			i.store.SetImage(url)
		})
	})
}

// OpenFile opens the image at path.
func (i *Intents) OpenFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	i.Open(path, f)
	return nil
}

// ZoomIn queues a zoom-in step.
func (i *Intents) ZoomIn() error {
	return i.ctrl.Send(Command{Kind: CommandZoomIn})
}

// ZoomOut queues a zoom-out step.
func (i *Intents) ZoomOut() error {
	return i.ctrl.Send(Command{Kind: CommandZoomOut})
}

// Reset restores the initial placement.
func (i *Intents) Reset() {
	i.store.ResetTransform()
}

// Clear removes the image.
func (i *Intents) Clear() {
	i.store.ClearImage()
}

// CanEdit reports whether the image-dependent actions are available.
func (i *Intents) CanEdit() bool {
	return i.store.State().Ready()
}
