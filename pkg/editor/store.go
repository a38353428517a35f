package editor

import (
	"sync"

	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/dixieflatline76/Stencil/util/log"
)

// Store is the single source of truth for the image source and transforms.
// Actions are synchronous; subscribers run after the lock is released, so
// they may dispatch further actions. Changes are delivered in the order they
// were made: an action dispatched from a subscriber is queued and delivered
// once every subscriber has seen the change that caused it. Changes made on
// another goroutine while a delivery is running are delivered by it.
type Store struct {
	mu    sync.RWMutex
	state State

	subs    []subscriber
	nextSub int

	pending    []delivery
	delivering bool

	updateCh chan struct{}
}

type delivery struct {
	change Change
	subs   []func(Change)
}

type subscriber struct {
	id int
	fn func(Change)
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		updateCh: make(chan struct{}),
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Subscribe registers fn for every change and returns its cancel function.
func (s *Store) Subscribe(fn func(Change)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// SetImage sets a new image source and clears both transforms so the
// binding fits it from scratch.
func (s *Store) SetImage(source string) {
	if source == "" {
		return
	}
	s.apply(ImageSet, OriginUser, func(st *State) bool {
		st.ImageSource = source
		st.Current = nil
		st.Initial = nil
		return true
	})
}

// SetInitialTransform records the fit of a freshly loaded image as both the
// current and the initial transform.
func (s *Store) SetInitialTransform(t stencil.Transform) {
	s.apply(InitialTransformSet, OriginBinding, func(st *State) bool {
		if !st.HasImage() {
			return false
		}
		st.Current = t.Ptr()
		st.Initial = t.Ptr()
		return true
	})
}

// SetTransform replaces the current transform.
func (s *Store) SetTransform(t stencil.Transform, origin Origin) {
	s.apply(TransformSet, origin, func(st *State) bool {
		if !st.HasImage() {
			return false
		}
		st.Current = t.Ptr()
		return true
	})
}

// ResetTransform restores the initial transform. No-op without an image.
func (s *Store) ResetTransform() {
	s.apply(TransformReset, OriginReset, func(st *State) bool {
		if !st.HasImage() || st.Initial == nil {
			return false
		}
		st.Current = st.Initial.Ptr()
		return true
	})
}

// ClearImage removes the image and every transform. No-op without an image.
func (s *Store) ClearImage() {
	s.apply(ImageCleared, OriginUser, func(st *State) bool {
		if !st.HasImage() {
			return false
		}
		*st = State{}
		return true
	})
}

// apply runs mutate under the lock and, if it reports a change, queues it
// for subscribers and wakes waiters. Only the outermost apply drains the
// queue.
func (s *Store) apply(kind ChangeKind, origin Origin, mutate func(*State) bool) {
	s.mu.Lock()
	prev := s.state.clone()
	if !mutate(&s.state) {
		s.mu.Unlock()
		log.Debugf("store: %s ignored", kind)
		return
	}
	change := Change{Kind: kind, Origin: origin, Prev: prev, Next: s.state.clone()}
	subs := make([]func(Change), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub.fn)
	}
	s.pending = append(s.pending, delivery{change: change, subs: subs})
	s.notifyUpdateLocked()
	log.Debugf("store: %s from %s", kind, origin)

	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	for len(s.pending) > 0 {
		d := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()
		for _, fn := range d.subs {
			fn(d.change)
		}
		s.mu.Lock()
	}
	s.delivering = false
	s.mu.Unlock()
}
