package editor

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/dixieflatline76/Stencil/pkg/focus"
	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBinding_LoadFitsImage(t *testing.T) {
	store := NewStore()
	sc := newTestScene()
	b := NewBinding(store, sc, synchronous()...)
	b.Start()
	defer b.Stop()

	renders := 0
	sc.OnRender(func() { renders++ })

	store.SetImage(dataURL(t, 800, 400))

	st := store.State()
	require.True(t, st.Ready())
	want := stencil.Transform{Scale: 1, X: 300, Y: 300}
	assert.Equal(t, want, *st.Current)
	assert.Equal(t, want, *st.Initial)

	obj := sc.Image()
	require.NotNil(t, obj)
	w, h := obj.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 400.0, h)
	assert.Equal(t, want, obj.Transform())
	assert.Positive(t, renders)
}

func TestBinding_CoverScaleForSmallImage(t *testing.T) {
	store := NewStore()
	sc := newTestScene()
	b := NewBinding(store, sc, synchronous()...)
	b.Start()
	defer b.Stop()

	store.SetImage(dataURL(t, 100, 200))

	// 100x200 is taller than the square stencil, so the width is matched.
	cur := store.State().Current
	require.NotNil(t, cur)
	assert.Equal(t, 4.0, cur.Scale)
	assert.True(t, sc.Image().BoundingBox().Covers(sc.Frame().Rect()))
}

func TestBinding_Reset(t *testing.T) {
	store := NewStore()
	sc := newTestScene()
	b := NewBinding(store, sc, synchronous()...)
	b.Start()
	defer b.Stop()
	store.SetImage(dataURL(t, 800, 400))

	// A controller commit moves the scene itself and is not pushed back.
	moved := stencil.Transform{Scale: 2, X: 250, Y: 280}
	sc.Apply(moved)
	store.SetTransform(moved, OriginController)
	assert.Equal(t, moved, sc.Image().Transform())

	store.ResetTransform()
	assert.Equal(t, stencil.Transform{Scale: 1, X: 300, Y: 300}, sc.Image().Transform())
}

func TestBinding_ControllerWritesAreNotPushed(t *testing.T) {
	store := NewStore()
	sc := newTestScene()
	b := NewBinding(store, sc, synchronous()...)
	b.Start()
	defer b.Stop()
	store.SetImage(dataURL(t, 800, 400))

	// A controller write is trusted as already applied to the scene.
	store.SetTransform(stencil.Transform{Scale: 3, X: 300, Y: 300}, OriginController)
	assert.Equal(t, 1.0, sc.Image().Transform().Scale)
}

func TestBinding_ExternalWriteIsClamped(t *testing.T) {
	store := NewStore()
	sc := newTestScene()
	b := NewBinding(store, sc, synchronous()...)
	b.Start()
	defer b.Stop()
	store.SetImage(dataURL(t, 800, 400))

	rec := &recorder{}
	store.Subscribe(rec.record)
	store.SetTransform(stencil.Transform{Scale: 0.5, X: 800, Y: 300}, OriginUser)

	want := stencil.Transform{Scale: 1, X: 500, Y: 300}
	assert.Equal(t, want, sc.Image().Transform())
	assert.Equal(t, want, *store.State().Current)

	require.Len(t, rec.changes, 2)
	// The write-back is delivered after the write that caused it.
	assert.Equal(t, OriginUser, rec.changes[0].Origin)
	assert.Equal(t, OriginBinding, rec.changes[1].Origin)
	assert.Equal(t, want, *rec.changes[1].Next.Current)
}

func TestBinding_Clear(t *testing.T) {
	store := NewStore()
	sc := newTestScene()
	b := NewBinding(store, sc, synchronous()...)
	b.Start()
	defer b.Stop()
	store.SetImage(dataURL(t, 800, 400))
	require.NotNil(t, sc.Image())

	store.ClearImage()
	assert.Nil(t, sc.Image())

	// Transform writes after a clear have nothing to act on.
	store.ResetTransform()
	assert.Nil(t, sc.Image())
}

func TestBinding_DecodeFailure(t *testing.T) {
	store := NewStore()
	sc := newTestScene()
	var got error
	opts := append(synchronous(), WithErrorHandler(func(err error) { got = err }))
	b := NewBinding(store, sc, opts...)
	b.Start()
	defer b.Stop()

	store.SetImage("not a data url")

	assert.ErrorIs(t, got, ErrNotDataURL)
	assert.Equal(t, State{}, store.State(), "a failed load leaves no image behind")
	assert.Nil(t, sc.Image())
}

func TestBinding_LastLoadWins(t *testing.T) {
	store := NewStore()
	sc := newTestScene()

	var pending []func()
	b := NewBinding(store, sc,
		WithSpawn(func(fn func()) { pending = append(pending, fn) }),
		WithPost(func(fn func()) { fn() }),
	)
	b.Start()
	defer b.Stop()

	store.SetImage(dataURL(t, 800, 400))
	store.SetImage(dataURL(t, 200, 400))
	require.Len(t, pending, 2)

	// Finish out of order: the superseded load must be discarded.
	pending[1]()
	pending[0]()

	w, h := sc.Image().Size()
	assert.Equal(t, 200.0, w)
	assert.Equal(t, 400.0, h)
	assert.Equal(t, 2.0, store.State().Current.Scale)
}

func TestBinding_StopAbandonsLoads(t *testing.T) {
	store := NewStore()
	sc := newTestScene()
	var pending []func()
	b := NewBinding(store, sc,
		WithSpawn(func(fn func()) { pending = append(pending, fn) }),
		WithPost(func(fn func()) { fn() }),
	)
	b.Start()
	store.SetImage(dataURL(t, 800, 400))
	b.Stop()

	require.Len(t, pending, 1)
	pending[0]()
	assert.Nil(t, sc.Image())
	assert.False(t, store.State().Ready())
}

func TestBinding_StartPicksUpPendingImage(t *testing.T) {
	store := NewStore()
	store.SetImage(dataURL(t, 800, 400))

	b := NewBinding(store, newTestScene(), synchronous()...)
	b.Start()
	defer b.Stop()
	assert.True(t, store.State().Ready())
}

func TestBinding_SmartPlacement(t *testing.T) {
	t.Run("Focus point is moved to the stencil center", func(t *testing.T) {
		store := NewStore()
		sc := newTestScene()
		finder := focus.FinderFunc(func(ctx context.Context, img image.Image) (focus.Point, error) {
			return focus.Point{X: 250, Y: 200}, nil
		})
		b := NewBinding(store, sc, append(synchronous(), WithFinder(finder))...)
		b.Start()
		defer b.Stop()

		store.SetImage(dataURL(t, 800, 400))
		// Shifted right by 400-250, still covering.
		want := stencil.Transform{Scale: 1, X: 450, Y: 300}
		assert.Equal(t, want, *store.State().Current)
		assert.Equal(t, want, *store.State().Initial)
	})

	t.Run("Focus point near the edge is clamped", func(t *testing.T) {
		store := NewStore()
		b := NewBinding(store, newTestScene(), append(synchronous(), WithFinder(focus.FinderFunc(
			func(context.Context, image.Image) (focus.Point, error) { return focus.Point{X: 10, Y: 10}, nil },
		)))...)
		b.Start()
		defer b.Stop()

		store.SetImage(dataURL(t, 800, 400))
		assert.Equal(t, stencil.Transform{Scale: 1, X: 500, Y: 300}, *store.State().Current)
	})

	t.Run("Finder failure falls back to centered", func(t *testing.T) {
		for _, ferr := range []error{focus.ErrNotFound, errors.New("boom")} {
			store := NewStore()
			b := NewBinding(store, newTestScene(), append(synchronous(), WithFinder(focus.FinderFunc(
				func(context.Context, image.Image) (focus.Point, error) { return focus.Point{}, ferr },
			)))...)
			b.Start()

			store.SetImage(dataURL(t, 800, 400))
			assert.Equal(t, stencil.Transform{Scale: 1, X: 300, Y: 300}, *store.State().Current)
			b.Stop()
		}
	})

	t.Run("Finder is consulted once per load and can be swapped", func(t *testing.T) {
		store := NewStore()
		first := new(MockFinder)
		first.On("Find", mock.Anything, mock.MatchedBy(func(img image.Image) bool {
			return img.Bounds().Dx() == 800 && img.Bounds().Dy() == 400
		})).Return(focus.Point{X: 250, Y: 200}, nil).Once()

		b := NewBinding(store, newTestScene(), append(synchronous(), WithFinder(first))...)
		b.Start()
		defer b.Stop()

		store.SetImage(dataURL(t, 800, 400))
		assert.Equal(t, 450.0, store.State().Current.X)
		// Transform writes never re-run the finder.
		store.SetTransform(stencil.Transform{Scale: 2, X: 300, Y: 300}, OriginUser)
		first.AssertExpectations(t)

		second := new(MockFinder)
		second.On("Find", mock.Anything, mock.Anything).Return(focus.Point{}, focus.ErrNotFound).Once()
		b.SetFinder(second)
		store.SetImage(dataURL(t, 800, 400))
		second.AssertExpectations(t)
		assert.Equal(t, 300.0, store.State().Current.X)
	})
}
