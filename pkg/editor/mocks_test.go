package editor

import (
	"context"
	"image"

	"github.com/dixieflatline76/Stencil/pkg/focus"
	"github.com/stretchr/testify/mock"
)

// MockFinder is a focus.Finder driven by testify expectations.
type MockFinder struct {
	mock.Mock
}

func (m *MockFinder) Find(ctx context.Context, img image.Image) (focus.Point, error) {
	args := m.Called(ctx, img)
	return args.Get(0).(focus.Point), args.Error(1)
}
