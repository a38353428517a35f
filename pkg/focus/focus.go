// Package focus finds the point of interest in an image so the editor can
// place it at the center of the stencil when the image is first opened.
package focus

import (
	"context"
	"errors"
	"image"

	"github.com/disintegration/imaging"
)

// ErrNotFound is returned when a finder has no opinion about the image.
var ErrNotFound = errors.New("no focus point found")

// analysisSize bounds the longest side of the image handed to the detectors.
const analysisSize = 320

// Point is a location in source image pixels, relative to the bounds origin.
type Point struct {
	X, Y float64
}

// Finder locates the focus point of an image.
type Finder interface {
	Find(ctx context.Context, img image.Image) (Point, error)
}

// FinderFunc adapts a function to the Finder interface.
type FinderFunc func(ctx context.Context, img image.Image) (Point, error)

// Find calls f.
func (f FinderFunc) Find(ctx context.Context, img image.Image) (Point, error) {
	return f(ctx, img)
}

// thumbnail downsizes img for analysis and returns the factor that maps
// thumbnail coordinates back to source coordinates.
func thumbnail(img image.Image, filter imaging.ResampleFilter) (*image.NRGBA, float64) {
	b := img.Bounds()
	longest := max(b.Dx(), b.Dy())
	if longest <= analysisSize {
		return imaging.Clone(img), 1
	}
	thumb := imaging.Fit(img, analysisSize, analysisSize, filter)
	return thumb, float64(longest) / float64(max(thumb.Bounds().Dx(), thumb.Bounds().Dy()))
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
