package focus

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
)

// SaliencyFinder uses content-aware cropping to find the region most worth
// keeping at the stencil's aspect ratio and returns its center.
type SaliencyFinder struct {
	width     int
	height    int
	resampler imaging.ResampleFilter
}

// NewSaliencyFinder creates a finder for crops of the given aspect.
func NewSaliencyFinder(width, height int) *SaliencyFinder {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	return &SaliencyFinder{width: width, height: height, resampler: imaging.Lanczos}
}

// Find returns the center of the best crop in source coordinates.
func (s *SaliencyFinder) Find(ctx context.Context, img image.Image) (Point, error) {
	if err := checkContext(ctx); err != nil {
		return Point{}, err
	}
	thumb, factor := thumbnail(img, s.resampler)
	tb := thumb.Bounds()

	// Largest crop of the target aspect that fits the thumbnail.
	cw, ch := tb.Dx(), tb.Dx()*s.height/s.width
	if ch > tb.Dy() {
		cw, ch = tb.Dy()*s.width/s.height, tb.Dy()
	}
	if cw <= 0 || ch <= 0 {
		return Point{}, ErrNotFound
	}

	analyzer := smartcrop.NewAnalyzer(&resizer{resampler: s.resampler})

	type cropResult struct {
		crop image.Rectangle
		err  error
	}
	resultChan := make(chan cropResult, 1)
	go func() {
		crop, err := analyzer.FindBestCrop(thumb, cw, ch)
		resultChan <- cropResult{crop: crop, err: err}
	}()

	select {
	case <-ctx.Done():
		return Point{}, ctx.Err()
	case result := <-resultChan:
		if result.err != nil {
			return Point{}, fmt.Errorf("finding best crop: %w", result.err)
		}
		c := result.crop
		return Point{
			X: float64(c.Min.X+c.Max.X) / 2 * factor,
			Y: float64(c.Min.Y+c.Max.Y) / 2 * factor,
		}, nil
	}
}

// resizer implements the smartcrop.Resizer interface with imaging.
type resizer struct {
	resampler imaging.ResampleFilter
}

func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
