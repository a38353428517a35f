package focus

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	pigo "github.com/esimov/pigo/core"
)

// Detector tuning, relative to the analysis thumbnail.
const (
	faceMinSizePct  = 0.05
	faceShiftFactor = 0.1
	faceScaleFactor = 1.1
	faceIoU         = 0.2
	faceMinQuality  = 5.0
)

// FaceFinder returns the center of the most confident face.
type FaceFinder struct {
	classifier *pigo.Pigo
}

// NewFaceFinder wraps an unpacked pigo cascade.
func NewFaceFinder(classifier *pigo.Pigo) *FaceFinder {
	return &FaceFinder{classifier: classifier}
}

// LoadFaceFinder reads and unpacks a pigo cascade file.
func LoadFaceFinder(path string) (*FaceFinder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading face model: %w", err)
	}
	classifier, err := pigo.NewPigo().Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("unpacking face model: %w", err)
	}
	return NewFaceFinder(classifier), nil
}

// Find runs the cascade on a thumbnail of img.
func (f *FaceFinder) Find(ctx context.Context, img image.Image) (Point, error) {
	if f.classifier == nil {
		return Point{}, ErrNotFound
	}
	if err := checkContext(ctx); err != nil {
		return Point{}, err
	}
	thumb, factor := thumbnail(img, imaging.Linear)
	b := thumb.Bounds()
	rows, cols := b.Dy(), b.Dx()

	params := pigo.CascadeParams{
		MinSize:     max(int(float64(min(rows, cols))*faceMinSizePct), 20),
		MaxSize:     max(rows, cols),
		ShiftFactor: faceShiftFactor,
		ScaleFactor: faceScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pigo.RgbToGrayscale(thumb),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}
	dets := f.classifier.RunCascade(params, 0.0)
	dets = f.classifier.ClusterDetections(dets, faceIoU)

	if err := checkContext(ctx); err != nil {
		return Point{}, err
	}
	best := -1
	for i, d := range dets {
		if d.Q < faceMinQuality {
			continue
		}
		if best < 0 || d.Q > dets[best].Q {
			best = i
		}
	}
	if best < 0 {
		return Point{}, ErrNotFound
	}
	return Point{
		X: float64(dets[best].Col) * factor,
		Y: float64(dets[best].Row) * factor,
	}, nil
}
