package scene

import (
	"image"

	"github.com/dixieflatline76/Stencil/pkg/stencil"
	"github.com/google/uuid"
)

// ImageObject is the bitmap on the scene together with its live placement.
// Only the Scene mutates it; everyone else reads copies through Transform.
type ImageObject struct {
	ID     string
	img    image.Image
	width  float64
	height float64
	tf     stencil.Transform
}

func newImageObject(img image.Image) *ImageObject {
	b := img.Bounds()
	return &ImageObject{
		ID:     uuid.New().String(),
		img:    img,
		width:  float64(b.Dx()),
		height: float64(b.Dy()),
		tf:     stencil.Transform{Scale: 1},
	}
}

// Size returns the natural size of the bitmap.
func (o *ImageObject) Size() (float64, float64) {
	return o.width, o.height
}

// Transform returns a copy of the current placement.
func (o *ImageObject) Transform() stencil.Transform {
	return o.tf
}

// BoundingBox returns the scaled bounds in canvas coordinates.
func (o *ImageObject) BoundingBox() stencil.Rect {
	return stencil.BoundingBox(o.width, o.height, o.tf)
}

// Matches reports whether the object is already placed at t.
func (o *ImageObject) Matches(t stencil.Transform) bool {
	return o.tf == t
}
