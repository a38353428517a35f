package stencil

import "math"

// CoverScale returns the smallest uniform scale at which an imgW x imgH image,
// centered on the frame, covers it. One scaled dimension matches the frame
// exactly and the other is equal or larger.
func CoverScale(imgW, imgH float64, f Frame) float64 {
	if imgW <= 0 || imgH <= 0 {
		return 1
	}
	if imgW/imgH >= f.Aspect() {
		// Relatively wider than the frame: match heights.
		return f.Height / imgH
	}
	return f.Width / imgW
}

// MinZoom returns the lowest scale at which the image still covers the frame
// in both dimensions. It is the same threshold CoverScale finds.
func MinZoom(imgW, imgH float64, f Frame) float64 {
	if imgW <= 0 || imgH <= 0 {
		return 1
	}
	return math.Max(f.Width/imgW, f.Height/imgH)
}

// InitialTransform places the image at its cover scale on the frame center.
func InitialTransform(imgW, imgH float64, f Frame) Transform {
	cx, cy := f.Center()
	return Transform{Scale: CoverScale(imgW, imgH, f), X: cx, Y: cy}
}

// FocusTransform is InitialTransform moved so the image point (fx, fy) lands
// on the frame center as far as the bounds allow.
func FocusTransform(imgW, imgH float64, f Frame, fx, fy float64) Transform {
	t := InitialTransform(imgW, imgH, f)
	t.X += (imgW/2 - fx) * t.Scale
	t.Y += (imgH/2 - fy) * t.Scale
	return Clamp(imgW, imgH, t, f)
}
