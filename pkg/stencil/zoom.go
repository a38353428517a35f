package stencil

import "math"

// ClampZoom limits scale to [minZoom, maxZoom]. The upper bound never drops
// below minZoom, so an image that needs more than maxZoom to cover the frame
// is held at its cover threshold.
func ClampZoom(scale, minZoom, maxZoom float64) float64 {
	if maxZoom < minZoom {
		maxZoom = minZoom
	}
	return math.Min(math.Max(scale, minZoom), maxZoom)
}

// AnchorZoom returns the new position on one axis so that the canvas point
// under the pointer stays put when the scale goes from oldScale to newScale.
func AnchorZoom(pointer, oldPos, oldScale, newScale float64) float64 {
	if oldScale == 0 {
		return oldPos
	}
	return pointer - (pointer-oldPos)*(newScale/oldScale)
}

// WheelScale applies a wheel delta to scale. A positive deltaY (scrolling
// down) with base < 1 zooms out.
func WheelScale(scale, base, deltaY float64) float64 {
	return scale * math.Pow(base, deltaY)
}

// ZoomAt rescales t to the clamped newScale while keeping the canvas point
// (px, py) stationary, then clamps the position to the frame.
func ZoomAt(imgW, imgH float64, t Transform, f Frame, newScale, maxZoom, px, py float64) Transform {
	newScale = ClampZoom(newScale, MinZoom(imgW, imgH, f), maxZoom)
	next := Transform{
		Scale: newScale,
		X:     AnchorZoom(px, t.X, t.Scale, newScale),
		Y:     AnchorZoom(py, t.Y, t.Scale, newScale),
	}
	return Clamp(imgW, imgH, next, f)
}
