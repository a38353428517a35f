package stencil

// BoundingBox returns the canvas-space box of an imgW x imgH image placed by t.
func BoundingBox(imgW, imgH float64, t Transform) Rect {
	w := imgW * t.Scale
	h := imgH * t.Scale
	return Rect{Left: t.X - w/2, Top: t.Y - h/2, Width: w, Height: h}
}

// ClampPosition corrects the candidate position (x, y), whose image occupies
// box, so that no image edge retracts inside the frame. Each axis is handled
// on its own: the near edge is checked first, then the far edge, and the far
// edge correction wins if both fire. Both fire only for an image smaller than
// the frame, e.g. right after a scale-down.
func ClampPosition(box Rect, f Frame, x, y float64) (float64, float64) {
	nx, ny := x, y

	if box.Left > f.Left {
		nx = x - (box.Left - f.Left)
	}
	if box.Right() < f.Right() {
		nx = x + (f.Right() - box.Right())
	}

	if box.Top > f.Top {
		ny = y - (box.Top - f.Top)
	}
	if box.Bottom() < f.Bottom() {
		ny = y + (f.Bottom() - box.Bottom())
	}

	return nx, ny
}

// Clamp returns t with its position corrected by ClampPosition. The scale is
// left alone.
func Clamp(imgW, imgH float64, t Transform, f Frame) Transform {
	if imgW <= 0 || imgH <= 0 {
		return t
	}
	t.X, t.Y = ClampPosition(BoundingBox(imgW, imgH, t), f, t.X, t.Y)
	return t
}
