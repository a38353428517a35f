package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Alignment specifies the horizontal alignment of a split row.
type Alignment int

const (
	alignLeft Alignment = iota
	alignCenter
	alignOpposed
)

// SplitAlign is a namespace for the Alignment constants.
var SplitAlign = struct {
	Left    Alignment // both widgets packed to the left
	Center  Alignment // both widgets centered
	Opposed Alignment // first widget left, second right
}{
	Left:    alignLeft,
	Center:  alignCenter,
	Opposed: alignOpposed,
}

// FirstWidgetProportion is the share of the row given to the first widget.
type FirstWidgetProportion float32

// SplitProportion is a namespace for the common proportions.
var SplitProportion = struct {
	OneThird  FirstWidgetProportion
	TwoThirds FirstWidgetProportion
}{
	OneThird:  1.0 / 3,
	TwoThirds: 2.0 / 3,
}

// splitLayout lays out two widgets side by side.
type splitLayout struct {
	widget1    fyne.CanvasObject
	widget2    fyne.CanvasObject
	proportion FirstWidgetProportion
	alignment  Alignment
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	w1, w2 := s.widget1.MinSize(), s.widget2.MinSize()
	return fyne.NewSize(w1.Width+w2.Width, fyne.Max(w1.Height, w2.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	width1 := size.Width * float32(s.proportion)
	width2 := size.Width - width1

	s.widget1.Resize(fyne.NewSize(width1, s.widget1.MinSize().Height))
	s.widget2.Resize(fyne.NewSize(width2, s.widget2.MinSize().Height))

	var x1, x2 float32
	switch s.alignment {
	case alignLeft:
		x2 = width1
	case alignOpposed:
		x2 = size.Width - width2
	case alignCenter:
		x1 = (size.Width - width1 - width2) / 2
		x2 = x1 + width1
	}
	s.widget1.Move(fyne.NewPos(x1, 0))
	s.widget2.Move(fyne.NewPos(x2, 0))
}

// NewSplitRowWithAlignment creates a split row with the given proportion and alignment.
func NewSplitRowWithAlignment(widget1, widget2 fyne.CanvasObject, proportion FirstWidgetProportion, alignment Alignment) *fyne.Container {
	return container.New(&splitLayout{
		widget1:    widget1,
		widget2:    widget2,
		proportion: proportion,
		alignment:  alignment,
	}, widget1, widget2)
}

// NewSplitRow creates a left-aligned split row.
func NewSplitRow(widget1, widget2 fyne.CanvasObject, proportion FirstWidgetProportion) *fyne.Container {
	return NewSplitRowWithAlignment(widget1, widget2, proportion, alignLeft)
}
