package editor

import "github.com/dixieflatline76/Stencil/pkg/stencil"

// State is a snapshot of the editor store. Transforms are copies; mutating
// them has no effect on the store.
type State struct {
	ImageSource string             // data URL of the loaded image, empty when none
	Current     *stencil.Transform // nil until the image has been fit
	Initial     *stencil.Transform // snapshot restored by Reset
}

// HasImage reports whether an image source is set.
func (s State) HasImage() bool {
	return s.ImageSource != ""
}

// Ready reports whether the image has been fit and can be edited.
func (s State) Ready() bool {
	return s.HasImage() && s.Current != nil
}

func (s State) clone() State {
	out := State{ImageSource: s.ImageSource}
	if s.Current != nil {
		out.Current = s.Current.Ptr()
	}
	if s.Initial != nil {
		out.Initial = s.Initial.Ptr()
	}
	return out
}

// Origin says who wrote a transform, so listeners can skip their own echoes.
type Origin int

// Origins of state changes
const (
	OriginUser       Origin = iota // toolbar or menu action
	OriginController               // gesture or zoom command committed by the controller
	OriginBinding                  // render binding writing back a fit or a re-clamp
	OriginReset                    // reset to the initial transform
)

func (o Origin) String() string {
	switch o {
	case OriginUser:
		return "user"
	case OriginController:
		return "controller"
	case OriginBinding:
		return "binding"
	case OriginReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ChangeKind names the action that produced a change.
type ChangeKind int

// Store actions
const (
	ImageSet ChangeKind = iota
	InitialTransformSet
	TransformSet
	TransformReset
	ImageCleared
)

func (k ChangeKind) String() string {
	switch k {
	case ImageSet:
		return "image-set"
	case InitialTransformSet:
		return "initial-transform-set"
	case TransformSet:
		return "transform-set"
	case TransformReset:
		return "transform-reset"
	case ImageCleared:
		return "image-cleared"
	default:
		return "unknown"
	}
}

// Change is delivered to subscribers after every store action.
type Change struct {
	Kind   ChangeKind
	Origin Origin
	Prev   State
	Next   State
}
