package editor

import "errors"

var (
	// ErrNotDataURL is returned when an image source is not a base64 data URL.
	ErrNotDataURL = errors.New("not a base64 data URL")
	// ErrUnsupportedType is returned for files that are not a known image type.
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrNoImage is returned when an operation needs an image and none is loaded.
	ErrNoImage = errors.New("no image loaded")
	// ErrCommandQueueFull is returned when a zoom command cannot be queued.
	ErrCommandQueueFull = errors.New("command queue full")
)
