package config

// Preference keys for the editor geometry
const (
	editorPrefix     = "editor_"
	CanvasWidthKey   = editorPrefix + "canvas_width"
	CanvasHeightKey  = editorPrefix + "canvas_height"
	StencilWidthKey  = editorPrefix + "stencil_width"
	StencilHeightKey = editorPrefix + "stencil_height"
	StencilRadiusKey = editorPrefix + "stencil_radius"
	ZoomStepKey      = editorPrefix + "zoom_step"
	MaxZoomKey       = editorPrefix + "max_zoom"
	WheelZoomBaseKey = editorPrefix + "wheel_zoom_base"
)

const (
	defaultCanvasSize    = 600
	defaultStencilSize   = 400
	defaultRadius        = 20
	defaultZoomStep      = 1.1
	defaultMaxZoom       = 5.0
	defaultWheelZoomBase = 0.999
)

// EditorConfig holds the canvas and stencil geometry plus the zoom constants.
type EditorConfig struct {
	CanvasWidth   float64
	CanvasHeight  float64
	StencilWidth  float64
	StencilHeight float64
	StencilRadius float64
	ZoomStep      float64 // factor applied by the zoom buttons
	MaxZoom       float64
	WheelZoomBase float64 // scale is multiplied by WheelZoomBase^deltaY per wheel event
}

// DefaultEditorConfig returns the reference geometry: a 600x600 canvas with a
// centered 400x400 stencil and 20px corners.
func DefaultEditorConfig() EditorConfig {
	return EditorConfig{
		CanvasWidth:   defaultCanvasSize,
		CanvasHeight:  defaultCanvasSize,
		StencilWidth:  defaultStencilSize,
		StencilHeight: defaultStencilSize,
		StencilRadius: defaultRadius,
		ZoomStep:      defaultZoomStep,
		MaxZoom:       defaultMaxZoom,
		WheelZoomBase: defaultWheelZoomBase,
	}
}

// GetEditorConfig reads the editor geometry from preferences, falling back to
// the defaults for missing or invalid values.
func (c *AppConfig) GetEditorConfig() EditorConfig {
	d := DefaultEditorConfig()
	ec := EditorConfig{
		CanvasWidth:   c.positive(CanvasWidthKey, d.CanvasWidth),
		CanvasHeight:  c.positive(CanvasHeightKey, d.CanvasHeight),
		StencilWidth:  c.positive(StencilWidthKey, d.StencilWidth),
		StencilHeight: c.positive(StencilHeightKey, d.StencilHeight),
		StencilRadius: c.prefs.FloatWithFallback(StencilRadiusKey, d.StencilRadius),
		ZoomStep:      c.prefs.FloatWithFallback(ZoomStepKey, d.ZoomStep),
		MaxZoom:       c.positive(MaxZoomKey, d.MaxZoom),
		WheelZoomBase: c.prefs.FloatWithFallback(WheelZoomBaseKey, d.WheelZoomBase),
	}

	// A stencil larger than its canvas cannot be centered.
	if ec.StencilWidth > ec.CanvasWidth || ec.StencilHeight > ec.CanvasHeight {
		ec.CanvasWidth, ec.CanvasHeight = d.CanvasWidth, d.CanvasHeight
		ec.StencilWidth, ec.StencilHeight = d.StencilWidth, d.StencilHeight
	}
	if ec.StencilRadius < 0 {
		ec.StencilRadius = 0
	}
	if ec.ZoomStep <= 1 {
		ec.ZoomStep = d.ZoomStep
	}
	if ec.WheelZoomBase <= 0 || ec.WheelZoomBase >= 1 {
		ec.WheelZoomBase = d.WheelZoomBase
	}
	return ec
}

// SetEditorConfig stores the editor geometry.
func (c *AppConfig) SetEditorConfig(ec EditorConfig) {
	c.prefs.SetFloat(CanvasWidthKey, ec.CanvasWidth)
	c.prefs.SetFloat(CanvasHeightKey, ec.CanvasHeight)
	c.prefs.SetFloat(StencilWidthKey, ec.StencilWidth)
	c.prefs.SetFloat(StencilHeightKey, ec.StencilHeight)
	c.prefs.SetFloat(StencilRadiusKey, ec.StencilRadius)
	c.prefs.SetFloat(ZoomStepKey, ec.ZoomStep)
	c.prefs.SetFloat(MaxZoomKey, ec.MaxZoom)
	c.prefs.SetFloat(WheelZoomBaseKey, ec.WheelZoomBase)
}

func (c *AppConfig) positive(key string, fallback float64) float64 {
	v := c.prefs.FloatWithFallback(key, fallback)
	if v <= 0 {
		return fallback
	}
	return v
}
