package render

// Config bundles the settings for one render call. Use the With*
// options to override individual fields from [defaults].
type Config struct {
	IncludeMark bool    // draw mark labels
	StrokeWidth float64 // bar stroke width, in drawing units
	ColorStyle  string  // "shape color", a named color, or "#rrggbb"
	FontFamily  string  // dimension label font
	FontSize    float64 // dimension label size, in drawing units
	Precision   int     // decimal places for length labels
	Scale       float64 // uniform scale when no max constraint is set
	MaxHeight   float64 // shape canvas height limit; 0 = unconstrained
	MaxWidth    float64 // shape canvas width limit; 0 = unconstrained
	RowHeight   float64 // cut-list row height
	Width       float64 // cut-list sheet width
}

// defaults returns the stock configuration.
func defaults() Config {
	return Config{
		IncludeMark: true,
		StrokeWidth: 0.35,
		ColorStyle:  "shape color",
		FontFamily:  "DejaVu Sans",
		FontSize:    2,
		Precision:   2,
		Scale:       1,
		RowHeight:   40,
		Width:       60,
	}
}

// Option overrides a single configuration field.
type Option func(*Config)

// WithMark toggles mark labels.
func WithMark(include bool) Option {
	return func(c *Config) { c.IncludeMark = include }
}

// WithStrokeWidth sets the bar stroke width.
func WithStrokeWidth(w float64) Option {
	return func(c *Config) { c.StrokeWidth = w }
}

// WithColorStyle sets the bar color policy ("shape color", a named
// color, or a "#rrggbb" value).
func WithColorStyle(s string) Option {
	return func(c *Config) { c.ColorStyle = s }
}

// WithFontFamily sets the dimension label font family.
func WithFontFamily(f string) Option {
	return func(c *Config) { c.FontFamily = f }
}

// WithFontSize sets the dimension label font size.
func WithFontSize(s float64) Option {
	return func(c *Config) { c.FontSize = s }
}

// WithPrecision sets the number of decimal places for length labels.
func WithPrecision(p int) Option {
	return func(c *Config) { c.Precision = p }
}

// WithScale sets the explicit scale factor. Ignored when a max height
// or width constraint is active.
func WithScale(s float64) Option {
	return func(c *Config) { c.Scale = s }
}

// WithMaxHeight constrains the shape canvas height; the scale is then
// derived instead of taken from WithScale.
func WithMaxHeight(h float64) Option {
	return func(c *Config) { c.MaxHeight = h }
}

// WithMaxWidth constrains the shape canvas width; the scale is then
// derived instead of taken from WithScale.
func WithMaxWidth(w float64) Option {
	return func(c *Config) { c.MaxWidth = w }
}

// WithRowHeight sets the cut-list row height.
func WithRowHeight(h float64) Option {
	return func(c *Config) { c.RowHeight = h }
}

// WithWidth sets the cut-list sheet width.
func WithWidth(w float64) Option {
	return func(c *Config) { c.Width = w }
}

func newConfig(opts ...Option) Config {
	cfg := defaults()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
