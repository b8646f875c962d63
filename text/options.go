package text

import "github.com/gogpu/linekit"

// maxEllipsis is the number of placeholders emitted by truncation.
const maxEllipsis = 3

// Config holds the layout options resolved once per Process call.
// Every field's zero value means "no effect".
type Config struct {
	// Rotation rotates every line about its explicit center, or about the
	// line's own center when none is set.
	Rotation linekit.Rotation `toml:"rotation"`

	// Scale scales glyph geometry about the same pivot.
	Scale linekit.Scale `toml:"scale"`

	// Filter drops glyphs outside the selected character classes.
	Filter Filter `toml:"filter"`

	// MaxVisible truncates each line after this many glyphs when positive.
	MaxVisible int `toml:"max_visible"`

	// Bounds culls glyphs whose placed box does not overlap it, unless empty.
	Bounds linekit.Rect `toml:"bounds"`

	// WrapWidth starts a new row one line height lower when a glyph would
	// pass this width, when positive.
	WrapWidth float64 `toml:"wrap_width"`

	// Renderer creates the glyph renderer. Nil uses DefaultRendererFactory.
	Renderer RendererFactory `toml:"-"`
}

// DefaultConfig returns a Config with no filtering, truncation or transform.
func DefaultConfig() Config {
	return Config{Filter: FilterNone}
}

// Option configures a layout call.
//
// Example:
//
//	text.Process(lines, sink,
//	    text.WithFilter(text.FilterDigitsOnly),
//	    text.WithMaxVisible(8),
//	)
type Option func(*Config)

// WithConfig replaces the whole configuration with c.
// Options given after it still apply on top.
func WithConfig(c Config) Option {
	return func(dst *Config) {
		*dst = c
	}
}

// WithRotation sets the line rotation.
func WithRotation(r linekit.Rotation) Option {
	return func(c *Config) {
		c.Rotation = r
	}
}

// WithScale sets the glyph scale.
func WithScale(s linekit.Scale) Option {
	return func(c *Config) {
		c.Scale = s
	}
}

// WithFilter sets the character filter.
func WithFilter(f Filter) Option {
	return func(c *Config) {
		c.Filter = f
	}
}

// WithMaxVisible truncates each line after n glyphs. n <= 0 disables truncation.
func WithMaxVisible(n int) Option {
	return func(c *Config) {
		c.MaxVisible = n
	}
}

// WithBounds culls glyphs outside r.
func WithBounds(r linekit.Rect) Option {
	return func(c *Config) {
		c.Bounds = r
	}
}

// WithWrapWidth wraps lines at w. w <= 0 disables wrapping.
func WithWrapWidth(w float64) Option {
	return func(c *Config) {
		c.WrapWidth = w
	}
}

// WithRenderer sets the factory for the glyph renderer.
func WithRenderer(f RendererFactory) Option {
	return func(c *Config) {
		c.Renderer = f
	}
}

// resolveConfig merges opts over the defaults in order. Nil options are skipped.
func resolveConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Renderer == nil {
		cfg.Renderer = DefaultRendererFactory
	}
	return cfg
}

// transform returns the per-line transform in line-local coordinates,
// pivoting at the configured center (absolute) or the line center.
func (c Config) transform(line *GlyphLine) linekit.Matrix {
	origin := line.Origin()
	pivot := c.Rotation.Pivot(line.Center()).Sub(origin)
	r := c.Rotation.About(pivot).WithSkew(c.Rotation.Skew.Mul(c.Scale))
	return r.Matrix(pivot)
}

// LineTransform returns the transform applied to line in absolute
// coordinates. Decorations drawn through it follow the laid out glyphs.
func (c Config) LineTransform(line *GlyphLine) linekit.Matrix {
	o := line.Origin()
	return linekit.Translate(o.X, o.Y).
		Multiply(c.transform(line)).
		Multiply(linekit.Translate(-o.X, -o.Y))
}
