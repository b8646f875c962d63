package text

import (
	"image"
	"math"
	"strings"

	"github.com/gogpu/linekit"
)

// Glyph is a single shaped glyph inside a GlyphLine.
//
// Glyphs are owned by the shaping stage. Layout only reads them, except
// that the renderer sets Processed and Bitmap the first time a glyph is
// refreshed.
type Glyph struct {
	// Rune is the character the glyph represents.
	Rune rune

	// ID is the font glyph index, when known.
	ID uint32

	// X, Y is the top-left corner of the glyph box relative to the line origin.
	X, Y float64

	// Width is the advance of the glyph; Height is the box height.
	Width, Height float64

	// Processed is true once a renderer has produced the glyph's outline.
	Processed bool

	// Bitmap holds the rendered outline, if any.
	Bitmap *GlyphBitmap
}

// GlyphBitmap is the alpha coverage produced for a glyph.
type GlyphBitmap struct {
	// Mask is the coverage image; its bounds equal Bounds.
	Mask *image.Alpha

	// Bounds is relative to the glyph's baseline origin.
	Bounds image.Rectangle

	// Advance is the renderer's advance width.
	Advance float64
}

// GlyphLine is an ordered run of glyphs sharing one baseline.
type GlyphLine struct {
	// Glyphs in render order.
	Glyphs []Glyph

	// X, Y is the draw origin (top-left) of the line.
	X, Y float64

	// Width and Height are the extent of the line box.
	Width, Height float64

	// Baseline is the distance from the top of the line box to the baseline.
	Baseline float64

	// Dot is the ellipsis placeholder substituted for truncated glyphs.
	// A nil Dot truncates without placeholders.
	Dot *Glyph
}

// Valid reports whether the line can be laid out: it must be non-nil with
// a finite origin and a finite, non-negative size.
func (l *GlyphLine) Valid() bool {
	if l == nil {
		return false
	}
	for _, v := range [...]float64{l.X, l.Y, l.Width, l.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return l.Width >= 0 && l.Height >= 0
}

// Origin returns the draw origin of the line.
func (l *GlyphLine) Origin() linekit.Vector {
	return linekit.V(l.X, l.Y)
}

// Center returns the absolute geometric center of the line box.
func (l *GlyphLine) Center() linekit.Vector {
	return linekit.V(l.X+l.Width/2, l.Y+l.Height/2)
}

// Bounds returns the line box.
func (l *GlyphLine) Bounds() linekit.Rect {
	return linekit.Rect{MinX: l.X, MinY: l.Y, MaxX: l.X + l.Width, MaxY: l.Y + l.Height}
}

// String returns the characters of the line in render order.
func (l *GlyphLine) String() string {
	var b strings.Builder
	for i := range l.Glyphs {
		b.WriteRune(l.Glyphs[i].Rune)
	}
	return b.String()
}

// PlacedGlyph is one entry of a layout batch.
type PlacedGlyph struct {
	// Glyph is the source glyph, or the line's Dot for ellipsis entries.
	Glyph *Glyph

	// Line is the index of the line in the processed sequence.
	Line int

	// Index is the position in GlyphLine.Glyphs that produced this entry.
	Index int

	// Ellipsis marks entries substituted by truncation.
	Ellipsis bool

	// Offset is the absolute position of the glyph box's top-left corner.
	Offset linekit.Vector

	// Transform is the rotation/scale to apply to the glyph about Offset.
	// It has no translation.
	Transform linekit.Matrix

	// Baseline is the distance from the glyph box top to its baseline,
	// before Transform.
	Baseline float64
}

// Bounds returns the axis-aligned bounds of the transformed glyph box.
func (p PlacedGlyph) Bounds() linekit.Rect {
	if p.Glyph == nil {
		return linekit.Rect{MinX: p.Offset.X, MinY: p.Offset.Y, MaxX: p.Offset.X, MaxY: p.Offset.Y}
	}
	w, h := p.Glyph.Width, p.Glyph.Height
	r := linekit.Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, c := range [4]linekit.Vector{{}, {X: w}, {Y: h}, {X: w, Y: h}} {
		q := p.Offset.Add(p.Transform.TransformVector(c))
		r.MinX, r.MaxX = min(r.MinX, q.X), max(r.MaxX, q.X)
		r.MinY, r.MaxY = min(r.MinY, q.Y), max(r.MaxY, q.Y)
	}
	return r
}

// GlyphToDevice returns the transform mapping glyph bitmap space (origin
// at the baseline) to device space.
func (p PlacedGlyph) GlyphToDevice() linekit.Matrix {
	return linekit.Translate(p.Offset.X, p.Offset.Y).
		Multiply(p.Transform).
		Multiply(linekit.Translate(0, p.Baseline))
}
