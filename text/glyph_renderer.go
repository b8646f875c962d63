package text

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/linekit"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphRenderer produces outlines for glyphs.
//
// Refresh renders g and marks it processed. Close releases the renderer;
// it is called exactly once after the last Refresh.
type GlyphRenderer interface {
	Refresh(g *Glyph)
	Close() error
}

// RendererFactory creates a GlyphRenderer. Process calls it lazily, at most
// once per call, on the first glyph that needs rendering.
type RendererFactory func() (GlyphRenderer, error)

// DefaultRendererFactory renders with the fixed 7x13 bitmap face from
// golang.org/x/image/font/basicfont.
func DefaultRendererFactory() (GlyphRenderer, error) {
	return NewFaceRenderer(basicfont.Face7x13)
}

// FaceRenderer rasterizes glyphs through a golang.org/x/image font.Face.
// The face is not safe for concurrent use, and neither is FaceRenderer.
type FaceRenderer struct {
	face font.Face
}

// NewFaceRenderer creates a renderer drawing with face. The renderer takes
// ownership of face and closes it on Close.
func NewFaceRenderer(face font.Face) (*FaceRenderer, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	return &FaceRenderer{face: face}, nil
}

// OpenTypeRendererFactory parses ttf once and returns a factory creating a
// fresh opentype face of the given size for every renderer.
func OpenTypeRendererFactory(ttf []byte, size float64) (RendererFactory, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, ErrInvalidSize
	}
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return func() (GlyphRenderer, error) {
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingNone,
		})
		if err != nil {
			return nil, fmt.Errorf("text: create face: %w", err)
		}
		return NewFaceRenderer(face)
	}, nil
}

// Refresh implements GlyphRenderer. Glyphs the face cannot draw (spaces,
// missing runes) are still marked processed, with a nil Bitmap.
func (r *FaceRenderer) Refresh(g *Glyph) {
	if g == nil || g.Processed {
		return
	}
	g.Processed = true

	dr, mask, maskp, advance, ok := r.face.Glyph(fixed.Point26_6{}, g.Rune)
	if !ok || dr.Empty() {
		return
	}

	// The face reuses its mask buffer between calls.
	alpha := image.NewAlpha(dr)
	draw.Draw(alpha, dr, mask, maskp, draw.Src)
	g.Bitmap = &GlyphBitmap{
		Mask:    alpha,
		Bounds:  dr,
		Advance: float64(advance) / 64,
	}
}

// Close implements GlyphRenderer.
func (r *FaceRenderer) Close() error {
	return r.face.Close()
}

// lazyRenderer acquires a renderer on first use and releases it once.
type lazyRenderer struct {
	factory RendererFactory
	r       GlyphRenderer
	failed  bool
}

// refresh renders g unless it is already processed. A failed factory is
// not retried within the same call; glyphs stay unprocessed.
func (l *lazyRenderer) refresh(g *Glyph) {
	if g == nil || g.Processed || l.failed {
		return
	}
	if l.r == nil {
		r, err := l.factory()
		if err != nil || r == nil {
			l.failed = true
			linekit.Logger().Warn("text: glyph renderer unavailable", "err", err)
			return
		}
		l.r = r
		linekit.Logger().Debug("text: glyph renderer acquired")
	}
	l.r.Refresh(g)
}

// release closes the renderer if one was acquired.
func (l *lazyRenderer) release() {
	if l.r == nil {
		return
	}
	if err := l.r.Close(); err != nil {
		linekit.Logger().Warn("text: glyph renderer release failed", "err", err)
	}
	l.r = nil
	linekit.Logger().Debug("text: glyph renderer released")
}
