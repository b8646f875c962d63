package text

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper turns strings into GlyphLines using go-text/typesetting.
//
// Shaper is safe for concurrent use. The parsed font.Font is shared and
// read-only; every Shape call creates its own font.Face, and HarfbuzzShaper
// instances are pooled since they are not safe for concurrent use.
type Shaper struct {
	font *font.Font
	pool sync.Pool
}

// NewShaper parses ttf (TrueType or OpenType data) and returns a Shaper.
func NewShaper(ttf []byte) (*Shaper, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Shaper{
		font: face.Font,
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Shape lays str out left to right on a single line at the origin. Each
// glyph box spans the full line height and its X is the pen position.
// The line's Dot is the shaped full stop.
func (s *Shaper) Shape(str string, size float64) (*GlyphLine, error) {
	if size <= 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return nil, ErrInvalidSize
	}

	text := []rune(str)
	out := s.shape(text, size)

	ascent := fixedToFloat(out.LineBounds.Ascent)
	height := fixedToFloat(out.LineBounds.LineThickness())

	line := &GlyphLine{
		Glyphs:   make([]Glyph, 0, len(out.Glyphs)),
		Height:   height,
		Baseline: ascent,
	}

	var x float64
	for _, g := range out.Glyphs {
		adv := fixedToFloat(g.XAdvance)
		r := rune(0)
		if idx := g.TextIndex(); idx >= 0 && idx < len(text) {
			r = text[idx]
		}
		line.Glyphs = append(line.Glyphs, Glyph{
			Rune:   r,
			ID:     uint32(g.GlyphID),
			X:      x + fixedToFloat(g.XOffset),
			Y:      fixedToFloat(-g.YOffset),
			Width:  adv,
			Height: height,
		})
		x += adv
	}
	line.Width = x

	dot := s.shape([]rune{'.'}, size)
	if len(dot.Glyphs) > 0 {
		g := dot.Glyphs[0]
		line.Dot = &Glyph{
			Rune:   '.',
			ID:     uint32(g.GlyphID),
			Width:  fixedToFloat(g.XAdvance),
			Height: height,
		}
	}
	return line, nil
}

func (s *Shaper) shape(text []rune, size float64) shaping.Output {
	input := shaping.Input{
		Text:      text,
		RunStart:  0,
		RunEnd:    len(text),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(s.font),
		Size:      floatToFixed(size),
		Script:    detectScript(text),
		Language:  language.NewLanguage("en"),
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)
	return hb.Shape(input)
}

// detectScript returns the script of the first non-space rune.
func detectScript(text []rune) language.Script {
	for _, r := range text {
		if skipRune(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
