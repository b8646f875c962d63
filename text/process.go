package text

import (
	"unicode"

	"github.com/gogpu/linekit"
)

// ProcessLine lays out a single line. See Process.
func ProcessLine(line *GlyphLine, sink Sink, opts ...Option) bool {
	if line == nil {
		return false
	}
	return Process([]*GlyphLine{line}, sink, opts...)
}

// Process lays out lines in order and delivers the whole batch to sink in
// a single call.
//
// For every line, glyphs are visited in index order:
//   - whitespace and control characters produce nothing
//   - glyphs rejected by the filter are dropped and their width is removed
//     from the position of every later glyph on the line
//   - after MaxVisible glyphs, up to three copies of the line's Dot are
//     emitted and the rest of the line is skipped
//   - positions are transformed by the rotation and scale, pivoting at the
//     rotation center or the line center, then offset by the line origin
//   - glyphs not yet processed are rendered once
//
// Process returns false without calling sink when lines is nil or any line
// is nil or invalid; otherwise it returns true, even if every glyph was
// filtered out. The renderer, if one was acquired, is closed before
// Process returns.
func Process(lines []*GlyphLine, sink Sink, opts ...Option) bool {
	if lines == nil {
		return false
	}
	total := 0
	for _, l := range lines {
		if !l.Valid() {
			return false
		}
		total += len(l.Glyphs)
	}

	cfg := resolveConfig(opts)
	renderer := &lazyRenderer{factory: cfg.Renderer}
	defer renderer.release()

	batch := make([]PlacedGlyph, 0, total)
	for i, line := range lines {
		ll := newLineLayout(&cfg, renderer, i, line)
		batch = ll.layout(batch)
	}

	linekit.Logger().Debug("text: layout complete", "lines", len(lines), "glyphs", len(batch))
	if sink != nil {
		sink.Deliver(batch)
	}
	return true
}

// lineLayout holds the state for laying out one line.
type lineLayout struct {
	cfg      *Config
	renderer *lazyRenderer
	line     *GlyphLine
	lineIdx  int

	origin linekit.Vector
	xf     linekit.Matrix
	linear linekit.Matrix

	// wrap state
	rowShift float64
	rowY     float64
}

func newLineLayout(cfg *Config, r *lazyRenderer, idx int, line *GlyphLine) *lineLayout {
	xf := cfg.transform(line)
	return &lineLayout{
		cfg:      cfg,
		renderer: r,
		line:     line,
		lineIdx:  idx,
		origin:   line.Origin(),
		xf:       xf,
		linear:   xf.Linear(),
	}
}

func (ll *lineLayout) layout(batch []PlacedGlyph) []PlacedGlyph {
	line := ll.line
	index := -1
	ghost := 0.0
	dots := 0
	var dotStart linekit.Vector

	for i := range line.Glyphs {
		g := &line.Glyphs[i]
		if skipRune(g.Rune) {
			continue
		}

		isDot := line.Dot != nil && g.Rune == line.Dot.Rune
		if !isDot && !ll.cfg.Filter.Allows(g.Rune) {
			ghost += g.Width
			continue
		}

		index++
		if ll.cfg.MaxVisible > 0 && index >= ll.cfg.MaxVisible {
			if line.Dot == nil {
				break
			}
			if dots == 0 {
				dotStart = linekit.V(g.X-ghost, line.Dot.Y)
				linekit.Logger().Debug("text: line truncated", "line", ll.lineIdx, "at", i)
			}
			pos := dotStart.Add(linekit.V(float64(dots)*line.Dot.Width, 0))
			batch = ll.place(batch, line.Dot, i, pos, true)
			dots++
			if dots == maxEllipsis {
				break
			}
			continue
		}

		batch = ll.place(batch, g, i, linekit.V(g.X-ghost, g.Y), false)
	}
	return batch
}

// place transforms a glyph at the line-local position and appends it.
func (ll *lineLayout) place(batch []PlacedGlyph, g *Glyph, idx int, local linekit.Vector, ellipsis bool) []PlacedGlyph {
	local = ll.wrap(local, g.Width)
	pg := PlacedGlyph{
		Glyph:     g,
		Line:      ll.lineIdx,
		Index:     idx,
		Ellipsis:  ellipsis,
		Offset:    ll.xf.TransformPoint(local).Add(ll.origin),
		Transform: ll.linear,
		Baseline:  ll.line.Baseline - g.Y,
	}
	if !ll.cfg.Bounds.Empty() && !pg.Bounds().Intersects(ll.cfg.Bounds) {
		return batch
	}
	ll.renderer.refresh(g)
	return append(batch, pg)
}

// wrap moves local to a new row when the glyph would pass WrapWidth.
func (ll *lineLayout) wrap(local linekit.Vector, width float64) linekit.Vector {
	if ll.cfg.WrapWidth <= 0 {
		return local
	}
	x := local.X - ll.rowShift
	if x > 0 && x+width > ll.cfg.WrapWidth {
		ll.rowShift = local.X
		ll.rowY += ll.line.Height
		x = 0
	}
	return linekit.V(x, local.Y+ll.rowY)
}

// skipRune reports whether r is whitespace or a control character.
func skipRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
