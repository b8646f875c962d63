// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster provides scanline filling of polygons built from
// linekit lines.
//
// Rows are sampled at integer y. A side contributes to row y when y lies in
// the half-open span [ceil(min y), ceil(max y)) of its endpoints, so a
// vertex shared by two sides is counted exactly once. Within a row, pixels
// x with ceil(left) <= x < ceil(right) of every inside span are covered.
package raster

import (
	"image"
	"math"
	"slices"

	"github.com/gogpu/linekit"
)

// FillRule specifies how to determine which areas are inside a polygon.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// String returns the string representation of the fill rule.
func (r FillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return "unknown"
	}
}

// Filler performs scanline filling into alpha masks.
// A Filler reuses its crossing buffer and is not safe for concurrent use.
type Filler struct {
	crossings []crossing
}

// NewFiller creates a new filler.
func NewFiller() *Filler {
	return &Filler{crossings: make([]crossing, 0, 32)}
}

// Fill covers the area enclosed by sides. Sides need not be ordered, but
// together they must form closed loops. Covered pixels take the larger of
// their current alpha and a.
func (f *Filler) Fill(dst *image.Alpha, sides []linekit.Line, rule FillRule, a uint8) {
	if dst == nil || len(sides) < 2 || a == 0 {
		return
	}

	area := linekit.ToArea(sides)
	if area.Height() <= 0 {
		return
	}

	b := dst.Bounds()
	y0 := max(int(math.Floor(area.MinY)), b.Min.Y)
	y1 := min(int(math.Ceil(area.MaxY)), b.Max.Y)

	for y := y0; y < y1; y++ {
		f.scanline(dst, sides, y, rule, a)
	}
}

// scanline collects the crossings on row y and fills the inside spans.
func (f *Filler) scanline(dst *image.Alpha, sides []linekit.Line, y int, rule FillRule, a uint8) {
	axis := float64(y)
	f.crossings = f.crossings[:0]
	for _, s := range sides {
		x, ok := s.Scan(axis, true)
		if !ok {
			continue
		}
		f.crossings = append(f.crossings, crossing{x: x, dir: s.Direction(axis, true)})
	}
	if len(f.crossings) < 2 {
		return
	}

	slices.SortFunc(f.crossings, func(p, q crossing) int {
		switch {
		case p.x < q.x:
			return -1
		case p.x > q.x:
			return 1
		default:
			return 0
		}
	})

	if rule == FillRuleEvenOdd {
		for i := 0; i+1 < len(f.crossings); i += 2 {
			fillSpan(dst, f.crossings[i].x, f.crossings[i+1].x, y, a)
		}
		return
	}

	winding := 0
	var left float64
	for _, c := range f.crossings {
		if winding == 0 {
			left = c.x
		}
		winding += int(c.dir)
		if winding == 0 {
			fillSpan(dst, left, c.x, y, a)
		}
	}
}

// crossing is a side's intersection with the current row.
type crossing struct {
	x   float64
	dir int8
}

// fillSpan covers pixels [ceil(x1), ceil(x2)) on row y, clipped to dst.
func fillSpan(dst *image.Alpha, x1, x2 float64, y int, a uint8) {
	b := dst.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	lo := max(int(math.Ceil(x1)), b.Min.X)
	hi := min(int(math.Ceil(x2)), b.Max.X)
	if lo >= hi {
		return
	}

	row := dst.Pix[dst.PixOffset(lo, y):dst.PixOffset(hi, y)]
	for i, v := range row {
		if v < a {
			row[i] = a
		}
	}
}

// FillPolygon fills the closed polygon through points with the non-zero
// winding rule. The last point connects back to the first.
func FillPolygon(dst *image.Alpha, points []linekit.Vector, a uint8) {
	NewFiller().Fill(dst, Polygon(points), FillRuleNonZero, a)
}

// FillStroke fills the outline of l stroked with s.
func FillStroke(dst *image.Alpha, l linekit.Line, s linekit.Stroke, a uint8) {
	sides := s.Sides(l)
	NewFiller().Fill(dst, sides[:], FillRuleNonZero, a)
}

// Polygon returns the sides of the closed polygon through points.
// Fewer than three points yield no sides.
func Polygon(points []linekit.Vector) []linekit.Line {
	if len(points) < 3 {
		return nil
	}
	sides := make([]linekit.Line, 0, len(points))
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sides = append(sides, linekit.LineFrom(p, q))
	}
	return sides
}
