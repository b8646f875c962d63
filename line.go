// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package linekit

import "math"

// Epsilon is the tolerance shared by all kernel comparisons.
const Epsilon = 1e-6

// LineDirection classifies the geometric degeneracy of a line.
type LineDirection uint8

const (
	// DirectionPoint is a line whose endpoints coincide within Epsilon.
	DirectionPoint LineDirection = iota

	// DirectionHorizontal is a line with no vertical extent.
	DirectionHorizontal

	// DirectionVertical is a line with no horizontal extent.
	DirectionVertical

	// DirectionDiagonal is any other line.
	DirectionDiagonal
)

// String returns the string representation of the direction.
func (d LineDirection) String() string {
	switch d {
	case DirectionPoint:
		return "Point"
	case DirectionHorizontal:
		return "Horizontal"
	case DirectionVertical:
		return "Vertical"
	case DirectionDiagonal:
		return "Diagonal"
	default:
		return "Unknown"
	}
}

// SlopeType tells which axis a rasterizer should treat as primary.
type SlopeType uint8

const (
	// NonSteep lines have |dy| <= |dx| and are stepped along X.
	NonSteep SlopeType = iota

	// Steep lines have |dy| > |dx| and are stepped along Y.
	Steep
)

// String returns the string representation of the slope type.
func (s SlopeType) String() string {
	if s == Steep {
		return "Steep"
	}
	return "NonSteep"
}

// Classification is the result of classifying a line.
//
// M and C describe y = M*x + C. For a vertical line M holds dy and both
// values are meaningless; branch on Direction first.
type Classification struct {
	Direction LineDirection
	Slope     SlopeType
	M, C      float64
}

// Classify classifies the line from (x1, y1) to (x2, y2).
func Classify(x1, y1, x2, y2 float64) Classification {
	dx := x2 - x1
	dy := y2 - y1

	m := dy
	if dx != 0 {
		m = dy / dx
	}

	adx, ady := math.Abs(dx), math.Abs(dy)

	cls := Classification{
		Direction: DirectionDiagonal,
		Slope:     NonSteep,
		M:         m,
		C:         y1 - m*x1,
	}
	if ady > adx {
		cls.Slope = Steep
	}

	switch {
	case adx <= Epsilon && ady <= Epsilon:
		cls.Direction = DirectionPoint
	case adx <= Epsilon:
		cls.Direction = DirectionVertical
	case ady <= Epsilon:
		cls.Direction = DirectionHorizontal
	}
	return cls
}

// Line is an immutable line segment from (X1, Y1) to (X2, Y2).
//
// The zero value is invalid. Every operation on an invalid line returns a
// documented default instead of panicking.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// L is a convenience function to create a Line.
func L(x1, y1, x2, y2 float64) Line {
	return Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// LineFrom creates a Line between two points.
func LineFrom(p1, p2 Vector) Line {
	return Line{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}
}

// Valid reports whether the line holds usable coordinates: all four must be
// finite and not all zero.
func (l Line) Valid() bool {
	if !l.P1().finite() || !l.P2().finite() {
		return false
	}
	return l.X1 != 0 || l.Y1 != 0 || l.X2 != 0 || l.Y2 != 0
}

// P1 returns the first endpoint.
func (l Line) P1() Vector { return Vector{X: l.X1, Y: l.Y1} }

// P2 returns the second endpoint.
func (l Line) P2() Vector { return Vector{X: l.X2, Y: l.Y2} }

// Delta returns P2 - P1.
func (l Line) Delta() Vector { return Vector{X: l.X2 - l.X1, Y: l.Y2 - l.Y1} }

// Length returns the Euclidean length of the segment.
func (l Line) Length() float64 {
	if !l.Valid() {
		return 0
	}
	return l.Delta().Length()
}

// Midpoint returns the center of the segment.
func (l Line) Midpoint() Vector {
	return Vector{X: (l.X1 + l.X2) / 2, Y: (l.Y1 + l.Y2) / 2}
}

// Reverse returns the line with its endpoints swapped.
func (l Line) Reverse() Line {
	return Line{X1: l.X2, Y1: l.Y2, X2: l.X1, Y2: l.Y1}
}

// Bounds returns the bounding rectangle of the line.
// An invalid line yields the zero Rect.
func (l Line) Bounds() Rect {
	if !l.Valid() {
		return Rect{}
	}
	return Rect{
		MinX: min(l.X1, l.X2),
		MinY: min(l.Y1, l.Y2),
		MaxX: max(l.X1, l.X2),
		MaxY: max(l.Y1, l.Y2),
	}
}

// Classify classifies the line. An invalid line yields the zero
// Classification (DirectionPoint).
func (l Line) Classify() Classification {
	if !l.Valid() {
		return Classification{}
	}
	return Classify(l.X1, l.Y1, l.X2, l.Y2)
}

// Slope returns M of y = M*x + C. It is 0 for an invalid line and equals
// dy for a vertical one.
func (l Line) Slope() float64 {
	return l.Classify().M
}

// Scan solves the line equation for the coordinate missing on a scan line.
//
// When horizontal is true, axis is a target Y and the X on that row is
// returned; otherwise axis is a target X and the Y on that column is
// returned. The result is (NaN, false) when the line is invalid, is a
// point, runs parallel to the scan (a horizontal scan of a horizontal line
// or a vertical scan of a vertical line), or when axis lies outside the
// half-open span [ceil(min), ceil(max)) of the endpoints.
func (l Line) Scan(axis float64, horizontal bool) (float64, bool) {
	if !l.Valid() || math.IsNaN(axis) {
		return math.NaN(), false
	}

	cls := Classify(l.X1, l.Y1, l.X2, l.Y2)
	if cls.Direction == DirectionPoint {
		return math.NaN(), false
	}

	if horizontal {
		if cls.Direction == DirectionHorizontal || !inSpan(l.Y1, l.Y2, axis) {
			return math.NaN(), false
		}
		if cls.Direction == DirectionVertical {
			return l.X1, true
		}
		return (axis - cls.C) / cls.M, true
	}

	if cls.Direction == DirectionVertical || !inSpan(l.X1, l.X2, axis) {
		return math.NaN(), false
	}
	if cls.Direction == DirectionHorizontal {
		return l.Y1, true
	}
	return cls.M*axis + cls.C, true
}

// inSpan reports whether v lies in [ceil(lo), ceil(hi)) where lo and hi
// are a and b in ascending order.
func inSpan(a, b, v float64) bool {
	lo, hi := math.Ceil(a), math.Ceil(b)
	if a > b {
		lo, hi = math.Ceil(b), math.Ceil(a)
	}
	return v >= lo && v < hi
}

// Direction reports how the line runs along the scan coordinate: +1 when
// increasing the coordinate moves from P1 toward P2, -1 when it moves away.
// The coordinate is Y when horizontal is true and X otherwise. A line with
// no extent along the coordinate reports +1. An invalid line or a NaN axis
// reports 0.
//
// Rasterizers use the result as the winding contribution of an edge.
func (l Line) Direction(axis float64, horizontal bool) int8 {
	if !l.Valid() || math.IsNaN(axis) {
		return 0
	}
	e1, e2 := l.Y1, l.Y2
	if !horizontal {
		e1, e2 = l.X1, l.X2
	}
	// Signed distances from the scan position; P2 lies further along the
	// coordinate than P1 exactly when its distance is larger.
	if e2-axis >= e1-axis {
		return 1
	}
	return -1
}
