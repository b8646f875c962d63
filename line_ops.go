// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package linekit

import "math"

// Intersect returns the intersection point of segments a and b.
// ok is false when either line is invalid or zero-length, when the
// segments are parallel (colinear included), or when the crossing falls
// outside either segment.
func Intersect(a, b Line) (Vector, bool) {
	p, ok, _ := IntersectWithParallel(a, b)
	return p, ok
}

// IntersectWithParallel is Intersect that additionally reports whether the
// failure was caused by the segments being parallel.
func IntersectWithParallel(a, b Line) (p Vector, ok, parallel bool) {
	if !a.Valid() || !b.Valid() {
		return Vector{}, false, false
	}

	r, s := a.Delta(), b.Delta()
	rl, sl := r.Length(), s.Length()
	if rl == 0 || sl == 0 {
		return Vector{}, false, false
	}

	// a.P1 + t*r = b.P1 + u*s, solved with 2D cross products.
	denom := r.Cross(s)
	if math.Abs(denom) <= Epsilon*rl*sl {
		return Vector{}, false, true
	}

	qp := b.P1().Sub(a.P1())
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < -Epsilon || t > 1+Epsilon || u < -Epsilon || u > 1+Epsilon {
		return Vector{}, false, false
	}
	return a.P1().Add(r.Mul(t)), true, false
}

// IsParallel reports whether a and b run in the same or opposite
// direction. Invalid and zero-length lines are parallel to nothing.
func IsParallel(a, b Line) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	r, s := a.Delta(), b.Delta()
	rl, sl := r.Length(), s.Length()
	if rl == 0 || sl == 0 {
		return false
	}
	return math.Abs(r.Cross(s)) <= Epsilon*rl*sl
}

// DistanceFromParallel returns the perpendicular distance between two
// parallel lines, computed from their intercepts. The result is
// meaningless when the lines are not parallel; check IsParallel first.
// Invalid input yields 0.
func DistanceFromParallel(a, b Line) float64 {
	if !a.Valid() || !b.Valid() {
		return 0
	}
	ca, cb := a.Classify(), b.Classify()
	switch ca.Direction {
	case DirectionPoint:
		return 0
	case DirectionVertical:
		return math.Abs(b.X1 - a.X1)
	}
	return math.Abs(cb.C-ca.C) / math.Sqrt(1+ca.M*ca.M)
}

// AngleFrom returns the absolute difference between the headings of a and
// b as a Rotation in degrees. Invalid input yields the zero Rotation.
func AngleFrom(a, b Line) Rotation {
	if !a.Valid() || !b.Valid() {
		return Rotation{}
	}
	ha := math.Atan2(a.Y2-a.Y1, a.X2-a.X1)
	hb := math.Atan2(b.Y2-b.Y1, b.X2-b.X1)
	return Rotation{Angle: math.Abs(ha-hb) * 180 / math.Pi}
}

// Rotate returns l transformed by r, pivoting at r's center or at the
// midpoint of l. An identity rotation or an invalid line returns l as is.
func (l Line) Rotate(r Rotation) Line {
	if !l.Valid() || r.IsIdentity() {
		return l
	}
	return l.Transform(r.Matrix(l.Midpoint()))
}

// Transform returns l with both endpoints mapped through m.
func (l Line) Transform(m Matrix) Line {
	if !l.Valid() {
		return l
	}
	return LineFrom(m.TransformPoint(l.P1()), m.TransformPoint(l.P2()))
}

// Offset returns l translated by (dx, dy).
func (l Line) Offset(dx, dy float64) Line {
	if !l.Valid() {
		return l
	}
	return Line{X1: l.X1 + dx, Y1: l.Y1 + dy, X2: l.X2 + dx, Y2: l.Y2 + dy}
}

// Move slides the segment along its own direction by a signed distance.
// Positive distances move P1 toward P2; the length is preserved.
func (l Line) Move(distance float64) Line {
	if !l.Valid() {
		return l
	}
	u := l.Delta().Normalize()
	return l.Offset(u.X*distance, u.Y*distance)
}

// Extend grows both ends of the segment outward by deviation.
// A negative deviation shrinks it.
func (l Line) Extend(deviation float64) Line {
	if !l.Valid() {
		return l
	}
	d := l.Delta().Normalize().Mul(deviation)
	return LineFrom(l.P1().Sub(d), l.P2().Add(d))
}

// FindPoint returns the point at arclength distance from P1 toward P2.
// An invalid line yields the zero Vector; a zero-length one yields P1.
func (l Line) FindPoint(distance float64) Vector {
	if !l.Valid() {
		return Vector{}
	}
	return l.P1().Add(l.Delta().Normalize().Mul(distance))
}

// Perpendicular returns the foot of the perpendicular dropped from p onto
// the infinite line through l.
func (l Line) Perpendicular(p Vector) Vector {
	if !l.Valid() {
		return Vector{}
	}
	r := l.Delta()
	lsq := r.Dot(r)
	if lsq == 0 {
		return l.P1()
	}
	t := p.Sub(l.P1()).Dot(r) / lsq
	return l.P1().Add(r.Mul(t))
}

// PerpendicularLine returns the segment from p to its foot on l.
func (l Line) PerpendicularLine(p Vector) Line {
	if !l.Valid() {
		return Line{}
	}
	return LineFrom(p, l.Perpendicular(p))
}

// Axis reduces l to its axis-aligned representative along the major
// extent: a horizontal line through the midpoint for non-steep lines, a
// vertical one for steep lines. The span along the major axis is kept.
func (l Line) Axis() Line {
	if !l.Valid() {
		return Line{}
	}
	mid := l.Midpoint()
	if math.Abs(l.X2-l.X1) >= math.Abs(l.Y2-l.Y1) {
		return Line{X1: l.X1, Y1: mid.Y, X2: l.X2, Y2: mid.Y}
	}
	return Line{X1: mid.X, Y1: l.Y1, X2: mid.X, Y2: l.Y2}
}

// Mirror reflects l about its own slope by negating m and recomputing the
// intercept through the pivot. The pivot is P1 when startPointCommon is
// set and P2 otherwise; the pivot endpoint keeps its place.
//
// Point and horizontal lines coincide with their mirror axis and are
// returned unchanged. Vertical lines are flipped about the pivot row
// without using m.
func (l Line) Mirror(startPointCommon bool) Line {
	if !l.Valid() {
		return l
	}
	pivot, other := l.P1(), l.P2()
	if !startPointCommon {
		pivot, other = other, pivot
	}

	cls := l.Classify()
	var y float64
	switch cls.Direction {
	case DirectionPoint, DirectionHorizontal:
		return l
	case DirectionVertical:
		y = 2*pivot.Y - other.Y
	default:
		m := -cls.M
		c := pivot.Y - m*pivot.X
		y = m*other.X + c
	}

	if startPointCommon {
		return Line{X1: pivot.X, Y1: pivot.Y, X2: other.X, Y2: y}
	}
	return Line{X1: other.X, Y1: y, X2: pivot.X, Y2: pivot.Y}
}

// JoinEnds pairs P1 of a with the nearer endpoint of b (the farther one if
// opposite is set) and P2 of a with the remaining endpoint, returning the
// two connecting segments. Invalid input yields two zero lines.
func JoinEnds(a, b Line, opposite bool) [2]Line {
	if !a.Valid() || !b.Valid() {
		return [2]Line{}
	}
	near, far := b.P1(), b.P2()
	if a.P1().Distance(far) < a.P1().Distance(near) {
		near, far = far, near
	}
	if opposite {
		near, far = far, near
	}
	return [2]Line{LineFrom(a.P1(), near), LineFrom(a.P2(), far)}
}

// MinMax returns the bounds of all valid lines. Invalid lines are skipped;
// when no line is valid every bound is 0.
func MinMax(lines []Line) (minX, minY, maxX, maxY float64) {
	found := false
	for _, l := range lines {
		if !l.Valid() {
			continue
		}
		b := l.Bounds()
		if !found {
			minX, minY, maxX, maxY = b.MinX, b.MinY, b.MaxX, b.MaxY
			found = true
			continue
		}
		minX = min(minX, b.MinX)
		minY = min(minY, b.MinY)
		maxX = max(maxX, b.MaxX)
		maxY = max(maxY, b.MaxY)
	}
	return minX, minY, maxX, maxY
}

// ToArea returns MinMax as a Rect.
func ToArea(lines []Line) Rect {
	minX, minY, maxX, maxY := MinMax(lines)
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}
