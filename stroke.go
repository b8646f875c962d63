// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package linekit

import "math"

// Stroke defines how a line is expanded into an outline quad.
type Stroke struct {
	// Width is the stroke width. Default: 1.0
	Width float64

	// Central splits the width half to each side of the line instead of
	// expanding to one side only. Default: true
	Central bool

	// Rotation is applied to the finished quad as a unit, pivoting at the
	// midpoint of the source line unless it carries its own center.
	Rotation Rotation
}

// DefaultStroke returns a centered 1-unit stroke with no rotation.
func DefaultStroke() Stroke {
	return Stroke{Width: 1.0, Central: true}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithRotation returns a copy of the Stroke rotated by r.
func (s Stroke) WithRotation(r Rotation) Stroke {
	s.Rotation = r
	return s
}

// OneSided returns a copy of the Stroke that expands to one side only.
func (s Stroke) OneSided() Stroke {
	s.Central = false
	return s
}

// Sides returns StrokedSides(l, s.Width, s.Rotation, s.Central).
func (s Stroke) Sides(l Line) [4]Line {
	return StrokedSides(l, s.Width, s.Rotation, s.Central)
}

// StrokedSides builds the four sides of the stroke quad around l.
//
// The result forms a closed loop: the first side parallel to l (from P1 to
// P2), the end cap at P2, the second parallel side running back, and the
// start cap closing the loop. With expandCentrally the parallel sides sit
// at +width/2 and -width/2 along the normal; otherwise the first side is l
// itself and the second sits at +width. The left-hand normal (-dy, dx) is
// used. A non-identity rotation is applied to the whole quad.
//
// An invalid or zero-length line, or a non-finite width, yields four zero
// lines.
func StrokedSides(l Line, width float64, rotation Rotation, expandCentrally bool) [4]Line {
	if !l.Valid() || math.IsNaN(width) || math.IsInf(width, 0) {
		return [4]Line{}
	}
	u := l.Delta().Normalize()
	if u == (Vector{}) {
		return [4]Line{}
	}
	n := u.Perp()

	a, b := l, l.Offset(n.X*width, n.Y*width)
	if expandCentrally {
		h := n.Mul(width / 2)
		a = l.Offset(h.X, h.Y)
		b = l.Offset(-h.X, -h.Y)
	}

	sides := [4]Line{
		a,
		LineFrom(a.P2(), b.P2()),
		b.Reverse(),
		LineFrom(b.P1(), a.P1()),
	}

	if rotation.IsIdentity() {
		return sides
	}
	m := rotation.Matrix(l.Midpoint())
	for i := range sides {
		sides[i] = sides[i].Transform(m)
	}
	return sides
}
