package linekit

import "math"

// Scale is a non-uniform scale factor pair.
// A zero component leaves that axis unscaled, so the zero value is the
// identity scale.
type Scale struct {
	X, Y float64
}

// factors returns the effective scale factors, mapping unset (zero or
// non-finite) components to 1.
func (s Scale) factors() (float64, float64) {
	x, y := s.X, s.Y
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		x = 1
	}
	if y == 0 || math.IsNaN(y) || math.IsInf(y, 0) {
		y = 1
	}
	return x, y
}

// HasScale reports whether s differs from the identity scale.
func (s Scale) HasScale() bool {
	x, y := s.factors()
	return x != 1 || y != 1
}

// Mul returns the product of the effective factors of s and o.
func (s Scale) Mul(o Scale) Scale {
	sx, sy := s.factors()
	ox, oy := o.factors()
	return Scale{X: sx * ox, Y: sy * oy}
}

// Matrix returns the scaling matrix for s about the origin.
func (s Scale) Matrix() Matrix {
	x, y := s.factors()
	return ScaleMatrix(x, y)
}

// Rotation describes an optional rotation in degrees about an optional
// pivot, with an optional scale (skew) applied before rotating.
//
// Rotation is a value: helpers such as About and WithSkew return modified
// copies and never touch the receiver.
type Rotation struct {
	// Angle is the rotation angle in degrees.
	Angle float64

	// Center is the explicit pivot. It is only used when Centered is set;
	// otherwise the pivot defaults to the midpoint of the geometry.
	Center   Vector
	Centered bool

	// Skew is applied before the rotation, about the same pivot.
	Skew Scale
}

// RotationOf returns a rotation by deg degrees about the default pivot.
func RotationOf(deg float64) Rotation {
	return Rotation{Angle: deg}
}

// About returns a copy of r pivoting at c.
func (r Rotation) About(c Vector) Rotation {
	r.Center = c
	r.Centered = true
	return r
}

// WithSkew returns a copy of r that scales by s before rotating.
func (r Rotation) WithSkew(s Scale) Rotation {
	r.Skew = s
	return r
}

// HasAngle reports whether r carries a defined, non-zero angle.
func (r Rotation) HasAngle() bool {
	return r.Angle != 0 && !math.IsNaN(r.Angle) && !math.IsInf(r.Angle, 0)
}

// HasCenter reports whether r has an explicit, finite pivot.
func (r Rotation) HasCenter() bool {
	return r.Centered && r.Center.finite()
}

// IsIdentity reports whether r leaves geometry unchanged.
func (r Rotation) IsIdentity() bool {
	return !r.HasAngle() && !r.Skew.HasScale()
}

// Pivot returns the explicit center if set, otherwise def.
func (r Rotation) Pivot(def Vector) Vector {
	if r.HasCenter() {
		return r.Center
	}
	return def
}

// Matrix returns the transform for r, pivoting at the explicit center or
// at def when no center is set. An identity rotation yields Identity.
func (r Rotation) Matrix(def Vector) Matrix {
	if r.IsIdentity() {
		return Identity()
	}
	p := r.Pivot(def)
	m := Translate(p.X, p.Y)
	if r.HasAngle() {
		m = m.Multiply(RotateDegrees(r.Angle))
	}
	if r.Skew.HasScale() {
		m = m.Multiply(r.Skew.Matrix())
	}
	return m.Multiply(Translate(-p.X, -p.Y))
}
