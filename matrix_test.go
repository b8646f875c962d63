package linekit

import (
	"math"
	"testing"
)

func TestMatrix_TransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Vector
		want Vector
	}{
		{"identity", Identity(), V(3, 4), V(3, 4)},
		{"translate", Translate(10, -2), V(3, 4), V(13, 2)},
		{"scale", ScaleMatrix(2, 3), V(3, 4), V(6, 12)},
		{"rotate 90", RotateDegrees(90), V(1, 0), V(0, 1)},
		{"rotate 180", RotateDegrees(180), V(1, 2), V(-1, -2)},
		{"translate after scale", Translate(1, 1).Multiply(ScaleMatrix(2, 2)), V(3, 4), V(7, 9)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); !got.Near(tt.want) {
				t.Errorf("TransformPoint(%+v) = %+v, want %+v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrix_LinearAndVector(t *testing.T) {
	m := Translate(5, 6).Multiply(RotateDegrees(90))
	lin := m.Linear()
	if lin.C != 0 || lin.F != 0 {
		t.Errorf("Linear() kept translation: %+v", lin)
	}
	if got := m.TransformVector(V(1, 0)); !got.Near(V(0, 1)) {
		t.Errorf("TransformVector() = %+v, want (0, 1)", got)
	}
	if !Identity().IsIdentity() || Translate(1, 0).IsIdentity() {
		t.Error("IsIdentity() misreports")
	}
}

func TestMatrix_Aff3(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	a := m.Aff3()
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if a[i] != want {
			t.Errorf("Aff3()[%d] = %v, want %v", i, a[i], want)
		}
	}
}

func TestRotation_Matrix(t *testing.T) {
	def := V(5, 5)

	if !(Rotation{}).Matrix(def).IsIdentity() {
		t.Error("zero Rotation should produce the identity matrix")
	}

	m := RotationOf(90).Matrix(def)
	if got := m.TransformPoint(def); !got.Near(def) {
		t.Errorf("default pivot moved to %+v", got)
	}
	if got := m.TransformPoint(V(6, 5)); !got.Near(V(5, 6)) {
		t.Errorf("rotated point = %+v, want (5, 6)", got)
	}

	centered := RotationOf(90).About(V(0, 0))
	if got := centered.Matrix(def).TransformPoint(V(1, 0)); !got.Near(V(0, 1)) {
		t.Errorf("explicit pivot: rotated point = %+v, want (0, 1)", got)
	}

	skewed := RotationOf(90).WithSkew(Scale{X: 2, Y: 1}).About(V(0, 0))
	if got := skewed.Matrix(def).TransformPoint(V(1, 0)); !got.Near(V(0, 2)) {
		t.Errorf("skewed point = %+v, want (0, 2)", got)
	}
}

func TestRotation_Flags(t *testing.T) {
	tests := []struct {
		name      string
		r         Rotation
		hasAngle  bool
		hasCenter bool
		identity  bool
	}{
		{"zero", Rotation{}, false, false, true},
		{"angle", RotationOf(15), true, false, false},
		{"nan angle", RotationOf(math.NaN()), false, false, true},
		{"centered no angle", Rotation{}.About(V(1, 1)), false, true, true},
		{"nan center", Rotation{}.About(V(math.NaN(), 1)), false, false, true},
		{"skew only", Rotation{Skew: Scale{Y: 3}}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.HasAngle(); got != tt.hasAngle {
				t.Errorf("HasAngle() = %v, want %v", got, tt.hasAngle)
			}
			if got := tt.r.HasCenter(); got != tt.hasCenter {
				t.Errorf("HasCenter() = %v, want %v", got, tt.hasCenter)
			}
			if got := tt.r.IsIdentity(); got != tt.identity {
				t.Errorf("IsIdentity() = %v, want %v", got, tt.identity)
			}
		})
	}
}

func TestRotation_AboutDoesNotMutate(t *testing.T) {
	r := RotationOf(30)
	_ = r.About(V(9, 9)).WithSkew(Scale{X: 2})
	if r.HasCenter() || r.Skew.HasScale() {
		t.Errorf("About/WithSkew mutated the receiver: %+v", r)
	}
}

func TestScale_HasScale(t *testing.T) {
	tests := []struct {
		s    Scale
		want bool
	}{
		{Scale{}, false},
		{Scale{X: 1, Y: 1}, false},
		{Scale{X: 2}, true},
		{Scale{X: math.NaN(), Y: 1}, false},
		{Scale{X: 1, Y: 0.5}, true},
	}
	for _, tt := range tests {
		if got := tt.s.HasScale(); got != tt.want {
			t.Errorf("%+v.HasScale() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}
	if r.Width() != 10 || r.Height() != 5 || r.Empty() {
		t.Errorf("unexpected geometry for %+v", r)
	}
	if !r.Contains(V(10, 5)) || r.Contains(V(11, 0)) {
		t.Error("Contains() misreports edges")
	}
	if !r.Intersects(Rect{MinX: 9, MinY: 4, MaxX: 12, MaxY: 8}) {
		t.Error("overlapping rects should intersect")
	}
	if r.Intersects(Rect{MinX: 10, MinY: 0, MaxX: 12, MaxY: 5}) {
		t.Error("rects sharing an edge should not intersect")
	}
	u := r.Union(Rect{MinX: -2, MinY: 3, MaxX: 4, MaxY: 9})
	if u != (Rect{MinX: -2, MinY: 0, MaxX: 10, MaxY: 9}) {
		t.Errorf("Union() = %+v", u)
	}
	if got := (Rect{}).Union(r); got != r {
		t.Errorf("empty Union() = %+v, want %+v", got, r)
	}
}

func TestVector(t *testing.T) {
	v := V(3, 4)
	if v.Length() != 5 {
		t.Errorf("Length() = %v, want 5", v.Length())
	}
	if got := v.Normalize(); !got.Near(V(0.6, 0.8)) {
		t.Errorf("Normalize() = %+v", got)
	}
	if got := (Vector{}).Normalize(); got != (Vector{}) {
		t.Errorf("zero Normalize() = %+v", got)
	}
	if got := v.Perp(); got != V(-4, 3) {
		t.Errorf("Perp() = %+v", got)
	}
	if got := V(1, 0).Rotate(math.Pi / 2); !got.Near(V(0, 1)) {
		t.Errorf("Rotate() = %+v", got)
	}
	if got := v.Lerp(V(5, 8), 0.5); got != V(4, 6) {
		t.Errorf("Lerp() = %+v", got)
	}
	if v.Cross(V(1, 0)) != -4 || v.Dot(V(1, 1)) != 7 {
		t.Error("Cross/Dot misreport")
	}
}
