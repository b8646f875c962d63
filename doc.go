// Package linekit provides the 2D line geometry kernel used by the glyph
// layout engine in the text sub-package.
//
// # Overview
//
// linekit works on plain value types: [Vector], [Line], [Rotation], [Scale],
// [Matrix] and [Rect]. Every operation returns a new value; nothing is
// mutated in place and nothing is pooled.
//
// # Quick Start
//
//	l := linekit.L(0, 0, 10, 10)
//	c := l.Classify()                    // DirectionDiagonal, NonSteep, m=1, c=0
//	p, ok := linekit.Intersect(l, linekit.L(0, 10, 10, 0)) // (5,5), true
//	x, ok := l.Scan(4, true)             // x on the row y=4
//
// # Degenerate input
//
// A [Line] whose coordinates are all zero, NaN or infinite is invalid.
// Every kernel operation short-circuits on an invalid line and returns a
// documented default (zero value, ok=false, empty result). No operation
// panics.
//
// Slope and intercept come from y = m*x + c. For a vertical line the kernel
// reports m = dy (not infinity); consumers must branch on
// [DirectionVertical] and never use m or c of a vertical line. Scan,
// Mirror and DistanceFromParallel do this internally.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotation angles in degrees, applied as in [Matrix] (positive turns +X toward +Y)
//
// # Scan spans
//
// Scan tests the target coordinate against a half-open span
// [ceil(min), ceil(max)) of the line's endpoints along the scan axis, so a
// pixel row shared by two adjacent polygon edges is attributed to exactly
// one of them.
package linekit

// Version is the current version of the library.
const Version = "0.1.0"
