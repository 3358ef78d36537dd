/*
Package pathgeom implements the numeric and geometric base types for
reference-path geometry: tolerances, 3D points and vectors, poses and
2D affine transformations.

Sub-packages build on these: package spline represents lane centerlines
and planned trajectories as arc-length parameterized Catmull-Rom splines,
package polygon holds 2D outlines to collide against, and package polyn
does the cubic polynomial arithmetic underneath.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package pathgeom

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/spatial/r3"
)

// tracer writes to trace with key 'pathgeom'
func tracer() tracing.Trace {
	return tracing.Select("pathgeom")
}

// === Numeric Data Type =====================================================

// Deg2Rad converts degrees to radians.
const Deg2Rad = math.Pi / 180

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// FloatEpsilon is the machine epsilon of single precision floats. It is
// the tolerance for checks which have to survive accumulated arithmetic
// error, e.g. spline segment end points against their control points.
var FloatEpsilon float64 = float64(math.Nextafter32(1, 2) - 1)

// Is0 is a predicate: is n = 0 within Epsilon?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap snaps n to 0 if it is within Epsilon of 0.
func Zap(n float64) float64 {
	if Is0(n) {
		return 0
	}
	return n
}

// IsFinite is a predicate: n is neither NaN nor infinite.
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Points and Vectors ====================================================

// Point is a position in 3D map space. Z carries the elevation.
type Point = r3.Vec

// Vector is a direction or displacement in 3D map space.
type Vector = r3.Vec

// Origin3 is the point (0,0,0).
var Origin3 = Point{}

// Pt is a quick notation for constructing a point from floats.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// XY projects a point onto the ground plane.
func XY(p Point) Pair {
	return P(p.X, p.Y)
}

// EqualWithin compares two points component-wise with tolerance e.
func EqualWithin(p, q Point, e float64) bool {
	return math.Abs(p.X-q.X) <= e && math.Abs(p.Y-q.Y) <= e && math.Abs(p.Z-q.Z) <= e
}

// IsFinitePoint is a predicate: no coordinate of p is NaN or infinite.
func IsFinitePoint(p Point) bool {
	return IsFinite(p.X) && IsFinite(p.Y) && IsFinite(p.Z)
}

// UnitOrZero returns v scaled to length 1, or the zero vector if v has no
// length.
func UnitOrZero(v Vector) Vector {
	n := r3.Norm(v)
	if n == 0 {
		return Vector{}
	}
	return r3.Scale(1/n, v)
}

// Heading is the angle of v in the ground plane, counter-clockwise from the
// x-axis.
func Heading(v Vector) float64 {
	return math.Atan2(v.Y, v.X)
}

// Distance2D is the distance of p and q in the ground plane.
func Distance2D(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// PtString is a pretty Stringer for points, rounded to 4 decimal places.
func PtString(p Point) string {
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round4(p.X), round4(p.Y), round4(p.Z))
}

func round4(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector on the ground plane.
type Pair complex128

// Origin is the ground plane origin (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// X is the x-part of a pair.
func (p Pair) X() float64 { return real(p) }

// Y is the y-part of a pair.
func (p Pair) Y() float64 { return imag(p) }

// Zap snaps both parts of p to 0 if they are within Epsilon of 0.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(q Pair) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y())
}

// Cross is the z-component of the cross product p × q.
func (p Pair) Cross(q Pair) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// Abs is the length of p.
func (p Pair) Abs() float64 {
	return cmplx.Abs(complex128(p))
}

// Shifted returns p translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return Translation(v).Transform(p).Zap()
}

// Rotated returns p rotated around the origin by theta, counter-clockwise.
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p).Zap()
}
