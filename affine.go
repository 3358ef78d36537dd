package pathgeom

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// AT is an affine transform on the ground plane,
//
//	| a  b  tx |
//	| c  d  ty |
//	| 0  0  1  |
//
// applied to column vectors (x, y, 1). The zero value is not a valid
// transform; start from Identity, Translation or Rotation.
type AT struct {
	a, b, c, d float64
	tx, ty     float64
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{a: 1, d: 1}
}

// Translation transform. Translate a point by v.
func Translation(v Pair) AT {
	return AT{a: 1, d: 1, tx: v.X(), ty: v.Y()}
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{a: cos, b: -sin, c: sin, d: cos}
}

// Placement transforms from an entity's local frame into the map frame,
// given the entity's pose. Only yaw and the ground-plane position take
// part; elevation is handled by the caller.
func Placement(pose Pose) AT {
	return Rotation(pose.Yaw()).Combine(Translation(XY(pose.Position)))
}

// Combine 2 affine transformations to a new one: m is applied first, then n.
func (m AT) Combine(n AT) AT {
	return AT{
		a:  n.a*m.a + n.b*m.c,
		b:  n.a*m.b + n.b*m.d,
		c:  n.c*m.a + n.d*m.c,
		d:  n.c*m.b + n.d*m.d,
		tx: n.a*m.tx + n.b*m.ty + n.tx,
		ty: n.c*m.tx + n.d*m.ty + n.ty,
	}
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.X(), p.Y()
	return P(m.a*x+m.b*y+m.tx, m.c*x+m.d*y+m.ty)
}

// TransformPoint applies m to the ground-plane part of p. Z is kept.
func (m AT) TransformPoint(p Point) Point {
	q := m.Transform(XY(p))
	return Pt(q.X(), q.Y(), p.Z)
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g]", m.a, m.b, m.tx, m.c, m.d, m.ty)
}
