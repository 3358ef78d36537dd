package spline

import (
	"math"

	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/pathgeom/polygon"
	"gonum.org/v1/gonum/spatial/r3"
)

// LineSegment is a straight path between two points.
type LineSegment struct {
	Start, End pathgeom.Point
}

// NewLineSegment creates a line segment from start to end.
func NewLineSegment(start, end pathgeom.Point) LineSegment {
	return LineSegment{Start: start, End: end}
}

// segmentsOf decomposes a polygon into line segments.
func segmentsOf(pg *polygon.Polygon) []LineSegment {
	edges := pg.Edges()
	segs := make([]LineSegment, len(edges))
	for i, e := range edges {
		segs[i] = LineSegment{Start: e.P0, End: e.P1}
	}
	return segs
}

// Vector returns End - Start.
func (l LineSegment) Vector() pathgeom.Vector {
	return r3.Sub(l.End, l.Start)
}

// Length returns the length of the segment.
func (l LineSegment) Length() float64 {
	return r3.Norm(l.Vector())
}

// Point returns the point at arc length s from Start. s outside of
// [0,Length] extrapolates along the segment's direction.
func (l LineSegment) Point(s float64) pathgeom.Point {
	return r3.Add(l.Start, r3.Scale(s, l.Tangent()))
}

// Tangent returns the unit direction of the segment.
func (l LineSegment) Tangent() pathgeom.Vector {
	return pathgeom.UnitOrZero(l.Vector())
}

// Normal returns the unit direction of the segment rotated by +90° on the
// ground plane.
func (l LineSegment) Normal() pathgeom.Vector {
	v := l.Vector()
	return pathgeom.UnitOrZero(pathgeom.Vector{X: -v.Y, Y: v.X})
}

// Intersection2DParameter intersects two segments on the ground plane. It
// returns the position of the intersection on l as a parameter in [0,1].
// Parallel segments and intersections outside of either segment report
// false.
func (l LineSegment) Intersection2DParameter(other LineSegment) (float64, bool) {
	d := pathgeom.XY(l.Vector())
	e := pathgeom.XY(other.Vector())
	det := e.Cross(d)
	if math.Abs(det) <= pathgeom.Epsilon*d.Abs()*e.Abs() || det == 0 {
		return 0, false // parallel, collinear or degenerate
	}
	w := pathgeom.XY(other.Start) - pathgeom.XY(l.Start)
	t := e.Cross(w) / det // position on l
	if t < -_epsilon || t > 1+_epsilon {
		return 0, false
	}
	u := d.Cross(w) / det // position on other
	if u < -_epsilon || u > 1+_epsilon {
		return 0, false
	}
	return math.Min(1, math.Max(0, t)), true
}

// Intersection2D intersects two segments on the ground plane, returning
// the arc length on l where they cross.
func (l LineSegment) Intersection2D(other LineSegment) (float64, bool) {
	t, ok := l.Intersection2DParameter(other)
	if !ok {
		return 0, false
	}
	return t * l.Length(), true
}

// IntersectionWithPolygon intersects l with every edge of pg and returns
// the first crossing in direction dir, as arc length on l.
func (l LineSegment) IntersectionWithPolygon(pg *polygon.Polygon, dir Direction) (float64, bool) {
	var best float64
	found := false
	for _, edge := range segmentsOf(pg) {
		if s, ok := l.Intersection2D(edge); ok && (!found || dir.better(s, best)) {
			best, found = s, true
		}
	}
	return best, found
}
