package spline

import (
	"fmt"
	"math"

	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/pathgeom/polygon"
	"gonum.org/v1/gonum/floats"
)

// shape is what a spline is made of, fixed at construction by the number
// of control points.
type shape interface {
	length() float64
	segmentLengths() []float64
	curvatureMaxima() []float64
	resolve(s float64) (int, float64, error)
	globalS(i int, s float64) (float64, error)
	point(s float64) pathgeom.Point
	tangent(s float64) pathgeom.Vector
	normal(s float64) pathgeom.Vector
	pose(s float64) pathgeom.Pose
	curvature(s float64) float64
	squaredDistanceVector(p pathgeom.Point, s float64) pathgeom.Vector
	collisionWithPolygon(pg *polygon.Polygon, dir Direction) (float64, bool)
	collisionWithSegment(p0, p1 pathgeom.Point, dir Direction) (float64, bool)
	project(pose pathgeom.Pose, threshold float64) (float64, bool)
}

// CatmullRomSpline is a path through an ordered list of control points,
// parameterized by arc length s. It is immutable after construction and
// safe for concurrent queries.
//
// Queries for s outside [0,Length()] are not clamped: they extrapolate the
// first or last segment. Queries panic if s is NaN.
type CatmullRomSpline struct {
	controlPoints []pathgeom.Point
	kind          Kind
	shape         shape
}

// New creates a spline through the given control points. One control
// point makes a point, two make a straight line, three or more a curve.
func New(points []pathgeom.Point, opts ...Option) (*CatmullRomSpline, error) {
	if len(points) == 0 {
		tracer().Errorf(ErrNoControlPoints.Error())
		return nil, ErrNoControlPoints
	}
	for i, p := range points {
		if !pathgeom.IsFinitePoint(p) {
			return nil, fmt.Errorf("%w at control point %d", ErrInvalidControlPoint, i)
		}
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	sp := &CatmullRomSpline{controlPoints: make([]pathgeom.Point, len(points))}
	copy(sp.controlPoints, points)
	switch len(points) {
	case 1:
		sp.kind, sp.shape = PointKind, point{p: points[0]}
	case 2:
		sp.kind, sp.shape = LineKind, line{seg: NewLineSegment(points[0], points[1])}
	default:
		cv, err := buildCurve(sp.controlPoints, cfg)
		if err != nil {
			tracer().Errorf(err.Error())
			return nil, err
		}
		sp.kind, sp.shape = CurveKind, cv
	}
	tracer().Debugf("created %s spline of %d control points, length %.4f", sp.kind,
		len(points), sp.Length())
	return sp, nil
}

// MustNew is a compatibility helper which panics on construction errors.
func MustNew(points []pathgeom.Point, opts ...Option) *CatmullRomSpline {
	sp, err := New(points, opts...)
	if err != nil {
		panic(err)
	}
	return sp
}

// Kind tells whether the spline is a point, a line or a curve.
func (sp *CatmullRomSpline) Kind() Kind {
	return sp.kind
}

// Length returns the total arc length.
func (sp *CatmullRomSpline) Length() float64 {
	return sp.shape.length()
}

// ControlPoints returns a copy of the control points.
func (sp *CatmullRomSpline) ControlPoints() []pathgeom.Point {
	pts := make([]pathgeom.Point, len(sp.controlPoints))
	copy(pts, sp.controlPoints)
	return pts
}

// SegmentCount returns the number of segments: 0 for a point, 1 for a line.
func (sp *CatmullRomSpline) SegmentCount() int {
	return len(sp.shape.segmentLengths())
}

// SegmentLengths returns a copy of the arc length table, one entry per
// segment.
func (sp *CatmullRomSpline) SegmentLengths() []float64 {
	return append([]float64(nil), sp.shape.segmentLengths()...)
}

// Resolve maps a global arc length to a segment index and the arc length
// within that segment.
func (sp *CatmullRomSpline) Resolve(s float64) (int, float64, error) {
	return sp.shape.resolve(s)
}

// GlobalS maps an arc length within segment i to a global arc length.
func (sp *CatmullRomSpline) GlobalS(i int, s float64) (float64, error) {
	return sp.shape.globalS(i, s)
}

// Point returns the point at arc length s.
func (sp *CatmullRomSpline) Point(s float64) pathgeom.Point {
	return sp.shape.point(s)
}

// OffsetPoint returns the point at arc length s, moved sideways by offset.
// Positive offsets move to the left of the direction of travel. Elevation
// is not changed.
func (sp *CatmullRomSpline) OffsetPoint(s, offset float64) pathgeom.Point {
	return sideways(sp.shape.point(s), sp.shape.normal(s), offset, 0)
}

// Pose returns the point at arc length s, oriented along the path.
func (sp *CatmullRomSpline) Pose(s float64) pathgeom.Pose {
	return sp.shape.pose(s)
}

// Tangent returns the unit direction of travel at arc length s.
func (sp *CatmullRomSpline) Tangent(s float64) pathgeom.Vector {
	return sp.shape.tangent(s)
}

// Normal returns the unit vector pointing left of the direction of travel
// at arc length s, on the ground plane.
func (sp *CatmullRomSpline) Normal(s float64) pathgeom.Vector {
	return sp.shape.normal(s)
}

// Curvature2D returns the signed ground plane curvature at arc length s,
// positive when turning left.
func (sp *CatmullRomSpline) Curvature2D(s float64) float64 {
	return sp.shape.curvature(s)
}

// SquaredDistanceIn2D returns the squared ground plane distance between p
// and the path point at arc length s.
func (sp *CatmullRomSpline) SquaredDistanceIn2D(p pathgeom.Point, s float64) float64 {
	v := sp.shape.squaredDistanceVector(p, s)
	return v.X*v.X + v.Y*v.Y
}

// SquaredDistanceVector returns the ground plane vector from the path
// point at arc length s to p.
func (sp *CatmullRomSpline) SquaredDistanceVector(p pathgeom.Point, s float64) pathgeom.Vector {
	return sp.shape.squaredDistanceVector(p, s)
}

// MaximumCurvature2D returns the maximum absolute ground plane curvature
// over all segments.
func (sp *CatmullRomSpline) MaximumCurvature2D() (float64, error) {
	table := sp.shape.curvatureMaxima()
	if len(table) == 0 {
		return 0, ErrNoCurvature
	}
	return floats.Max(table), nil
}

// CollisionIn2D returns the arc length where the path first crosses the
// boundary of pg on the ground plane, searching in direction dir.
func (sp *CatmullRomSpline) CollisionIn2D(pg *polygon.Polygon, dir Direction) (float64, bool) {
	if pg.N() < 2 {
		return 0, false
	}
	return sp.shape.collisionWithPolygon(pg, dir)
}

// CollisionWithSegment returns the arc length where the path first crosses
// the line p0–p1 on the ground plane, searching in direction dir.
func (sp *CatmullRomSpline) CollisionWithSegment(p0, p1 pathgeom.Point, dir Direction) (float64, bool) {
	return sp.shape.collisionWithSegment(p0, p1, dir)
}

// ProjectPose returns the arc length where the lateral line through pose,
// reaching thresholdDistance to either side, first meets the path.
func (sp *CatmullRomSpline) ProjectPose(pose pathgeom.Pose, thresholdDistance float64) (float64, bool) {
	if !(thresholdDistance > 0) {
		return 0, false
	}
	return sp.shape.project(pose, thresholdDistance)
}

// === Sampling ==============================================================

// Trajectory samples the path from startS towards endS in steps of
// |resolution|, moved sideways by offset. The last point is always the one
// at endS. A zero resolution, or one too small to advance s, yields just the
// points at startS and endS; non-finite bounds yield nothing.
func (sp *CatmullRomSpline) Trajectory(startS, endS, resolution, offset float64) []pathgeom.Point {
	if !pathgeom.IsFinite(startS) || !pathgeom.IsFinite(endS) {
		return nil
	}
	step := math.Abs(resolution)
	if startS > endS {
		step = -step
	}
	var pts []pathgeom.Point
	if step != 0 && pathgeom.IsFinite(step) {
		pts = sp.steps(startS, endS, step, offset)
	}
	if pts == nil && startS != endS {
		pts = append(pts, sp.OffsetPoint(startS, offset))
	}
	return append(pts, sp.OffsetPoint(endS, offset))
}

// steps samples from startS up to, but excluding, endS. It returns nil if
// step vanishes against the magnitude of s.
func (sp *CatmullRomSpline) steps(startS, endS, step, offset float64) []pathgeom.Point {
	var pts []pathgeom.Point
	for s := startS; (step > 0 && s < endS) || (step < 0 && s > endS); s += step {
		if s+step == s {
			tracer().Debugf("trajectory step %g is below float spacing at s = %g", step, s)
			return nil
		}
		pts = append(pts, sp.OffsetPoint(s, offset))
	}
	return pts
}

// LeftBounds samples numPoints+1 points evenly from start to end of the
// path, moved width/2 to the left and raised by zOffset.
func (sp *CatmullRomSpline) LeftBounds(width float64, numPoints int, zOffset float64) []pathgeom.Point {
	return sp.bounds(0.5*width, numPoints, zOffset)
}

// RightBounds samples numPoints+1 points evenly from start to end of the
// path, moved width/2 to the right and raised by zOffset.
func (sp *CatmullRomSpline) RightBounds(width float64, numPoints int, zOffset float64) []pathgeom.Point {
	return sp.bounds(-0.5*width, numPoints, zOffset)
}

func (sp *CatmullRomSpline) bounds(offset float64, numPoints int, zOffset float64) []pathgeom.Point {
	if numPoints < 0 {
		numPoints = 0
	}
	step := 0.0
	if numPoints > 0 {
		step = sp.Length() / float64(numPoints)
	}
	pts := make([]pathgeom.Point, 0, numPoints+1)
	for i := 0; i <= numPoints; i++ {
		s := step * float64(i)
		pts = append(pts, sideways(sp.shape.point(s), sp.shape.normal(s), offset, zOffset))
	}
	return pts
}

// BoundaryMesh returns two triangles per quad between consecutive left and
// right bounds, 6 points per quad, for rendering a road of the given width.
func (sp *CatmullRomSpline) BoundaryMesh(width float64, numPoints int, zOffset float64) []pathgeom.Point {
	left := sp.LeftBounds(width, numPoints, zOffset)
	right := sp.RightBounds(width, numPoints, zOffset)
	mesh := make([]pathgeom.Point, 0, 6*(len(left)-1))
	for i := 0; i < len(left)-1; i++ {
		mesh = append(mesh,
			right[i], left[i], right[i+1],
			left[i], left[i+1], right[i+1])
	}
	return mesh
}

// BoundaryPolygon returns the outline of a road of the given width: the
// left bounds followed by the right bounds in reverse.
func (sp *CatmullRomSpline) BoundaryPolygon(width float64, numPoints int, zOffset float64) *polygon.Polygon {
	pts := sp.LeftBounds(width, numPoints, zOffset)
	right := sp.RightBounds(width, numPoints, zOffset)
	for i := len(right) - 1; i >= 0; i-- {
		pts = append(pts, right[i])
	}
	return polygon.FromPoints(pts)
}

// sideways moves p by offset along the heading of normal n and raises it by
// dz. A zero normal leaves p in place.
func sideways(p pathgeom.Point, n pathgeom.Vector, offset, dz float64) pathgeom.Point {
	q := pathgeom.Pt(p.X, p.Y, p.Z+dz)
	if n.X == 0 && n.Y == 0 {
		return q
	}
	theta := pathgeom.Heading(n)
	q.X += offset * math.Cos(theta)
	q.Y += offset * math.Sin(theta)
	return q
}
