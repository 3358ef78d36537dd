package spline

import (
	"fmt"
	"math"

	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/pathgeom/polygon"
)

// A spline over a single control point. It has no segments; every arc
// length maps to the control point.
type point struct {
	p pathgeom.Point
}

func (pt point) length() float64            { return 0 }
func (pt point) segmentLengths() []float64  { return nil }
func (pt point) curvatureMaxima() []float64 { return nil }

func (pt point) resolve(s float64) (int, float64, error) {
	return 0, 0, fmt.Errorf("%w: point spline has no segments (s = %g)", ErrIndexResolution, s)
}

func (pt point) globalS(i int, s float64) (float64, error) {
	return 0, fmt.Errorf("%w: index %d, point spline has no segments", ErrSegmentIndex, i)
}

func (pt point) point(float64) pathgeom.Point    { return pt.p }
func (pt point) tangent(float64) pathgeom.Vector { return pathgeom.Vector{} }
func (pt point) normal(float64) pathgeom.Vector  { return pathgeom.Vector{} }
func (pt point) curvature(float64) float64       { return 0 }

func (pt point) pose(float64) pathgeom.Pose {
	return pathgeom.Pose{Position: pt.p, Orientation: pathgeom.IdentityOrientation}
}

func (pt point) squaredDistanceVector(p pathgeom.Point, _ float64) pathgeom.Vector {
	return pathgeom.Vector{X: p.X - pt.p.X, Y: p.Y - pt.p.Y}
}

func (pt point) collisionWithPolygon(*polygon.Polygon, Direction) (float64, bool) {
	return 0, false
}

func (pt point) collisionWithSegment(_, _ pathgeom.Point, _ Direction) (float64, bool) {
	return 0, false
}

func (pt point) project(pathgeom.Pose, float64) (float64, bool) {
	return 0, false
}

// A spline over two control points: a single straight segment.
type line struct {
	seg LineSegment
}

func (ln line) length() float64            { return ln.seg.Length() }
func (ln line) segmentLengths() []float64  { return []float64{ln.seg.Length()} }
func (ln line) curvatureMaxima() []float64 { return []float64{0} }

func (ln line) resolve(s float64) (int, float64, error) {
	if math.IsNaN(s) {
		return 0, 0, fmt.Errorf("%w: s = %g", ErrIndexResolution, s)
	}
	return 0, s, nil
}

func (ln line) globalS(i int, s float64) (float64, error) {
	if i != 0 {
		return 0, fmt.Errorf("%w: index %d, 1 segment", ErrSegmentIndex, i)
	}
	return s, nil
}

func (ln line) point(s float64) pathgeom.Point  { return ln.seg.Point(s) }
func (ln line) tangent(float64) pathgeom.Vector { return ln.seg.Tangent() }
func (ln line) normal(float64) pathgeom.Vector  { return ln.seg.Normal() }
func (ln line) curvature(float64) float64       { return 0 }

func (ln line) pose(s float64) pathgeom.Pose {
	d := ln.seg.Vector()
	pitch := math.Atan2(-d.Z, math.Hypot(d.X, d.Y))
	return pathgeom.Pose{
		Position:    ln.seg.Point(s),
		Orientation: pathgeom.FromRPY(0, pitch, pathgeom.Heading(d)),
	}
}

func (ln line) squaredDistanceVector(p pathgeom.Point, s float64) pathgeom.Vector {
	q := ln.seg.Point(s)
	return pathgeom.Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// collisionWithPolygon tests the spline's segment against every edge of
// the polygon.
func (ln line) collisionWithPolygon(pg *polygon.Polygon, dir Direction) (float64, bool) {
	return ln.seg.IntersectionWithPolygon(pg, dir)
}

func (ln line) collisionWithSegment(p0, p1 pathgeom.Point, _ Direction) (float64, bool) {
	return ln.seg.Intersection2D(NewLineSegment(p0, p1))
}

func (ln line) project(pose pathgeom.Pose, threshold float64) (float64, bool) {
	p0, p1 := lateralProbe(pose, threshold)
	return ln.seg.Intersection2D(NewLineSegment(p0, p1))
}
