// Package spline deals with reference paths for ground vehicles. It provides
// a Catmull-Rom spline through an ordered list of control points, queried by
// arc length.
/*

A spline consists of cubic Hermite segments, one for each pair of adjacent
control points. Each segment starts at its first control point and ends at
its second one. Tangents at interior control points are derived from the
neighbouring control points, which makes the path smooth without any
further user input. The outermost segments are quadratic, using one-sided
tangents at the path's ends.

All queries take an arc length s, measured along the path from the first
control point. Segment lengths are approximated by a sum of chords, so s is
an approximation of the true arc length, good enough for path following.

Usage

Clients create a spline from control points in world coordinates (package
qualifiers omitted for clarity and brevity):

   sp, err := New([]Point{Pt(0,0,0), Pt(10,0,0), Pt(20,5,0), Pt(30,5,0)})

and then sample it, e.g. to feed a controller or a renderer:

   traj := sp.Trajectory(0, sp.Length(), 1.0, 0)
   left := sp.LeftBounds(3.5, 50, 0)
   mesh := sp.BoundaryMesh(3.5, 50, 0.05)

Obstacles are given as polygons on the ground plane. The arc length where
the path first enters an obstacle is found with

   s, ok := sp.CollisionIn2D(obstacle, Forward)

A pose close to the path may be projected onto it, which gives the arc
length of the pose along the path:

   s, ok := sp.ProjectPose(pose, 2.0)

Degenerate paths

A spline through a single control point is a point. It has a length of 0
and no segments. A spline through two control points is a straight line.
Both answer every query a curve answers, but a point never collides with
anything and has no curvature table.

Coordinates

Coordinates are right-handed, with z pointing up. "Left" is the direction
of the tangent, rotated by +90° around z. Collisions and projections are
computed on the ground plane, ignoring z.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/pathgeom"
)

// AsString returns a spline as a (debugging) string. It lists the control
// points, joined by "..", followed by the segment lengths if the spline has
// any segments.
//
// Example, a spline through 3 collinear control points:
//
//	(0,0,0) .. (10,0,0) .. (20,0,0)
//	  lengths [10 10]
func AsString(sp *CatmullRomSpline) string {
	if sp == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i, p := range sp.controlPoints {
		if i > 0 {
			b.WriteString(" .. ")
		}
		b.WriteString(pathgeom.PtString(p))
	}
	if lengths := sp.shape.segmentLengths(); len(lengths) > 0 {
		b.WriteString("\n  lengths [")
		for i, l := range lengths {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%.4g", l)
		}
		b.WriteString("]")
	}
	return b.String()
}
