package spline

import (
	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/pathgeom/polygon"
)

// Path is the read-only query surface planners use on a reference path.
type Path interface {
	Length() float64
	Point(s float64) pathgeom.Point
	OffsetPoint(s, offset float64) pathgeom.Point
	Pose(s float64) pathgeom.Pose
	Tangent(s float64) pathgeom.Vector
	Normal(s float64) pathgeom.Vector
	Trajectory(startS, endS, resolution, offset float64) []pathgeom.Point
	CollisionIn2D(pg *polygon.Polygon, dir Direction) (float64, bool)
	CollisionWithSegment(p0, p1 pathgeom.Point, dir Direction) (float64, bool)
	ProjectPose(pose pathgeom.Pose, thresholdDistance float64) (float64, bool)
}

var _ Path = (*CatmullRomSpline)(nil)

// DistanceToFootprint returns the arc length along path at which it first
// enters the footprint of an entity with bounding box box at pose.
func DistanceToFootprint(path Path, pose pathgeom.Pose, box polygon.BoundingBox, ext polygon.Extension) (float64, bool) {
	return path.CollisionIn2D(polygon.Footprint(pose, box, ext), Forward)
}

// Elevation returns the path's elevation at the position of pose, if the
// pose projects onto the path within thresholdDistance.
func Elevation(path Path, pose pathgeom.Pose, thresholdDistance float64) (float64, bool) {
	s, ok := path.ProjectPose(pose, thresholdDistance)
	if !ok {
		return 0, false
	}
	return path.Point(s).Z, true
}
