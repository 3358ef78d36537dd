package polygon

import "github.com/npillmayer/pathgeom"

// BoundingBox is an entity's box in the entity's own frame: x points
// forward, y to the left.
type BoundingBox struct {
	Center pathgeom.Point // box center relative to the entity origin
	Length float64        // extent along x
	Width  float64        // extent along y
	Height float64        // extent along z
}

// Extension grows a bounding box per side. Negative values shrink it.
type Extension struct {
	Front, Rear, Left, Right float64
}

// FromBoundingBox creates the ground footprint of an entity, in the
// entity's frame, at the bottom of the box. Knots run counter-clockwise,
// starting rear right.
func FromBoundingBox(box BoundingBox, ext Extension) *Polygon {
	front := box.Center.X + box.Length/2 + ext.Front
	rear := box.Center.X - box.Length/2 - ext.Rear
	left := box.Center.Y + box.Width/2 + ext.Left
	right := box.Center.Y - box.Width/2 - ext.Right
	z := box.Center.Z - box.Height/2
	if front < rear || left < right {
		L().Debugf("footprint collapsed by extension %+v", ext)
	}
	return NullPolygon().
		Knot(pathgeom.Pt(rear, right, z)).
		Knot(pathgeom.Pt(front, right, z)).
		Knot(pathgeom.Pt(front, left, z)).
		Knot(pathgeom.Pt(rear, left, z)).
		Cycle()
}

// Footprint creates the footprint of an entity placed at pose, in the map
// frame.
func Footprint(pose pathgeom.Pose, box BoundingBox, ext Extension) *Polygon {
	return FromBoundingBox(box, ext).Transform(pose)
}
