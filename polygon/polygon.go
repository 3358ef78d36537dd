/*
Package polygon deals with 2D outlines: entity footprints, stop lines and
lanelet areas a reference path may collide with.

Vertices are 3D points; elevation is carried along but all predicates work
on the ground plane. Outlines are built with a builder pattern:

	pg := NullPolygon().Knot(pathgeom.Pt(0, 0, 0)).Knot(pathgeom.Pt(1, 3, 0)).
		Knot(pathgeom.Pt(3, 0, 0)).Cycle()

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the geometry tracer.
func L() tracing.Trace {
	return tracing.Select("geometry")
}

// Polygon is an ordered sequence of knots. A cyclic polygon has an
// implicit edge from its last knot back to its first one.
type Polygon struct {
	knots []pathgeom.Point
	cycle bool
}

// Edge is a straight boundary piece of a polygon.
type Edge struct {
	P0, P1 pathgeom.Point
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates a closed polygon with the given knots.
func FromPoints(points []pathgeom.Point) *Polygon {
	pg := &Polygon{knots: make([]pathgeom.Point, len(points)), cycle: true}
	copy(pg.knots, points)
	return pg
}

// Box creates an axis-aligned rectangle spanned by two opposite corners.
// The box lies at the elevation of the first corner.
func Box(a, b pathgeom.Point) *Polygon {
	z := a.Z
	return NullPolygon().
		Knot(pathgeom.Pt(a.X, a.Y, z)).
		Knot(pathgeom.Pt(b.X, a.Y, z)).
		Knot(pathgeom.Pt(b.X, b.Y, z)).
		Knot(pathgeom.Pt(a.X, b.Y, z)).
		Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p pathgeom.Point) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves a polygon open, i.e. a polyline. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the knot count.
func (pg *Polygon) N() int {
	if pg == nil {
		return 0
	}
	return len(pg.knots)
}

// At returns knot i.
func (pg *Polygon) At(i int) pathgeom.Point {
	return pg.knots[i]
}

// Points returns a copy of the knots.
func (pg *Polygon) Points() []pathgeom.Point {
	pts := make([]pathgeom.Point, len(pg.knots))
	copy(pts, pg.knots)
	return pts
}

// Edges decomposes the polygon into its ordered boundary edges. A closed
// polygon with at least 3 knots gets a final edge back to its start.
func (pg *Polygon) Edges() []Edge {
	n := pg.N()
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, n)
	for i := 0; i < n-1; i++ {
		edges = append(edges, Edge{P0: pg.knots[i], P1: pg.knots[i+1]})
	}
	if pg.cycle && n > 2 {
		edges = append(edges, Edge{P0: pg.knots[n-1], P1: pg.knots[0]})
	}
	return edges
}

// Contour returns the ground plane projection of the polygon.
func (pg *Polygon) Contour() polyclip.Contour {
	var c polyclip.Contour
	for _, p := range pg.knots {
		c.Add(polyclip.Point{X: p.X, Y: p.Y})
	}
	return c
}

// BoundingBox returns the ground plane bounding box of the polygon.
func (pg *Polygon) BoundingBox() polyclip.Rectangle {
	return pg.Contour().BoundingBox()
}

// Contains checks if p lies within a closed polygon, on the ground plane.
func (pg *Polygon) Contains(p pathgeom.Point) bool {
	if !pg.cycle || pg.N() < 3 {
		return false
	}
	return pg.Contour().Contains(polyclip.Point{X: p.X, Y: p.Y})
}

// Transform places a polygon given in an entity's local frame into the map
// frame, as seen from the entity's pose. Elevation is shifted by the pose's
// elevation.
func (pg *Polygon) Transform(pose pathgeom.Pose) *Polygon {
	at := pathgeom.Placement(pose)
	placed := &Polygon{knots: make([]pathgeom.Point, len(pg.knots)), cycle: pg.cycle}
	for i, p := range pg.knots {
		q := at.TransformPoint(p)
		q.Z += pose.Position.Z
		placed.knots[i] = q
	}
	return placed
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.knots {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(pathgeom.PtString(p))
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}

func (pg *Polygon) String() string {
	return fmt.Sprintf("polygon<%d>{%s}", pg.N(), AsString(pg))
}
