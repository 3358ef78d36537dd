package polygon

import (
	"math"
	"testing"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(pathgeom.Pt(0, 0, 0)).Knot(pathgeom.Pt(1, 3, 0)).Knot(pathgeom.Pt(3, 0, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Len(t, pg.Edges(), 3)
	assert.Equal(t, "(0,0,0) -- (1,3,0) -- (3,0,0) -- cycle", AsString(pg))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(pathgeom.Pt(0, 5, 1), pathgeom.Pt(4, 1, 9))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	bb := box.BoundingBox()
	assert.Equal(t, polyclip.Point{X: 0, Y: 1}, bb.Min)
	assert.Equal(t, polyclip.Point{X: 4, Y: 5}, bb.Max)
	assert.Equal(t, 1.0, box.At(2).Z)
}

func TestOpenPolylineEdges(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := NullPolygon().Knot(pathgeom.Pt(0, 0, 0)).Knot(pathgeom.Pt(1, 0, 0)).Knot(pathgeom.Pt(1, 1, 0)).End()
	edges := line.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, pathgeom.Pt(1, 1, 0), edges[1].P1)
	two := NullPolygon().Knot(pathgeom.Pt(0, 0, 0)).Knot(pathgeom.Pt(1, 0, 0)).Cycle()
	assert.Len(t, two.Edges(), 1)
	assert.Empty(t, NullPolygon().Knot(pathgeom.Pt(0, 0, 0)).Edges())
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(pathgeom.Pt(0, 0, 0), pathgeom.Pt(2, 2, 0))
	assert.True(t, box.Contains(pathgeom.Pt(1, 1, 100)))
	assert.False(t, box.Contains(pathgeom.Pt(3, 1, 0)))
	assert.False(t, NullPolygon().Knot(pathgeom.Pt(0, 0, 0)).Contains(pathgeom.Pt(0, 0, 0)))
}

func TestFootprint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := BoundingBox{Center: pathgeom.Pt(1, 0, 1), Length: 4, Width: 2, Height: 2}
	local := FromBoundingBox(box, Extension{Front: 1})
	require.Equal(t, 4, local.N())
	assert.Equal(t, pathgeom.Pt(-1, -1, 0), local.At(0))
	assert.Equal(t, pathgeom.Pt(4, -1, 0), local.At(1))
	assert.Equal(t, pathgeom.Pt(4, 1, 0), local.At(2))
	corners := local.Points()
	assert.Equal(t, pathgeom.Pt(-1, 1, 0), corners[3])
	corners[0].X = 99
	assert.Equal(t, -1.0, local.At(0).X, "Points returns a copy")

	pose := pathgeom.NewPose(pathgeom.Pt(10, 10, 5), math.Pi/2)
	placed := Footprint(pose, box, Extension{Front: 1})
	front := placed.At(1) // front right corner, now pointing north
	assert.InDelta(t, 11.0, front.X, 1e-9)
	assert.InDelta(t, 14.0, front.Y, 1e-9)
	assert.InDelta(t, 5.0, front.Z, 1e-9)
	assert.True(t, placed.Contains(pathgeom.Pt(10, 12, 0)))
	assert.False(t, placed.Contains(pathgeom.Pt(12, 12, 0)))
}
