package spline

import (
	"testing"

	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/pathgeom/polygon"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSegmentBasics(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewLineSegment(pathgeom.Pt(0, 0, 0), pathgeom.Pt(3, 4, 0))
	assert.InDelta(t, 5.0, l.Length(), 1e-12)
	assert.Equal(t, pathgeom.Pt(3, 4, 0), l.Vector())
	tang := l.Tangent()
	assert.InDelta(t, 0.6, tang.X, 1e-12)
	assert.InDelta(t, 0.8, tang.Y, 1e-12)
	n := l.Normal()
	assert.InDelta(t, -0.8, n.X, 1e-12)
	assert.InDelta(t, 0.6, n.Y, 1e-12)
	p := l.Point(10) // beyond End
	assert.InDelta(t, 6.0, p.X, 1e-12)
	assert.InDelta(t, 8.0, p.Y, 1e-12)
}

func TestDegenerateLineSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewLineSegment(pathgeom.Pt(1, 1, 1), pathgeom.Pt(1, 1, 1))
	assert.Equal(t, 0.0, l.Length())
	assert.Equal(t, pathgeom.Vector{}, l.Tangent())
	assert.Equal(t, pathgeom.Vector{}, l.Normal())
	assert.Equal(t, pathgeom.Pt(1, 1, 1), l.Point(5))
	_, ok := l.Intersection2D(NewLineSegment(pathgeom.Pt(0, 0, 0), pathgeom.Pt(2, 2, 0)))
	assert.False(t, ok)
}

func TestLineSegmentIntersection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewLineSegment(pathgeom.Pt(0, 0, 0), pathgeom.Pt(10, 0, 5))
	s, ok := l.Intersection2D(NewLineSegment(pathgeom.Pt(4, -1, 0), pathgeom.Pt(4, 1, 0)))
	require.True(t, ok)
	assert.InDelta(t, 0.4*l.Length(), s, 1e-9)
	u, ok := l.Intersection2DParameter(NewLineSegment(pathgeom.Pt(4, -1, 0), pathgeom.Pt(4, 1, 0)))
	require.True(t, ok)
	assert.InDelta(t, 0.4, u, 1e-12)
	//
	_, ok = l.Intersection2D(NewLineSegment(pathgeom.Pt(0, 1, 0), pathgeom.Pt(10, 1, 0)))
	assert.False(t, ok, "parallel segments do not intersect")
	_, ok = l.Intersection2D(NewLineSegment(pathgeom.Pt(12, -1, 0), pathgeom.Pt(12, 1, 0)))
	assert.False(t, ok, "crossing beyond the end of l")
	_, ok = l.Intersection2D(NewLineSegment(pathgeom.Pt(4, 1, 0), pathgeom.Pt(4, 3, 0)))
	assert.False(t, ok, "crossing beyond the end of the other segment")
}

func TestLineSegmentTouchesEndPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewLineSegment(pathgeom.Pt(0, 0, 0), pathgeom.Pt(10, 0, 0))
	s, ok := l.Intersection2D(NewLineSegment(pathgeom.Pt(10, -1, 0), pathgeom.Pt(10, 1, 0)))
	require.True(t, ok)
	assert.InDelta(t, 10.0, s, 1e-9)
}

func TestLineSegmentWithPolygon(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := NewLineSegment(pathgeom.Pt(0, 0, 0), pathgeom.Pt(10, 0, 0))
	box := polygon.Box(pathgeom.Pt(4, -1, 0), pathgeom.Pt(6, 1, 0))
	s, ok := l.IntersectionWithPolygon(box, Forward)
	require.True(t, ok)
	assert.InDelta(t, 4.0, s, 1e-9)
	s, ok = l.IntersectionWithPolygon(box, Backward)
	require.True(t, ok)
	assert.InDelta(t, 6.0, s, 1e-9)
	_, ok = l.IntersectionWithPolygon(polygon.Box(pathgeom.Pt(4, 2, 0), pathgeom.Pt(6, 3, 0)), Forward)
	assert.False(t, ok)
	_, ok = l.IntersectionWithPolygon(nil, Forward)
	assert.False(t, ok)
}
