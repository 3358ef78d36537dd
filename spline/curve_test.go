package spline

import (
	"testing"

	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func straightCurve(t *testing.T) ([]pathgeom.Point, *curve) {
	points := []pathgeom.Point{pathgeom.Pt(0, 0, 0), pathgeom.Pt(10, 0, 0),
		pathgeom.Pt(20, 0, 0), pathgeom.Pt(30, 0, 0)}
	cv, err := buildCurve(points, defaultConfig())
	require.NoError(t, err)
	return points, cv
}

func TestConnectionOfDisplacedSegment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points, cv := straightCurve(t)
	require.NoError(t, cv.checkConnection(points, defaultConfig().tolerance))
	// x(t) = 10 + 10t, y(t) = 1: parallel to segment 1, one unit off
	cv.curves[1] = NewHermiteCurve(0, 0, 10, 10, 0, 0, 0, 1, 0, 0, 0, 0)
	err := cv.checkConnection(points, defaultConfig().tolerance)
	assert.ErrorIs(t, err, ErrConnectivity)
	assert.Contains(t, err.Error(), "segment 1")
}

func TestConnectionOfEmptyCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points, cv := straightCurve(t)
	err := (&curve{}).checkConnection(points, defaultConfig().tolerance)
	assert.ErrorIs(t, err, ErrConnectivity)
	err = cv.checkConnection(points[:3], defaultConfig().tolerance)
	assert.ErrorIs(t, err, ErrConnectivity)
}

func TestSegmentOffsets(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, cv := straightCurve(t)
	sum := 0.0
	for i, l := range cv.lengths {
		assert.InDelta(t, sum, cv.offset(i), 1e-12)
		sum += l
	}
	assert.InDelta(t, 30.0, sum, 1e-9)
}
