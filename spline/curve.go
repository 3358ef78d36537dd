package spline

import (
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/pathgeom/polygon"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// curve is the shape of a spline with 3 or more control points: one
// Hermite segment per pair of adjacent control points.
type curve struct {
	curves     []*HermiteCurve
	lengths    []float64 // arc length of segment i
	cumulative []float64 // arc length up to the end of segment i
	total      float64
	maxCurv    []float64 // maximum 2D curvature of segment i
}

// buildCurve derives all segments and their tables from the control
// points, then checks that the segments connect the control points.
func buildCurve(points []pathgeom.Point, cfg config) (*curve, error) {
	n := len(points) - 1
	cv := &curve{
		curves:  make([]*HermiteCurve, 0, n),
		lengths: make([]float64, 0, n),
		maxCurv: make([]float64, 0, n),
	}
	for i := 0; i < n; i++ {
		cv.curves = append(cv.curves, newHermiteCurve(catmullRomCoefficients(points, i), cfg))
	}
	for _, c := range cv.curves {
		cv.lengths = append(cv.lengths, c.Length())
		cv.maxCurv = append(cv.maxCurv, c.Maximum2DCurvature())
	}
	cv.cumulative = floats.CumSum(make([]float64, n), cv.lengths)
	if n > 0 {
		cv.total = cv.cumulative[n-1]
	}
	if err := cv.checkConnection(points, cfg.tolerance); err != nil {
		return nil, err
	}
	return cv, nil
}

// catmullRomCoefficients returns the coefficient block of segment i,
// running from points[i] to points[i+1]. Interior tangents are central
// differences of the neighbouring control points. The outermost segments
// are quadratic, with one-sided tangents at the path's ends.
func catmullRomCoefficients(points []pathgeom.Point, i int) [12]float64 {
	last := len(points) - 2
	var a, b, c, d pathgeom.Vector
	switch {
	case i == 0:
		p0, p1, p2 := points[0], points[1], points[2]
		b = weighted([]float64{1, -2, 1}, p0, p1, p2)
		c = weighted([]float64{-3, 4, -1}, p0, p1, p2)
		d = r3.Scale(2, p0)
	case i == last:
		p0, p1, p2 := points[i-1], points[i], points[i+1]
		b = weighted([]float64{1, -2, 1}, p0, p1, p2)
		c = weighted([]float64{-1, 1}, p0, p2)
		d = r3.Scale(2, p1)
	default:
		p0, p1, p2, p3 := points[i-1], points[i], points[i+1], points[i+2]
		a = weighted([]float64{-1, 3, -3, 1}, p0, p1, p2, p3)
		b = weighted([]float64{2, -5, 4, -1}, p0, p1, p2, p3)
		c = weighted([]float64{-1, 1}, p0, p2)
		d = r3.Scale(2, p1)
	}
	block := [12]float64{
		a.X, b.X, c.X, d.X,
		a.Y, b.Y, c.Y, d.Y,
		a.Z, b.Z, c.Z, d.Z,
	}
	f64.Scale(block[:], block[:], 0.5)
	return block
}

// weighted returns Σ w[k]⋅pts[k].
func weighted(w []float64, pts ...pathgeom.Point) pathgeom.Vector {
	var v pathgeom.Vector
	for k, p := range pts {
		v = r3.Add(v, r3.Scale(w[k], p))
	}
	return v
}

// checkConnection asserts that segment i starts at control point i and
// ends at control point i+1.
func (cv *curve) checkConnection(points []pathgeom.Point, tolerance float64) error {
	if len(cv.curves) == 0 {
		return fmt.Errorf("%w: segment count should not be zero", ErrConnectivity)
	}
	if len(points) != len(cv.curves)+1 {
		return fmt.Errorf("%w: %d control points for %d segments", ErrConnectivity,
			len(points), len(cv.curves))
	}
	for i, c := range cv.curves {
		if p := c.Point(0, false); !pathgeom.EqualWithin(points[i], p, tolerance) {
			return fmt.Errorf("%w: start point %s of segment %d does not match %s",
				ErrConnectivity, pathgeom.PtString(p), i, pathgeom.PtString(points[i]))
		}
		if p := c.Point(1, false); !pathgeom.EqualWithin(points[i+1], p, tolerance) {
			return fmt.Errorf("%w: end point %s of segment %d does not match %s",
				ErrConnectivity, pathgeom.PtString(p), i, pathgeom.PtString(points[i+1]))
		}
	}
	return nil
}

func (cv *curve) length() float64            { return cv.total }
func (cv *curve) segmentLengths() []float64  { return cv.lengths }
func (cv *curve) curvatureMaxima() []float64 { return cv.maxCurv }

// resolve maps a global arc length to a segment and a local arc length.
// Arc lengths before the start or beyond the end are not clamped, but
// extrapolate the first or last segment.
func (cv *curve) resolve(s float64) (int, float64, error) {
	if s < 0 {
		return 0, s, nil
	}
	last := len(cv.curves) - 1
	if s >= cv.total {
		return last, s - (cv.total - cv.lengths[last]), nil
	}
	prev := 0.0
	for i, cum := range cv.cumulative {
		if prev <= s && s < cum {
			return i, s - prev, nil
		}
		prev = cum
	}
	return 0, 0, fmt.Errorf("%w: s = %g", ErrIndexResolution, s)
}

// offset is the arc length up to the start of segment i.
func (cv *curve) offset(i int) float64 {
	return cv.cumulative[i] - cv.lengths[i]
}

func (cv *curve) globalS(i int, s float64) (float64, error) {
	if i < 0 || i >= len(cv.curves) {
		return 0, fmt.Errorf("%w: index %d, %d segments", ErrSegmentIndex, i, len(cv.curves))
	}
	return cv.offset(i) + s, nil
}

// at resolves s and returns the segment and local arc length. NaN arc
// lengths do not resolve.
func (cv *curve) at(s float64) (*HermiteCurve, float64) {
	i, local, err := cv.resolve(s)
	if err != nil {
		panic(err)
	}
	return cv.curves[i], local
}

func (cv *curve) point(s float64) pathgeom.Point {
	c, local := cv.at(s)
	return c.Point(local, true)
}

func (cv *curve) tangent(s float64) pathgeom.Vector {
	c, local := cv.at(s)
	return c.Tangent(local, true)
}

func (cv *curve) normal(s float64) pathgeom.Vector {
	c, local := cv.at(s)
	return c.Normal(local, true)
}

func (cv *curve) pose(s float64) pathgeom.Pose {
	c, local := cv.at(s)
	return c.Pose(local, true)
}

func (cv *curve) curvature(s float64) float64 {
	c, local := cv.at(s)
	return c.Curvature2D(local, true)
}

func (cv *curve) squaredDistanceVector(p pathgeom.Point, s float64) pathgeom.Vector {
	c, local := cv.at(s)
	return c.SquaredDistanceVector(p, local, true)
}

// collisionWithPolygon scans the segments in search order and returns the
// first segment's crossing. Segments whose bounding box misses the
// polygon's are skipped. Crossings tolerate _epsilon relative to edge and
// segment length, so boxes grow by the same amount.
func (cv *curve) collisionWithPolygon(pg *polygon.Polygon, dir Direction) (float64, bool) {
	box := pg.BoundingBox()
	margin := _epsilon * math.Max(1, math.Max(longestEdge(pg), cv.total))
	for _, i := range dir.order(len(cv.curves)) {
		if !grow(cv.curves[i].BoundingBox(), margin).Overlaps(box) {
			continue
		}
		if s, ok := cv.curves[i].CollisionWithPolygon(pg, dir, true); ok {
			return cv.offset(i) + s, true
		}
	}
	return 0, false
}

func (cv *curve) collisionWithSegment(p0, p1 pathgeom.Point, dir Direction) (float64, bool) {
	for _, i := range dir.order(len(cv.curves)) {
		if s, ok := cv.curves[i].CollisionWithSegment(p0, p1, dir, true); ok {
			return cv.offset(i) + s, true
		}
	}
	return 0, false
}

// project returns the first segment, in path order, which the pose
// projects onto. It does not search for the closest one.
func (cv *curve) project(pose pathgeom.Pose, threshold float64) (float64, bool) {
	for i, c := range cv.curves {
		if local, ok := c.SValue(pose, threshold, true); ok {
			return cv.offset(i) + local, true
		}
	}
	return 0, false
}

func longestEdge(pg *polygon.Polygon) float64 {
	l := 0.0
	for _, e := range pg.Edges() {
		l = math.Max(l, pathgeom.Distance2D(e.P0, e.P1))
	}
	return l
}

func grow(r polyclip.Rectangle, d float64) polyclip.Rectangle {
	r.Min.X, r.Min.Y = r.Min.X-d, r.Min.Y-d
	r.Max.X, r.Max.Y = r.Max.X+d, r.Max.Y+d
	return r
}
