package spline

import (
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/pathgeom/polygon"
	"github.com/npillmayer/pathgeom/polyn"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// HermiteCurve is one cubic piece of a spline. Each axis is a cubic
// polynomial over the local parameter t ∈ [0,1]:
//
//	x(t) = ax t³ + bx t² + cx t + dx
//
// and likewise for y and z.
//
// Methods taking a flag autoscale interpret their argument as a local arc
// length if the flag is set, and as the raw parameter t otherwise. Raw
// parameters outside [0,1] extrapolate the polynomials.
type HermiteCurve struct {
	x, y, z      polyn.Cubic
	length       float64
	maxCurvature float64
}

// NewHermiteCurve creates a segment from its 12 coefficients, highest term
// first per axis.
func NewHermiteCurve(ax, bx, cx, dx, ay, by, cy, dy, az, bz, cz, dz float64) *HermiteCurve {
	return newHermiteCurve([12]float64{ax, bx, cx, dx, ay, by, cy, dy, az, bz, cz, dz},
		defaultConfig())
}

// newHermiteCurve creates a segment from a coefficient block in x, y, z
// order and caches its length and maximum curvature.
func newHermiteCurve(coeff [12]float64, cfg config) *HermiteCurve {
	c := &HermiteCurve{
		x: polyn.New(coeff[0], coeff[1], coeff[2], coeff[3]),
		y: polyn.New(coeff[4], coeff[5], coeff[6], coeff[7]),
		z: polyn.New(coeff[8], coeff[9], coeff[10], coeff[11]),
	}
	c.length = c.measureLength(cfg.lengthSamples)
	c.maxCurvature = c.measureMaximum2DCurvature(cfg.curvatureSamples)
	return c
}

// Sum of chord lengths over n+1 samples.
func (c *HermiteCurve) measureLength(n int) float64 {
	length := 0.0
	prev := c.Point(0, false)
	for i := 1; i <= n; i++ {
		p := c.Point(float64(i)/float64(n), false)
		length += r3.Norm(r3.Sub(p, prev))
		prev = p
	}
	return length
}

// Maximum of |curvature| over n+1 samples.
func (c *HermiteCurve) measureMaximum2DCurvature(n int) float64 {
	samples := make([]float64, n+1)
	for i := range samples {
		samples[i] = math.Abs(c.Curvature2D(float64(i)/float64(n), false))
	}
	return floats.Max(samples)
}

// Length returns the arc length of the segment.
func (c *HermiteCurve) Length() float64 {
	return c.length
}

// Maximum2DCurvature returns the maximum absolute curvature of the segment
// on the ground plane.
func (c *HermiteCurve) Maximum2DCurvature() float64 {
	return c.maxCurvature
}

func (c *HermiteCurve) param(t float64, autoscale bool) float64 {
	if !autoscale {
		return t
	}
	if c.length == 0 {
		return 0
	}
	return t / c.length
}

// Point evaluates the segment.
func (c *HermiteCurve) Point(t float64, autoscale bool) pathgeom.Point {
	t = c.param(t, autoscale)
	return pathgeom.Pt(c.x.Eval(t), c.y.Eval(t), c.z.Eval(t))
}

// derivative returns the first derivative with respect to the raw parameter.
func (c *HermiteCurve) derivative(t float64) pathgeom.Vector {
	return pathgeom.Vector{
		X: c.x.Derivative().Eval(t),
		Y: c.y.Derivative().Eval(t),
		Z: c.z.Derivative().Eval(t),
	}
}

// Tangent returns the unit tangent of the segment.
func (c *HermiteCurve) Tangent(t float64, autoscale bool) pathgeom.Vector {
	return pathgeom.UnitOrZero(c.derivative(c.param(t, autoscale)))
}

// Normal returns the unit tangent rotated by +90° on the ground plane.
func (c *HermiteCurve) Normal(t float64, autoscale bool) pathgeom.Vector {
	d := c.derivative(c.param(t, autoscale))
	return pathgeom.UnitOrZero(pathgeom.Vector{X: -d.Y, Y: d.X})
}

// Pose returns the point at t, oriented along the tangent. Pitch follows
// the elevation slope.
func (c *HermiteCurve) Pose(t float64, autoscale bool) pathgeom.Pose {
	t = c.param(t, autoscale)
	d := c.derivative(t)
	yaw := pathgeom.Heading(d)
	pitch := math.Atan2(-d.Z, math.Hypot(d.X, d.Y))
	return pathgeom.Pose{
		Position:    c.Point(t, false),
		Orientation: pathgeom.FromRPY(0, pitch, yaw),
	}
}

// Curvature2D returns the signed curvature on the ground plane, positive
// when turning left.
func (c *HermiteCurve) Curvature2D(t float64, autoscale bool) float64 {
	t = c.param(t, autoscale)
	dx, dy := c.x.Derivative(), c.y.Derivative()
	x1, y1 := dx.Eval(t), dy.Eval(t)
	x2, y2 := dx.Derivative().Eval(t), dy.Derivative().Eval(t)
	denom := math.Pow(x1*x1+y1*y1, 1.5)
	if denom == 0 {
		return 0
	}
	return (x1*y2 - y1*x2) / denom
}

// SquaredDistanceIn2D returns the squared ground plane distance between p
// and the segment point at t.
func (c *HermiteCurve) SquaredDistanceIn2D(p pathgeom.Point, t float64, autoscale bool) float64 {
	v := c.SquaredDistanceVector(p, t, autoscale)
	return v.X*v.X + v.Y*v.Y
}

// SquaredDistanceVector returns the ground plane vector from the segment
// point at t to p.
func (c *HermiteCurve) SquaredDistanceVector(p pathgeom.Point, t float64, autoscale bool) pathgeom.Vector {
	q := c.Point(t, autoscale)
	return pathgeom.Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// BoundingBox returns the exact ground plane bounding box of the segment
// for t ∈ [0,1].
func (c *HermiteCurve) BoundingBox() polyclip.Rectangle {
	x0, x1 := c.x.Extrema(0, 1)
	y0, y1 := c.y.Extrema(0, 1)
	return polyclip.Rectangle{
		Min: polyclip.Point{X: x0, Y: y0},
		Max: polyclip.Point{X: x1, Y: y1},
	}
}

// crossings returns the raw parameters t ∈ [0,1] where the segment crosses
// the line p0–p1 on the ground plane, within the line's extent, ascending.
func (c *HermiteCurve) crossings(p0, p1 pathgeom.Point) []float64 {
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return nil
	}
	// signed distance of the curve from the probe line, as a cubic in t
	f := c.x.Add(polyn.Constant(-p0.X)).Scaled(dy).Add(c.y.Add(polyn.Constant(-p0.Y)).Scaled(-dx))
	var ts []float64
	for _, t := range f.RootsIn(0, 1, _epsilon) {
		u := ((c.x.Eval(t)-p0.X)*dx + (c.y.Eval(t)-p0.Y)*dy) / len2
		if u >= -_epsilon && u <= 1+_epsilon {
			ts = append(ts, t)
		}
	}
	return ts
}

// pick selects the first crossing in direction dir from ascending ts.
func pick(ts []float64, dir Direction) (float64, bool) {
	if len(ts) == 0 {
		return 0, false
	}
	if dir == Backward {
		return ts[len(ts)-1], true
	}
	return ts[0], true
}

// CollisionWithSegment finds where the segment crosses the line p0–p1 on
// the ground plane. Of several crossings, dir selects the first or last.
func (c *HermiteCurve) CollisionWithSegment(p0, p1 pathgeom.Point, dir Direction, autoscale bool) (float64, bool) {
	t, ok := pick(c.crossings(p0, p1), dir)
	if !ok {
		return 0, false
	}
	return c.scale(t, autoscale), true
}

// CollisionWithPolygon finds where the segment crosses any edge of pg on
// the ground plane. Of several crossings, dir selects the first or last.
func (c *HermiteCurve) CollisionWithPolygon(pg *polygon.Polygon, dir Direction, autoscale bool) (float64, bool) {
	var best float64
	found := false
	for _, edge := range pg.Edges() {
		if t, ok := pick(c.crossings(edge.P0, edge.P1), dir); ok && (!found || dir.better(t, best)) {
			best, found = t, true
		}
	}
	if !found {
		return 0, false
	}
	return c.scale(best, autoscale), true
}

// SValue projects a pose onto the segment: a lateral probe through the
// pose's position, reaching thresholdDistance to either side, is crossed
// with the segment.
func (c *HermiteCurve) SValue(pose pathgeom.Pose, thresholdDistance float64, autoscale bool) (float64, bool) {
	p0, p1 := lateralProbe(pose, thresholdDistance)
	return c.CollisionWithSegment(p0, p1, Forward, autoscale)
}

func (c *HermiteCurve) scale(t float64, autoscale bool) float64 {
	if autoscale {
		return t * c.length
	}
	return t
}

// lateralProbe returns the end points of a line through the pose's
// position, perpendicular to its heading, reaching d to either side.
func lateralProbe(pose pathgeom.Pose, d float64) (pathgeom.Point, pathgeom.Point) {
	lat := r3.Scale(d, pose.Lateral())
	return r3.Add(pose.Position, lat), r3.Sub(pose.Position, lat)
}
