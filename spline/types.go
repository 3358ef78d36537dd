package spline

import (
	"errors"

	"github.com/npillmayer/pathgeom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geometry'
func tracer() tracing.Trace {
	return tracing.Select("geometry")
}

const (
	defaultLengthSamples    = 100
	defaultCurvatureSamples = 100
	_epsilon                = 1e-9 // parameter tolerance for crossings
)

var (
	// ErrNoControlPoints indicates a spline without any control point.
	ErrNoControlPoints = errors.New("control points are empty, cannot determine the shape of the curve")
	// ErrInvalidControlPoint indicates a control point coordinate is NaN/Inf.
	ErrInvalidControlPoint = errors.New("control point has invalid coordinate")
	// ErrConnectivity indicates segment end points which miss their control points.
	ErrConnectivity = errors.New("spline segments are not connected")
	// ErrIndexResolution indicates an arc length which maps to no segment.
	ErrIndexResolution = errors.New("failed to calculate segment index")
	// ErrSegmentIndex indicates a segment index out of range.
	ErrSegmentIndex = errors.New("segment index does not match")
	// ErrNoCurvature indicates a spline without a curvature table.
	ErrNoCurvature = errors.New("maximum 2D curvature table is empty")
)

// Kind tells how a spline interprets its control points.
type Kind int

// A spline with 1 control point is a point, with 2 control points it is a
// straight line, with 3 or more a curve.
const (
	PointKind Kind = iota
	LineKind
	CurveKind
)

func (k Kind) String() string {
	switch k {
	case PointKind:
		return "point"
	case LineKind:
		return "line"
	}
	return "curve"
}

// Direction selects between several crossings of a path with an obstacle.
type Direction int

// Forward selects the crossing with the smallest arc length, Backward the
// one with the largest.
const (
	Forward Direction = iota
	Backward
)

// SearchBackward is a convenience for callers holding a flag.
func SearchBackward(backward bool) Direction {
	if backward {
		return Backward
	}
	return Forward
}

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// better reports whether crossing a is preferable to b when searching in
// direction d.
func (d Direction) better(a, b float64) bool {
	if d == Backward {
		return a > b
	}
	return a < b
}

// order returns segment indices 0…n-1 in search order.
func (d Direction) order(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		if d == Backward {
			idx[i] = n - 1 - i
		} else {
			idx[i] = i
		}
	}
	return idx
}

// === Options ===============================================================

// Option configures spline construction.
type Option func(*config)

type config struct {
	lengthSamples    int
	curvatureSamples int
	tolerance        float64
}

func defaultConfig() config {
	return config{
		lengthSamples:    defaultLengthSamples,
		curvatureSamples: defaultCurvatureSamples,
		tolerance:        pathgeom.FloatEpsilon,
	}
}

// WithLengthSamples sets the number of chords used to measure the arc
// length of each segment.
func WithLengthSamples(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.lengthSamples = n
		}
	}
}

// WithCurvatureSamples sets the number of samples used to find the maximum
// curvature of each segment.
func WithCurvatureSamples(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.curvatureSamples = n
		}
	}
}

// WithConnectionTolerance sets the tolerance for segment end points to
// match their control points.
func WithConnectionTolerance(e float64) Option {
	return func(c *config) {
		if e > 0 {
			c.tolerance = e
		}
	}
}
