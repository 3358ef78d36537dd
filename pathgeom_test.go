package pathgeom

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if FloatEpsilon < 1e-7 || FloatEpsilon > 2e-7 {
		t.Errorf("Expected single precision epsilon, got %g", FloatEpsilon)
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	r := p + q
	if !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.InDelta(t, 1.0, P(1, 0).Cross(P(0, 1)), 1e-12)
	assert.InDelta(t, 5.0, P(3, 4).Abs(), 1e-12)
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !P(1, 0).Rotated(180 * Deg2Rad).Shifted(P(1, 0)).Equal(Origin) {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestPlacement(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pose := NewPose(Pt(10, 5, 2), math.Pi/2)
	q := Placement(pose).TransformPoint(Pt(1, 0, 7))
	assert.InDelta(t, 10.0, q.X, 1e-9)
	assert.InDelta(t, 6.0, q.Y, 1e-9)
	assert.InDelta(t, 7.0, q.Z, 1e-9)
}

func TestPoseOrientation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pose := NewPose(Origin3, 30*Deg2Rad)
	assert.InDelta(t, 30*Deg2Rad, pose.Yaw(), 1e-9)
	assert.InDelta(t, 0.0, pose.Pitch(), 1e-9)
	fwd := pose.Rotate(Vector{X: 1})
	assert.InDelta(t, math.Cos(30*Deg2Rad), fwd.X, 1e-9)
	assert.InDelta(t, math.Sin(30*Deg2Rad), fwd.Y, 1e-9)
	lat := pose.Lateral()
	assert.InDelta(t, -math.Sin(30*Deg2Rad), lat.X, 1e-9)
	assert.InDelta(t, math.Cos(30*Deg2Rad), lat.Y, 1e-9)
	tilted := Pose{Orientation: FromRPY(0, -0.25, 1.0)}
	assert.InDelta(t, 1.0, tilted.Yaw(), 1e-9)
	assert.InDelta(t, -0.25, tilted.Pitch(), 1e-9)
}

func TestZeroPoseRotatesNothing(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	v := Pose{}.Rotate(Vector{X: 1, Y: 2, Z: 3})
	assert.Equal(t, Vector{X: 1, Y: 2, Z: 3}, v)
}

func TestPointHelpers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.True(t, EqualWithin(Pt(1, 2, 3), Pt(1+1e-8, 2, 3-1e-8), FloatEpsilon))
	assert.False(t, EqualWithin(Pt(1, 2, 3), Pt(1.001, 2, 3), FloatEpsilon))
	assert.Equal(t, Vector{}, UnitOrZero(Vector{}))
	u := UnitOrZero(Vector{X: 3, Y: 4})
	assert.InDelta(t, 0.6, u.X, 1e-12)
	assert.InDelta(t, 5.0, Distance2D(Pt(0, 0, 9), Pt(3, 4, -9)), 1e-12)
	assert.False(t, IsFinitePoint(Pt(math.NaN(), 0, 0)))
	assert.Equal(t, "(1,2.5,-3)", PtString(Pt(1, 2.5, -3)))
}

func TestCombineOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	at := Translation(P(1, 0)).Combine(Rotation(90 * Deg2Rad))
	if q := at.Transform(Origin); !q.Equal(P(0, 1)) {
		t.Errorf("Expected translation first, then rotation, got %v", q)
	}
	assert.Equal(t, "[1,0,0|0,1,0]", Identity().String())
	assert.Equal(t, P(2, 3), Identity().Combine(Identity()).Transform(P(2, 3)))
}
