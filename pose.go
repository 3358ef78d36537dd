package pathgeom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Pose is a position in map space together with an orientation.
// The orientation rotates the entity frame (x forward, y left, z up)
// into the map frame.
type Pose struct {
	Position    Point
	Orientation quat.Number
}

// IdentityOrientation does not rotate at all.
var IdentityOrientation = quat.Number{Real: 1}

// NewPose creates a pose at position p, facing heading yaw on the ground
// plane.
func NewPose(p Point, yaw float64) Pose {
	return Pose{Position: p, Orientation: FromRPY(0, 0, yaw)}
}

// FromRPY builds an orientation from roll, pitch and yaw (radians),
// applied in the order yaw, pitch, roll (intrinsic Z-Y-X).
func FromRPY(roll, pitch, yaw float64) quat.Number {
	sr, cr := math.Sincos(roll / 2)
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)
	qRoll := quat.Number{Real: cr, Imag: sr}
	qPitch := quat.Number{Real: cp, Jmag: sp}
	qYaw := quat.Number{Real: cy, Kmag: sy}
	return quat.Mul(quat.Mul(qYaw, qPitch), qRoll)
}

// Yaw returns the heading of the pose on the ground plane.
func (pose Pose) Yaw() float64 {
	q := pose.Orientation
	return math.Atan2(2*(q.Real*q.Kmag+q.Imag*q.Jmag), 1-2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag))
}

// Pitch returns the pose's rotation around its y-axis.
func (pose Pose) Pitch() float64 {
	q := pose.Orientation
	sinp := 2 * (q.Real*q.Jmag - q.Kmag*q.Imag)
	if sinp >= 1 {
		return math.Pi / 2
	} else if sinp <= -1 {
		return -math.Pi / 2
	}
	return math.Asin(sinp)
}

// Rotate turns a vector from the entity frame into the map frame.
func (pose Pose) Rotate(v Vector) Vector {
	q := pose.Orientation
	if q == (quat.Number{}) {
		tracer().Debugf("pose without orientation, assuming identity")
		q = IdentityOrientation
	}
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	r = quat.Scale(1/quat.Abs(q)/quat.Abs(q), r)
	return Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// Lateral is the unit vector pointing to the left of the pose's heading,
// projected to the ground plane.
func (pose Pose) Lateral() Vector {
	l := pose.Rotate(Vector{Y: 1})
	l.Z = 0
	return UnitOrZero(l)
}

func (pose Pose) String() string {
	return fmt.Sprintf("%s@%.4gdeg", PtString(pose.Position), round4(pose.Yaw()/Deg2Rad))
}
