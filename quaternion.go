package rotmath

import (
	"fmt"

	"github.com/solarlune/rotmath/math32"
)

// Quaternion represents a rotation as four components. X, Y, and Z are the vector part (the rotation axis scaled by
// the sine of half the angle) and W is the scalar part (the cosine of half the angle).
type Quaternion struct {
	X, Y, Z, W float32
}

// NewQuaternion creates a new Quaternion out of the x, y, z, and w components given.
func NewQuaternion(x, y, z, w float32) Quaternion {
	return Quaternion{x, y, z, w}
}

// IdentityQuaternion returns a Quaternion that doesn't rotate anything (0, 0, 0, 1).
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// NewQuaternionFromAxisAngle returns a unit Quaternion that rotates by the angle given (in radians) around the axis given.
// The axis must already be normalized.
func NewQuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	s, c := math32.Sincos(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: c,
	}
}

// Conjugate returns the Quaternion with its vector part negated. For a unit Quaternion, this is the opposite rotation.
func (quat Quaternion) Conjugate() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, quat.W}
}

// Negate returns the Quaternion with every component negated. This represents the same rotation.
func (quat Quaternion) Negate() Quaternion {
	return Quaternion{-quat.X, -quat.Y, -quat.Z, -quat.W}
}

// NormSquared returns the squared length of the Quaternion.
func (quat Quaternion) NormSquared() float32 {
	n := quat.length()
	return float32(n * n)
}

// Norm returns the length of the Quaternion; rotations are represented by Quaternions with a norm of 1.
func (quat Quaternion) Norm() float32 {
	return float32(quat.length())
}

func (quat Quaternion) length() float64 {
	return math32.Length(quat.X, quat.Y, quat.Z, quat.W)
}

// Normalize returns a copy of the Quaternion scaled to unit length. A zero-length Quaternion normalizes
// to the identity Quaternion.
func (quat Quaternion) Normalize() Quaternion {
	norm := quat.length()
	if norm == 0 {
		return IdentityQuaternion()
	}
	return quat.divide(norm)
}

// Inverse returns the Quaternion that undoes this one, calculated as the conjugate divided by the squared norm.
// A zero-length Quaternion has no inverse; the identity Quaternion is returned instead.
func (quat Quaternion) Inverse() Quaternion {
	norm := quat.length()
	if norm == 0 {
		return IdentityQuaternion()
	}
	// The squared norm of a tiny Quaternion is subnormal in float32, so it's divided out in float64.
	return quat.Conjugate().divide(norm * norm)
}

// Multiply returns the Hamilton product of the two Quaternions (quat * other). Like matrix multiplication, this
// isn't commutative; rotating a vector by the result applies other first, then quat.
func (quat Quaternion) Multiply(other Quaternion) Quaternion {
	return Quaternion{
		X: quat.W*other.X + quat.X*other.W + quat.Y*other.Z - quat.Z*other.Y,
		Y: quat.W*other.Y - quat.X*other.Z + quat.Y*other.W + quat.Z*other.X,
		Z: quat.W*other.Z + quat.X*other.Y - quat.Y*other.X + quat.Z*other.W,
		W: quat.W*other.W - quat.X*other.X - quat.Y*other.Y - quat.Z*other.Z,
	}
}

// Dot returns the 4D dot product of the two Quaternions.
func (quat Quaternion) Dot(other Quaternion) float32 {
	return quat.X*other.X + quat.Y*other.Y + quat.Z*other.Z + quat.W*other.W
}

// RotateVector returns the vector rotated by the Quaternion, computed as the sandwich product q * v * q⁻¹, where v
// is treated as a Quaternion with a W of 0.
func (quat Quaternion) RotateVector(vec Vector3) Vector3 {
	v := Quaternion{X: vec.X, Y: vec.Y, Z: vec.Z}
	r := quat.Multiply(v).Multiply(quat.Inverse())
	return Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// ToMatrix4 returns the rotation Matrix4 equivalent to the Quaternion. The Quaternion should be of unit length.
// The result is laid out the same way as MakeRotateAxisAngle's.
func (quat Quaternion) ToMatrix4() Matrix4 {

	x, y, z, w := quat.X, quat.Y, quat.Z, quat.W

	mat := NewMatrix4()

	mat[0][0] = 1 - 2*(y*y+z*z)
	mat[0][1] = 2 * (x*y + w*z)
	mat[0][2] = 2 * (x*z - w*y)

	mat[1][0] = 2 * (x*y - w*z)
	mat[1][1] = 1 - 2*(x*x+z*z)
	mat[1][2] = 2 * (y*z + w*x)

	mat[2][0] = 2 * (x*z + w*y)
	mat[2][1] = 2 * (y*z - w*x)
	mat[2][2] = 1 - 2*(x*x+y*y)

	return mat

}

// MakeRotateMatrix returns the rotation Matrix4 equivalent to the given unit Quaternion.
func MakeRotateMatrix(quat Quaternion) Matrix4 {
	return quat.ToMatrix4()
}

// ToAxisAngle returns the axis and angle (in radians) of the rotation the Quaternion represents. The identity
// rotation has no meaningful axis, so WorldUp is returned with an angle of 0.
func (quat Quaternion) ToAxisAngle() AxisAngle {

	quat = quat.Normalize()

	// Keep the angle within [0, pi].
	if quat.W < 0 {
		quat = quat.Negate()
	}

	sinHalf := float32(math32.Length(quat.X, quat.Y, quat.Z))

	if sinHalf < 1e-6 {
		return AxisAngle{Axis: WorldUp}
	}

	return AxisAngle{
		Axis:  Vector3{X: quat.X / sinHalf, Y: quat.Y / sinHalf, Z: quat.Z / sinHalf},
		Angle: 2 * math32.Atan2(sinHalf, quat.W),
	}

}

// Lerp linearly interpolates from quat towards other by the percent given, then normalizes the result.
// It takes the shorter path, like Slerp.
func (quat Quaternion) Lerp(other Quaternion, percent float32) Quaternion {
	if quat.Dot(other) < 0 {
		other = other.Negate()
	}
	return lerp(quat, other, percent).Normalize()
}

// Slerp spherically interpolates from quat towards other by the percent given (0 returning quat, 1 returning other).
// See the package-level Slerp function.
func (quat Quaternion) Slerp(other Quaternion, percent float32) Quaternion {
	return Slerp(quat, other, percent)
}

// Slerp spherically interpolates between two unit Quaternions by t, moving at a constant angular speed along the
// shorter of the two arcs between them. The result is always of unit length.
func Slerp(q0, q1 Quaternion, t float32) Quaternion {

	dot := q0.Dot(q1)

	// q and -q are the same rotation; flipping one keeps us on the shorter arc.
	if dot < 0 {
		q0 = q0.Negate()
		dot = -dot
	}

	// Nearly identical rotations would divide by a sine that's nearly 0.
	if dot > 1-slerpEpsilon {
		return lerp(q0, q1, t).Normalize()
	}

	theta := math32.Acos(dot)
	sinTheta := math32.Sin(theta)

	ratioA := math32.Sin((1-t)*theta) / sinTheta
	ratioB := math32.Sin(t*theta) / sinTheta

	return q0.scale(ratioA).add(q1.scale(ratioB)).Normalize()

}

// Equals returns true if each component of the two Quaternions are within a small tolerance of each other.
// Note that q and q.Negate() represent the same rotation but aren't Equal; see SameRotation.
func (quat Quaternion) Equals(other Quaternion) bool {
	eps := float32(1e-4)
	return math32.Abs(quat.X-other.X) <= eps &&
		math32.Abs(quat.Y-other.Y) <= eps &&
		math32.Abs(quat.Z-other.Z) <= eps &&
		math32.Abs(quat.W-other.W) <= eps
}

// SameRotation returns true if the two Quaternions represent the same rotation (i.e. they're equal or one is
// the negation of the other).
func (quat Quaternion) SameRotation(other Quaternion) bool {
	return quat.Equals(other) || quat.Equals(other.Negate())
}

func (quat Quaternion) String() string {
	return fmt.Sprintf("{%.3f, %.3f, %.3f, %.3f}", quat.X, quat.Y, quat.Z, quat.W)
}

func (quat Quaternion) divide(divisor float64) Quaternion {
	return Quaternion{
		X: float32(float64(quat.X) / divisor),
		Y: float32(float64(quat.Y) / divisor),
		Z: float32(float64(quat.Z) / divisor),
		W: float32(float64(quat.W) / divisor),
	}
}

func (quat Quaternion) scale(scalar float32) Quaternion {
	return Quaternion{quat.X * scalar, quat.Y * scalar, quat.Z * scalar, quat.W * scalar}
}

func (quat Quaternion) add(other Quaternion) Quaternion {
	return Quaternion{quat.X + other.X, quat.Y + other.Y, quat.Z + other.Z, quat.W + other.W}
}

func lerp(q0, q1 Quaternion, t float32) Quaternion {
	return q0.scale(1 - t).add(q1.scale(t))
}
