package rotmath

// AxisAngle represents a rotation in radians around a given 3D axis. An AxisAngle could be stored in a 4-dimensional vector; it's separated
// here into a 3D Vector and angle for simplicity and readability.
type AxisAngle struct {
	Axis  Vector3 // 3 dimensional unit axis for rotating
	Angle float32 // Rotation in radians
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation. The axis is normalized.
func NewAxisAngle(axis Vector3, angle float32) AxisAngle {
	return AxisAngle{
		Axis:  axis.Unit(),
		Angle: angle,
	}
}

// ToMatrix4 returns the rotation Matrix4 for the AxisAngle; see MakeRotateAxisAngle.
func (aa AxisAngle) ToMatrix4() Matrix4 {
	return MakeRotateAxisAngle(aa.Axis, aa.Angle)
}

// ToQuaternion returns the unit Quaternion for the AxisAngle.
func (aa AxisAngle) ToQuaternion() Quaternion {
	return NewQuaternionFromAxisAngle(aa.Axis, aa.Angle)
}

// RotateVector rotates the given Vector by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of [0, 0, 1] (+Z) and an Angle of pi / 2, axisAngle.RotateVector(Vector3{1, 0, 0}) would return Vector3{0, 1, 0}.
func (aa AxisAngle) RotateVector(vec Vector3) Vector3 {
	return aa.ToMatrix4().MultVec(vec)
}
