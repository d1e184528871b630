package rotmath

import (
	"strconv"
	"strings"

	"github.com/solarlune/rotmath/math32"
)

// Matrix4 represents a 4x4 matrix for rotation (and translation). A Matrix4 in rotmath is row-major (i.e. the X axis is matrix[0]),
// and vectors are multiplied as rows on the left (v * M), so translation lives in matrix[3].
type Matrix4 [4][4]float32

// NewMatrix4 returns a new identity Matrix4.
func NewMatrix4() Matrix4 {

	mat := Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return mat

}

// MakeRotateAxisAngle returns a new Matrix4 that rotates by the angle given (in radians) around the axis given, using the
// Rodrigues rotation formula. This rotation works as though you pierced the object utilizing the matrix through by the axis,
// and then rotated it counter-clockwise by the angle in radians.
// The axis must already be normalized; it is not checked.
func MakeRotateAxisAngle(axis Vector3, angle float32) Matrix4 {
	s, c := math32.Sincos(angle)
	return newRotationMatrix(axis, s, c)
}

// newRotationMatrix fills in the Rodrigues rotation matrix for a unit axis from the sine and cosine of the angle.
func newRotationMatrix(axis Vector3, s, c float32) Matrix4 {

	mat := NewMatrix4()
	m := 1 - c

	mat[0][0] = axis.X*axis.X*m + c
	mat[0][1] = axis.X*axis.Y*m + axis.Z*s
	mat[0][2] = axis.X*axis.Z*m - axis.Y*s

	mat[1][0] = axis.X*axis.Y*m - axis.Z*s
	mat[1][1] = axis.Y*axis.Y*m + c
	mat[1][2] = axis.Y*axis.Z*m + axis.X*s

	mat[2][0] = axis.X*axis.Z*m + axis.Y*s
	mat[2][1] = axis.Y*axis.Z*m - axis.X*s
	mat[2][2] = axis.Z*axis.Z*m + c

	return mat

}

// DirectionToDirection returns the smallest rotation Matrix4 that turns the from direction so that it points along the to direction.
// Neither direction needs to be normalized. If from and to point in opposite directions, the rotation is a half-turn around
// an arbitrary axis perpendicular to from. If either direction is zero-length, DirectionToDirection returns an identity
// Matrix4 and ErrZeroVector.
func DirectionToDirection(from, to Vector3) (Matrix4, error) {

	if from.IsZero() || to.IsZero() {
		return NewMatrix4(), ErrZeroVector
	}

	from = from.Unit()
	to = to.Unit()

	cross := from.Cross(to)
	cos := from.Dot(to)
	sin := cross.Magnitude()

	if cos <= -1+antiParallelEpsilon {
		// The cross product is (close to) zero here, so it can't be used as the axis.
		return newRotationMatrix(perpendicular(from), 0, -1), nil
	}

	if sin < 1e-7 {
		return NewMatrix4(), nil
	}

	return newRotationMatrix(cross.Scale(1/sin), sin, cos), nil

}

// MustDirectionToDirection is DirectionToDirection, but panics if either direction is zero-length.
func MustDirectionToDirection(from, to Vector3) Matrix4 {
	mat, err := DirectionToDirection(from, to)
	if err != nil {
		panic(err)
	}
	return mat
}

// perpendicular returns a unit vector perpendicular to the given (non-zero) unit vector.
func perpendicular(vec Vector3) Vector3 {
	eps := float32(antiParallelEpsilon)
	if math32.Abs(vec.X) > eps || math32.Abs(vec.Y) > eps {
		return Vector3{X: vec.Y, Y: -vec.X}.Unit()
	}
	// X and Y are both ~0, so the vector lies along Z.
	return Vector3{Y: vec.Z, Z: -vec.Y}.Unit()
}

// ToQuaternion returns a Quaternion representative of the Matrix4's rotation (assuming it is just a purely rotational Matrix4).
func (matrix Matrix4) ToQuaternion() Quaternion {

	trace := matrix[0][0] + matrix[1][1] + matrix[2][2]

	// Pick whichever of w, x, y, or z is largest to divide by, so half-turns (where w is 0) still convert.
	switch {

	case trace > 0:
		s := math32.Sqrt(trace+1) * 2 // 4w
		return Quaternion{
			X: (matrix[1][2] - matrix[2][1]) / s,
			Y: (matrix[2][0] - matrix[0][2]) / s,
			Z: (matrix[0][1] - matrix[1][0]) / s,
			W: s / 4,
		}

	case matrix[0][0] > matrix[1][1] && matrix[0][0] > matrix[2][2]:
		s := math32.Sqrt(1+matrix[0][0]-matrix[1][1]-matrix[2][2]) * 2 // 4x
		return Quaternion{
			X: s / 4,
			Y: (matrix[0][1] + matrix[1][0]) / s,
			Z: (matrix[2][0] + matrix[0][2]) / s,
			W: (matrix[1][2] - matrix[2][1]) / s,
		}

	case matrix[1][1] > matrix[2][2]:
		s := math32.Sqrt(1+matrix[1][1]-matrix[0][0]-matrix[2][2]) * 2 // 4y
		return Quaternion{
			X: (matrix[0][1] + matrix[1][0]) / s,
			Y: s / 4,
			Z: (matrix[1][2] + matrix[2][1]) / s,
			W: (matrix[2][0] - matrix[0][2]) / s,
		}

	default:
		s := math32.Sqrt(1+matrix[2][2]-matrix[0][0]-matrix[1][1]) * 2 // 4z
		return Quaternion{
			X: (matrix[2][0] + matrix[0][2]) / s,
			Y: (matrix[1][2] + matrix[2][1]) / s,
			Z: s / 4,
			W: (matrix[0][1] - matrix[1][0]) / s,
		}

	}

}

// Transposed transposes a Matrix4, switching the Matrix from being Row Major to being Column Major. For orthonormalized Matrices (matrices
// that have rows that are normalized (having a length of 1), like rotation matrices), this is equivalent to inverting it.
func (matrix Matrix4) Transposed() Matrix4 {

	new := NewMatrix4()

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			new[i][j] = matrix[j][i]
		}
	}

	return new

}

// minors returns the six 2x2 determinants of the top two rows and the six of the bottom two rows, which
// both Determinant and Inverted are built out of.
func (matrix Matrix4) minors() (s, c [6]float32) {

	m := matrix

	s[0] = m[0][0]*m[1][1] - m[1][0]*m[0][1]
	s[1] = m[0][0]*m[1][2] - m[1][0]*m[0][2]
	s[2] = m[0][0]*m[1][3] - m[1][0]*m[0][3]
	s[3] = m[0][1]*m[1][2] - m[1][1]*m[0][2]
	s[4] = m[0][1]*m[1][3] - m[1][1]*m[0][3]
	s[5] = m[0][2]*m[1][3] - m[1][2]*m[0][3]

	c[0] = m[2][0]*m[3][1] - m[3][0]*m[2][1]
	c[1] = m[2][0]*m[3][2] - m[3][0]*m[2][2]
	c[2] = m[2][0]*m[3][3] - m[3][0]*m[2][3]
	c[3] = m[2][1]*m[3][2] - m[3][1]*m[2][2]
	c[4] = m[2][1]*m[3][3] - m[3][1]*m[2][3]
	c[5] = m[2][2]*m[3][3] - m[3][2]*m[2][3]

	return

}

// Determinant returns the determinant of the Matrix4. A pure rotation matrix has a determinant of 1.
func (matrix Matrix4) Determinant() float32 {
	s, c := matrix.minors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Inverted returns an inverted version of the Matrix4. A Matrix4 that can't be inverted (i.e. its determinant is 0)
// gives back an identity Matrix4.
func (matrix Matrix4) Inverted() Matrix4 {

	s, c := matrix.minors()
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]

	if det == 0 {
		return NewMatrix4()
	}

	inv := 1 / det
	m := matrix

	return Matrix4{
		{
			(m[1][1]*c[5] - m[1][2]*c[4] + m[1][3]*c[3]) * inv,
			(-m[0][1]*c[5] + m[0][2]*c[4] - m[0][3]*c[3]) * inv,
			(m[3][1]*s[5] - m[3][2]*s[4] + m[3][3]*s[3]) * inv,
			(-m[2][1]*s[5] + m[2][2]*s[4] - m[2][3]*s[3]) * inv,
		},
		{
			(-m[1][0]*c[5] + m[1][2]*c[2] - m[1][3]*c[1]) * inv,
			(m[0][0]*c[5] - m[0][2]*c[2] + m[0][3]*c[1]) * inv,
			(-m[3][0]*s[5] + m[3][2]*s[2] - m[3][3]*s[1]) * inv,
			(m[2][0]*s[5] - m[2][2]*s[2] + m[2][3]*s[1]) * inv,
		},
		{
			(m[1][0]*c[4] - m[1][1]*c[2] + m[1][3]*c[0]) * inv,
			(-m[0][0]*c[4] + m[0][1]*c[2] - m[0][3]*c[0]) * inv,
			(m[3][0]*s[4] - m[3][1]*s[2] + m[3][3]*s[0]) * inv,
			(-m[2][0]*s[4] + m[2][1]*s[2] - m[2][3]*s[0]) * inv,
		},
		{
			(-m[1][0]*c[3] + m[1][1]*c[1] - m[1][2]*c[0]) * inv,
			(m[0][0]*c[3] - m[0][1]*c[1] + m[0][2]*c[0]) * inv,
			(-m[3][0]*s[3] + m[3][1]*s[1] - m[3][2]*s[0]) * inv,
			(m[2][0]*s[3] - m[2][1]*s[1] + m[2][2]*s[0]) * inv,
		},
	}

}

// MultVec multiplies the vector provided by the Matrix4, giving a vector that has been rotated (or translated) as desired.
func (matrix Matrix4) MultVec(vect Vector3) Vector3 {

	return Vector3{
		X: matrix[0][0]*vect.X + matrix[1][0]*vect.Y + matrix[2][0]*vect.Z + matrix[3][0],
		Y: matrix[0][1]*vect.X + matrix[1][1]*vect.Y + matrix[2][1]*vect.Z + matrix[3][1],
		Z: matrix[0][2]*vect.X + matrix[1][2]*vect.Y + matrix[2][2]*vect.Z + matrix[3][2],
	}

}

// Mult multiplies a Matrix4 by another provided Matrix4 - this effectively combines them. Since vectors are multiplied
// on the left, a.Mult(b) applies a first, then b.
func (matrix Matrix4) Mult(other Matrix4) Matrix4 {

	var newMat Matrix4

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				newMat[i][j] += matrix[i][k] * other[k][j]
			}
		}
	}

	return newMat

}

// Lerp lerps a matrix to another, destination Matrix by the percent given. It does this by converting both
// Matrices to Quaternions, slerping them, then converting the result back to a Matrix4.
func (matrix Matrix4) Lerp(other Matrix4, percent float32) Matrix4 {
	return Slerp(matrix.ToQuaternion(), other.ToQuaternion(), percent).ToMatrix4()
}

// Equals returns true if the matrix equals the same values in the provided Other Matrix4.
func (matrix Matrix4) Equals(other Matrix4) bool {

	eps := float32(0.0001) // epsilon floating point error value
	for i := 0; i < len(matrix); i++ {
		for j := 0; j < len(matrix[i]); j++ {
			if math32.Abs(matrix[i][j]-other[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// IsIdentity returns true if the matrix is an unmodified identity matrix.
func (matrix Matrix4) IsIdentity() bool {
	return matrix.Equals(NewMatrix4())
}

func (matrix Matrix4) String() string {
	var s strings.Builder
	s.WriteString("{")
	for i, y := range matrix {
		for _, x := range y {
			s.WriteString(strconv.FormatFloat(float64(x), 'f', -1, 32) + ", ")
		}
		if i < len(matrix)-1 {
			s.WriteString("\n")
		}
	}
	s.WriteString("}")
	return s.String()
}
