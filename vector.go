package rotmath

import (
	"fmt"

	"github.com/solarlune/rotmath/math32"
)

// WorldRight represents a unit vector in the global direction of +X on the right-handed coordinate system rotmath uses.
var WorldRight = Vector3{X: 1}

// WorldUp represents a unit vector in the global direction of +Y (upwards).
var WorldUp = Vector3{Y: 1}

// WorldBackward represents a unit vector in the global direction of +Z (backwards, towards the viewer).
var WorldBackward = Vector3{Z: 1}

// Vector3 represents a 3D Vector, used here for rotation axes, directions, and points to be rotated.
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector
	Y float32 // The Y (2nd) component of the Vector
	Z float32 // The Z (3rd) component of the Vector
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale scales a Vector3 by the given scalar.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Invert returns a copy of the Vector3 pointing in the opposite direction.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided other Vector3.
// The result is perpendicular to both; its length is |vec| * |other| * sin(angle between them).
func (vec Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: vec.Y*other.Z - vec.Z*other.Y,
		Y: vec.Z*other.X - vec.X*other.Z,
		Z: vec.X*other.Y - vec.Y*other.X,
	}
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return float32(math32.Length(vec.X, vec.Y, vec.Z))
}

// MagnitudeSquared returns the squared length of the Vector3.
func (vec Vector3) MagnitudeSquared() float32 {
	l := math32.Length(vec.X, vec.Y, vec.Z)
	return float32(l * l)
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A zero-length Vector3 is returned unmodified.
func (vec Vector3) Unit() Vector3 {
	l := math32.Length(vec.X, vec.Y, vec.Z)
	if l < 1e-8 {
		return vec
	}
	vec.X = float32(float64(vec.X) / l)
	vec.Y = float32(float64(vec.Y) / l)
	vec.Z = float32(float64(vec.Z) / l)
	return vec
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector3) Equals(other Vector3) bool {

	eps := float32(1e-4)

	if math32.Abs(vec.X-other.X) > eps || math32.Abs(vec.Y-other.Y) > eps || math32.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector3 are extremely close to 0.
func (vec Vector3) IsZero() bool {
	eps := float32(1e-8)
	return math32.Abs(vec.X) <= eps && math32.Abs(vec.Y) <= eps && math32.Abs(vec.Z) <= eps
}

func (vec Vector3) String() string {
	return fmt.Sprintf("{%.3f, %.3f, %.3f}", vec.X, vec.Y, vec.Z)
}
