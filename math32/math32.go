// Package math32 wraps the parts of the standard math package that rotmath needs so that they take and return float32s,
// which is what the Vector3, Quaternion, and Matrix4 types are built on.
package math32

import "math"

const Pi = float32(math.Pi)

// ToRadians converts degrees to radians (which is what the rotation functions in rotmath expect).
func ToRadians(degrees float32) float32 {
	return Pi * degrees / 180
}

// ToDegrees converts radians to degrees for human readability.
func ToDegrees(radians float32) float32 {
	return radians / Pi * 180
}

// Clamp clamps a value to the minimum and maximum values provided.
func Clamp[number float32 | float64 | int](value, min, max number) number {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return float32(math.Abs(float64(x)))
}

// Sqrt returns the square root of x; Sqrt(x < 0) is NaN.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func Sin(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func Cos(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// Sincos returns Sin(x), Cos(x).
func Sincos(x float32) (float32, float32) {
	s, c := math.Sincos(float64(x))
	return float32(s), float32(c)
}

// Length returns the Euclidean length of the values given, summed in float64 so that components too large or too
// small to square in float32 don't overflow to +Inf or underflow to 0.
func Length(values ...float32) float64 {
	sum := 0.0
	for _, v := range values {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

// Acos returns the arccosine of x in radians. Unlike math.Acos, x is clamped to [-1, 1] first, so float error
// on a dot product of two unit vectors doesn't turn into a NaN.
func Acos(x float32) float32 {
	return float32(math.Acos(float64(Clamp(x, -1, 1))))
}

// Atan2 returns the arc tangent of y/x, using the signs of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

// IsNaN returns if the provided float32 is a NaN.
func IsNaN(x float32) bool {
	return math.IsNaN(float64(x))
}
