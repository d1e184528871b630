// Package rotmath is a small library of 3D rotation math: rotation matrices built from an axis and an angle,
// rotations that swing one direction onto another, and quaternions (with Slerp) along with conversions between
// quaternions and matrices. All of the types are plain values; every function returns a new value rather than
// modifying its inputs.
//
// The demo programs under examples/ print these values to the screen each frame using Ebitengine.
package rotmath

import "errors"

// ErrZeroVector is returned when a direction is required but a zero-length vector was given instead.
var ErrZeroVector = errors.New("rotmath: zero-length direction vector")

const (
	// antiParallelEpsilon is how close to -1 the cosine between two directions has to be for them to count as
	// pointing in opposite directions.
	antiParallelEpsilon = 1e-6

	// slerpEpsilon is how close to 1 the dot product between two quaternions has to be before Slerp falls back
	// to a normalized linear interpolation.
	slerpEpsilon = 1e-6
)
