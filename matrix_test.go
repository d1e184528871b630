package rotmath

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/solarlune/rotmath/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func randomUnitVector(r *rand.Rand) Vector3 {
	for {
		v := Vector3{X: r.Float32()*2 - 1, Y: r.Float32()*2 - 1, Z: r.Float32()*2 - 1}
		if l := v.Magnitude(); l > 0.1 && l <= 1 {
			return v.Unit()
		}
	}
}

func assertVectorInDelta(t *testing.T, expected, actual Vector3) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, "X of %s vs %s", expected, actual)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, "Y of %s vs %s", expected, actual)
	assert.InDelta(t, expected.Z, actual.Z, tolerance, "Z of %s vs %s", expected, actual)
}

func BenchmarkMatrixInversion(b *testing.B) {

	b.ReportAllocs()

	mat := MakeRotateAxisAngle(NewVector3(0, 1, 0.2).Unit(), 0.24)
	mat[3][0], mat[3][1], mat[3][2] = 1, 4, -12

	for i := 0; i < b.N; i++ {
		mat.Inverted()
	}

}

func TestMatrixInversion(t *testing.T) {

	translated := NewMatrix4()
	translated[3][0], translated[3][1], translated[3][2] = -10, 0.1, 32.1976

	matrices := []Matrix4{
		MakeRotateAxisAngle(WorldUp, 0.1),
		translated,
		MakeRotateAxisAngle(NewVector3(1, 0, 0.1).Unit(), 0.334).Mult(translated),
	}

	for i, mat := range matrices {
		if !mat.Mult(mat.Inverted()).IsIdentity() {
			t.Fatal("failed on matrix #", i, ": matrix * matrix.Inverted() is not identity")
		}
	}

}

func TestMakeRotateAxisAngleMatchesKnownValues(t *testing.T) {

	mat := MakeRotateAxisAngle(NewVector3(1, 1, 1).Unit(), 0.44)

	expected := Matrix4{
		{0.9365, 0.2777, -0.2142, 0},
		{-0.2142, 0.9365, 0.2777, 0},
		{0.2777, -0.2142, 0.9365, 0},
		{0, 0, 0, 1},
	}

	for i := range expected {
		for j := range expected[i] {
			assert.InDelta(t, expected[i][j], mat[i][j], 1e-3, "element [%d][%d]", i, j)
		}
	}

}

func TestMakeRotateAxisAngleIsCounterClockwise(t *testing.T) {
	mat := MakeRotateAxisAngle(WorldBackward, math32.Pi/2)
	assertVectorInDelta(t, WorldUp, mat.MultVec(WorldRight))
}

func TestMakeRotateAxisAngleIsOrthogonal(t *testing.T) {

	r := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {

		axis := randomUnitVector(r)
		angle := (r.Float32()*2 - 1) * 2 * math32.Pi

		mat := MakeRotateAxisAngle(axis, angle)

		require.True(t, mat.Transposed().Mult(mat).IsIdentity(), "MᵀM != I for axis %s, angle %f", axis, angle)
		require.InDelta(t, 1, mat.Determinant(), tolerance)

	}

}

func TestDirectionToDirection(t *testing.T) {

	r := rand.New(rand.NewSource(2))

	for i := 0; i < 100; i++ {

		from := randomUnitVector(r)
		to := randomUnitVector(r)

		if from.Dot(to) < -0.999 {
			continue
		}

		mat, err := DirectionToDirection(from, to)
		require.NoError(t, err)

		assertVectorInDelta(t, to, mat.MultVec(from))
		assert.InDelta(t, 1, mat.Determinant(), tolerance)

	}

}

func TestDirectionToDirectionUnnormalized(t *testing.T) {
	mat, err := DirectionToDirection(NewVector3(3, 0, 0), NewVector3(0, 0, 0.5))
	require.NoError(t, err)
	assertVectorInDelta(t, WorldBackward, mat.MultVec(WorldRight))
}

func TestDirectionToDirectionParallel(t *testing.T) {
	mat, err := DirectionToDirection(NewVector3(0.2, 0.4, 0.1), NewVector3(0.4, 0.8, 0.2))
	require.NoError(t, err)
	assert.True(t, mat.IsIdentity())
}

func TestDirectionToDirectionAntiParallel(t *testing.T) {

	directions := []Vector3{
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
		NewVector3(0, 0, 1),
		NewVector3(0, 0, -1),
		NewVector3(1, 2, 3).Unit(),
		NewVector3(-0.6, 0.8, 0),
	}

	for _, from := range directions {

		mat, err := DirectionToDirection(from, from.Invert())
		require.NoError(t, err)

		assertVectorInDelta(t, from.Invert(), mat.MultVec(from))
		assert.True(t, mat.Transposed().Mult(mat).IsIdentity(), "result for %s isn't a rotation", from)
		assert.InDelta(t, 1, mat.Determinant(), tolerance)

	}

}

func TestDirectionToDirectionLargeMagnitude(t *testing.T) {

	mat, err := DirectionToDirection(NewVector3(1e20, 0, 0), NewVector3(0, 1, 0))
	require.NoError(t, err)
	assert.False(t, mat.IsIdentity())
	assertVectorInDelta(t, WorldUp, mat.MultVec(WorldRight))

	mat, err = DirectionToDirection(NewVector3(0, 0, 2e30), NewVector3(0, 0, -5e-3))
	require.NoError(t, err)
	assertVectorInDelta(t, WorldBackward.Invert(), mat.MultVec(WorldBackward))

}

func TestDirectionToDirectionZeroVector(t *testing.T) {

	_, err := DirectionToDirection(Vector3{}, WorldUp)
	assert.True(t, errors.Is(err, ErrZeroVector))

	_, err = DirectionToDirection(WorldUp, Vector3{})
	assert.ErrorIs(t, err, ErrZeroVector)

	assert.Panics(t, func() { MustDirectionToDirection(Vector3{}, Vector3{}) })
	assert.NotPanics(t, func() { MustDirectionToDirection(WorldUp, WorldRight) })

}

func TestMatrixToQuaternionRoundTrip(t *testing.T) {

	r := rand.New(rand.NewSource(3))

	for i := 0; i < 100; i++ {

		axis := randomUnitVector(r)
		angle := r.Float32() * 2 * math32.Pi

		mat := MakeRotateAxisAngle(axis, angle)
		quat := mat.ToQuaternion()

		require.InDelta(t, 1, quat.Norm(), tolerance)
		require.True(t, quat.SameRotation(NewQuaternionFromAxisAngle(axis, angle)), "%s from angle %f", quat, angle)
		require.True(t, quat.ToMatrix4().Equals(mat))

	}

}

func TestMatrixToQuaternionHalfTurns(t *testing.T) {

	// The trace of a half-turn is -1, so these all go through the diagonal branches.
	for _, axis := range []Vector3{WorldRight, WorldUp, WorldBackward, NewVector3(1, -1, 0).Unit()} {
		mat := MakeRotateAxisAngle(axis, math32.Pi)
		quat := mat.ToQuaternion()
		assert.True(t, quat.SameRotation(NewQuaternion(axis.X, axis.Y, axis.Z, 0)), "half turn around %s gave %s", axis, quat)
	}

}

func TestMatrixLerp(t *testing.T) {
	start := NewMatrix4()
	end := MakeRotateAxisAngle(WorldUp, 1)
	assert.True(t, start.Lerp(end, 0.5).Equals(MakeRotateAxisAngle(WorldUp, 0.5)))
}

func TestMatrixString(t *testing.T) {
	assert.Equal(t, "{1, 0, 0, 0, \n0, 1, 0, 0, \n0, 0, 1, 0, \n0, 0, 0, 1, }", NewMatrix4().String())
}
