package rotmath

import (
	"testing"

	"github.com/solarlune/rotmath/math32"
	"github.com/stretchr/testify/assert"
)

func TestAxisAngle(t *testing.T) {

	aa := NewAxisAngle(NewVector3(0, 0, 3), math32.Pi/2)

	assertVectorInDelta(t, WorldBackward, aa.Axis)
	assertVectorInDelta(t, WorldUp, aa.RotateVector(WorldRight))
	assertVectorInDelta(t, aa.RotateVector(NewVector3(1, 2, 3)), aa.ToQuaternion().RotateVector(NewVector3(1, 2, 3)))

	assert.True(t, aa.ToQuaternion().ToMatrix4().Equals(aa.ToMatrix4()))

	back := aa.ToQuaternion().ToAxisAngle()
	assertVectorInDelta(t, aa.Axis, back.Axis)
	assert.InDelta(t, aa.Angle, back.Angle, tolerance)

}
