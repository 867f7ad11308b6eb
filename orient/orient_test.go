package orient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/orient"
)

func TestEnumerateFixed(t *testing.T) {
	dims := geom.Vec3{X: 10, Y: 20, Z: 30}
	got := orient.Enumerate(dims, orient.Fixed, geom.DefaultEpsilon)
	assert.Equal(t, []geom.Vec3{dims}, got)
}

func TestEnumerateCubeYieldsOne(t *testing.T) {
	dims := geom.Vec3{X: 10, Y: 10, Z: 10}
	got := orient.Enumerate(dims, orient.AxisAligned, geom.DefaultEpsilon)
	assert.Len(t, got, 1)
}

func TestEnumerateSquareBaseYieldsThree(t *testing.T) {
	dims := geom.Vec3{X: 10, Y: 10, Z: 20}
	got := orient.Enumerate(dims, orient.AxisAligned, geom.DefaultEpsilon)
	assert.Len(t, got, 3)
}

func TestEnumerateAsymmetricYieldsSix(t *testing.T) {
	dims := geom.Vec3{X: 10, Y: 20, Z: 30}
	got := orient.Enumerate(dims, orient.AxisAligned, geom.DefaultEpsilon)
	assert.Len(t, got, 6)
	// stable generation order, first entry is the unrotated dims
	assert.Equal(t, dims, got[0])
}

func TestPolicyFromAllowRotations(t *testing.T) {
	assert.Equal(t, orient.AxisAligned, orient.PolicyFromAllowRotations(true))
	assert.Equal(t, orient.Fixed, orient.PolicyFromAllowRotations(false))
}
