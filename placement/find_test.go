package placement_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/model"
	"github.com/kvantox/cratepack/placement"
)

func newContainer(t *testing.T, w, d, h, maxWeight float64) *model.Container {
	t.Helper()
	tmpl, err := model.NewContainerTemplate(1, w, d, h, maxWeight, nil, geom.DefaultEpsilon)
	require.NoError(t, err)
	return model.NewContainer(1, tmpl)
}

// snap to corner.
func TestFindSnapsToCorner(t *testing.T) {
	c := newContainer(t, 100, 100, 70, 500)
	cfg := placement.DefaultConfig()

	origin, ok := placement.Find(c, geom.Vec3{X: 30, Y: 30, Z: 10}, 50, cfg)
	require.True(t, ok)
	assert.Equal(t, geom.Vec3{}, origin)
}

// heavy below light stacks at z = supporter height.
func TestFindStacksHeavyBelowLight(t *testing.T) {
	c := newContainer(t, 100, 100, 100, 1000)
	cfg := placement.DefaultConfig()

	origin1, ok := placement.Find(c, geom.Vec3{X: 40, Y: 40, Z: 40}, 100, cfg)
	require.True(t, ok)
	it1, _ := model.NewItem(1, 40, 40, 40, 100, geom.DefaultEpsilon)
	c.AddPlacement(model.PlacedItem{Item: it1, Origin: origin1, OrientedDims: geom.Vec3{X: 40, Y: 40, Z: 40}})

	origin2, ok := placement.Find(c, geom.Vec3{X: 40, Y: 40, Z: 40}, 10, cfg)
	require.True(t, ok)
	assert.InDelta(t, 40, origin2.Z, 1e-9)
}

// a heavier item must never be accepted on top of a lighter supporter.
func TestFindRejectsHeavierOnLighter(t *testing.T) {
	c := newContainer(t, 100, 100, 100, 1000)
	cfg := placement.DefaultConfig()

	origin1, ok := placement.Find(c, geom.Vec3{X: 40, Y: 40, Z: 40}, 10, cfg)
	require.True(t, ok)
	it1, _ := model.NewItem(1, 40, 40, 40, 10, geom.DefaultEpsilon)
	c.AddPlacement(model.PlacedItem{Item: it1, Origin: origin1, OrientedDims: geom.Vec3{X: 40, Y: 40, Z: 40}})

	// A heavier item that only fits stacked on the light supporter must be
	// rejected rather than placed on top of it.
	small := newContainer(t, 40, 40, 80, 1000)
	it1b, _ := model.NewItem(2, 40, 40, 40, 10, geom.DefaultEpsilon)
	small.AddPlacement(model.PlacedItem{Item: it1b, Origin: geom.Vec3{}, OrientedDims: geom.Vec3{X: 40, Y: 40, Z: 40}})
	_, ok = placement.Find(small, geom.Vec3{X: 40, Y: 40, Z: 40}, 100, cfg)
	assert.False(t, ok)
}

// too heavy for the only container.
func TestFindRejectsOverMassCap(t *testing.T) {
	c := newContainer(t, 100, 100, 100, 10)
	cfg := placement.DefaultConfig()
	_, ok := placement.Find(c, geom.Vec3{X: 10, Y: 10, Z: 10}, 50, cfg)
	assert.False(t, ok)
}

// overhang — the cavity is sized so that the floor is fully blocked by the
// supporter everywhere a same-size item could go (any floor x-shift still
// overlaps the supporter's footprint), forcing the search to the
// supporter's top, where the accepted position must have its centre over
// the supporter's footprint.
func TestFindOverhangRejected(t *testing.T) {
	c := newContainer(t, 60, 40, 100, 1000)
	cfg := placement.DefaultConfig()

	it1, _ := model.NewItem(1, 40, 40, 40, 100, geom.DefaultEpsilon)
	c.AddPlacement(model.PlacedItem{Item: it1, Origin: geom.Vec3{}, OrientedDims: geom.Vec3{X: 40, Y: 40, Z: 40}})

	origin, ok := placement.Find(c, geom.Vec3{X: 40, Y: 40, Z: 40}, 10, cfg)
	require.True(t, ok)
	// the first candidate on the supporter's top is directly above it
	assert.InDelta(t, 0, origin.X, 1e-9)
	assert.InDelta(t, 0, origin.Y, 1e-9)
	assert.InDelta(t, 40, origin.Z, 1e-9)
}

func TestFindNoRoomReturnsFalse(t *testing.T) {
	c := newContainer(t, 10, 10, 10, 1000)
	cfg := placement.DefaultConfig()
	_, ok := placement.Find(c, geom.Vec3{X: 20, Y: 20, Z: 20}, 1, cfg)
	assert.False(t, ok)
}
