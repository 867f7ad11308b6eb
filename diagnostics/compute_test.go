package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantox/cratepack/diagnostics"
	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/model"
	"github.com/kvantox/cratepack/placement"
)

func TestComputeContainerSingleFloorItem(t *testing.T) {
	tmpl, err := model.NewContainerTemplate(1, 100, 100, 100, 500, nil, geom.DefaultEpsilon)
	require.NoError(t, err)
	c := model.NewContainer(1, tmpl)

	it, err := model.NewItem(1, 20, 20, 20, 50, geom.DefaultEpsilon)
	require.NoError(t, err)
	c.AddPlacement(model.PlacedItem{Item: it, Origin: geom.Vec3{X: 0, Y: 0, Z: 0}, OrientedDims: it.Dims})

	diag := diagnostics.ComputeContainer(c, placement.DefaultConfig())
	require.Len(t, diag.Samples, 1)
	assert.InDelta(t, 100, diag.Samples[0].SupportPercent, 1e-9)
	assert.True(t, diag.Samples[0].RestsOnFloor)
}

func TestComputeContainerStackedFullSupport(t *testing.T) {
	tmpl, err := model.NewContainerTemplate(1, 100, 100, 100, 500, nil, geom.DefaultEpsilon)
	require.NoError(t, err)
	c := model.NewContainer(1, tmpl)

	base, err := model.NewItem(1, 40, 40, 10, 100, geom.DefaultEpsilon)
	require.NoError(t, err)
	c.AddPlacement(model.PlacedItem{Item: base, Origin: geom.Vec3{}, OrientedDims: base.Dims})

	top, err := model.NewItem(2, 40, 40, 10, 10, geom.DefaultEpsilon)
	require.NoError(t, err)
	// fully supported directly above the base item
	c.AddPlacement(model.PlacedItem{Item: top, Origin: geom.Vec3{X: 0, Y: 0, Z: 10}, OrientedDims: top.Dims})

	diag := diagnostics.ComputeContainer(c, placement.DefaultConfig())
	require.Len(t, diag.Samples, 2)
	assert.InDelta(t, 100, diag.Samples[1].SupportPercent, 1e-6)
	assert.False(t, diag.Samples[1].RestsOnFloor)
}

func TestAggregateEmpty(t *testing.T) {
	summary := diagnostics.Aggregate(nil)
	assert.Equal(t, diagnostics.Summary{}, summary)
}

func TestAggregateCombinesWorstAcrossContainers(t *testing.T) {
	d1 := diagnostics.ContainerDiagnostics{
		ImbalanceRatio: 0.2,
		Samples:        []diagnostics.SupportSample{{SupportPercent: 90}, {SupportPercent: 100}},
	}
	d2 := diagnostics.ContainerDiagnostics{
		ImbalanceRatio: 0.5,
		Samples:        []diagnostics.SupportSample{{SupportPercent: 60}},
	}
	summary := diagnostics.Aggregate([]diagnostics.ContainerDiagnostics{d1, d2})
	assert.InDelta(t, 0.5, summary.MaxImbalanceRatio, 1e-9)
	assert.InDelta(t, 60, summary.WorstSupportPercent, 1e-9)
	assert.InDelta(t, (90.0+100.0+60.0)/3.0, summary.AverageSupportPercent, 1e-9)
}
