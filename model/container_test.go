package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/model"
)

func TestContainerTotalMassAndUtilisation(t *testing.T) {
	tmpl, err := model.NewContainerTemplate(1, 100, 100, 100, 500, nil, geom.DefaultEpsilon)
	require.NoError(t, err)

	c := model.NewContainer(1, tmpl)
	assert.InDelta(t, 0, c.TotalMass(), 1e-9)
	assert.InDelta(t, 500, c.RemainingMass(), 1e-9)

	it, err := model.NewItem(1, 10, 10, 10, 50, geom.DefaultEpsilon)
	require.NoError(t, err)
	c.AddPlacement(model.PlacedItem{Item: it, Origin: geom.Vec3{}, OrientedDims: it.Dims})

	assert.InDelta(t, 50, c.TotalMass(), 1e-9)
	assert.InDelta(t, 450, c.RemainingMass(), 1e-9)
	assert.InDelta(t, 1000.0/1e6, c.VolumeUtilisation(), 1e-9)
}

func TestPackRequestValidate(t *testing.T) {
	req := model.PackRequest{}
	assert.ErrorIs(t, req.Validate(), model.ErrMissingTemplates)

	tmpl, err := model.NewContainerTemplate(1, 10, 10, 10, 10, nil, geom.DefaultEpsilon)
	require.NoError(t, err)
	req.Templates = []model.ContainerTemplate{tmpl}
	assert.NoError(t, req.Validate())
}

func TestUnplacedReasonString(t *testing.T) {
	assert.Equal(t, "too_heavy_for_container", model.ReasonExceedsMass.String())
	assert.Equal(t, "dimensions_exceed_container", model.ReasonExceedsDims.String())
	assert.Equal(t, "no_stable_position", model.ReasonNoStablePosition.String())
}
