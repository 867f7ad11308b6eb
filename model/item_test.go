package model_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/model"
)

func TestNewItemValid(t *testing.T) {
	it, err := model.NewItem(1, 30, 30, 10, 50, geom.DefaultEpsilon)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), it.ID)
	assert.InDelta(t, 9000.0, it.Volume(), 1e-9)
}

func TestNewItemInvalidDimension(t *testing.T) {
	cases := []struct {
		name          string
		w, d, h, mass float64
	}{
		{"zero width", 0, 10, 10, 5},
		{"negative depth", 10, -1, 10, 5},
		{"infinite height", 10, 10, math.Inf(1), 5},
		{"NaN width", math.NaN(), 10, 10, 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := model.NewItem(1, c.w, c.d, c.h, c.mass, geom.DefaultEpsilon)
			require.Error(t, err)
			assert.True(t, errors.Is(err, model.ErrInvalidDimension))
		})
	}
}

func TestNewItemInvalidMass(t *testing.T) {
	_, err := model.NewItem(1, 10, 10, 10, 0, geom.DefaultEpsilon)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidMass))
}
