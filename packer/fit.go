package packer

import (
	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/model"
	"github.com/kvantox/cratepack/orient"
)

// fitsCavity reports whether oriented dims fit within a cavity's bounds,
// ignoring mass and position — a cheap pre-check before a full placement
// search.
func fitsCavity(oriented, cavity geom.Vec3, eps float64) bool {
	return oriented.X <= cavity.X+eps && oriented.Y <= cavity.Y+eps && oriented.Z <= cavity.Z+eps
}

// anyOrientationFits reports whether some permitted orientation of item
// fits within cavity's bounds.
func anyOrientationFits(item model.Item, cavity geom.Vec3, policy orient.Policy, eps float64) bool {
	for _, o := range orient.Enumerate(item.Dims, policy, eps) {
		if fitsCavity(o, cavity, eps) {
			return true
		}
	}
	return false
}

// classify determines why item could not be placed in any container,
// against the full template pool (its order does not affect the result).
func classify(item model.Item, templates []model.ContainerTemplate, policy orient.Policy, eps float64) model.UnplacedReason {
	exceedsMass := true
	for _, t := range templates {
		if t.MaxWeight >= item.Mass-eps {
			exceedsMass = false
			break
		}
	}
	if exceedsMass {
		return model.ReasonExceedsMass
	}

	exceedsDims := true
	for _, t := range templates {
		if anyOrientationFits(item, t.Cavity, policy, eps) {
			exceedsDims = false
			break
		}
	}
	if exceedsDims {
		return model.ReasonExceedsDims
	}

	return model.ReasonNoStablePosition
}
