package placement

import (
	"math"

	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/model"
)

// boundsCheck is gate 1: the oriented AABB lies within
// [0,W+eps]x[0,D+eps]x[0,H+eps] and has non-negative origin (with eps).
func boundsCheck(cavity geom.Vec3, candidate geom.AABB, eps float64) bool {
	if candidate.Min.X < -eps || candidate.Min.Y < -eps || candidate.Min.Z < -eps {
		return false
	}
	max := candidate.Max()
	return max.X <= cavity.X+eps && max.Y <= cavity.Y+eps && max.Z <= cavity.Z+eps
}

// collisionCheck is gate 2: the candidate must not intersect any existing
// placement in the container.
func collisionCheck(c *model.Container, candidate geom.AABB, eps float64) bool {
	for _, p := range c.Placements {
		if geom.Intersects(candidate, p.AABB(), eps) {
			return false
		}
	}
	return true
}

// massCapCheck is gate 3: total mass after insertion must not exceed the
// container's cap, within eps.
func massCapCheck(c *model.Container, itemMass, eps float64) bool {
	return c.TotalMass()+itemMass <= c.MaxWeight+eps
}

// coplanarSupporters returns every placement whose top face lies within
// heightEps of z — the "coplanar supporter" set a candidate at that height
// is checked against for support, weight hierarchy, and overhang.
func coplanarSupporters(c *model.Container, z, heightEps float64) []model.PlacedItem {
	var out []model.PlacedItem
	for _, p := range c.Placements {
		if math.Abs(p.AABB().Top()-z) < heightEps {
			out = append(out, p)
		}
	}
	return out
}

// supportCheck is gate 4: items on the floor pass unconditionally;
// otherwise the summed XY overlap area with coplanar supporters must reach
// supportRatio * base area, within eps.
func supportCheck(candidate geom.AABB, z, heightEps float64, supporters []model.PlacedItem, supportRatio, eps float64) bool {
	if z < heightEps {
		return true
	}
	required := supportRatio * candidate.BaseArea()
	var actual float64
	for _, p := range supporters {
		actual += geom.OverlapAreaXY(candidate, p.AABB())
	}
	return actual >= required-eps
}

// weightHierarchyCheck is gate 5: no heavier item may rest on a lighter
// supporter. Only supporters that actually overlap the candidate's
// footprint (beyond eps) are considered.
func weightHierarchyCheck(candidate geom.AABB, itemMass float64, supporters []model.PlacedItem, eps float64) bool {
	for _, p := range supporters {
		if geom.OverlapAreaXY(candidate, p.AABB()) > eps {
			if itemMass > p.Mass+eps {
				return false
			}
		}
	}
	return true
}

// overhangCheck is gate 6: the candidate's XY centre must either rest on
// the floor, or fall inside (closed) the XY footprint of at least one
// coplanar supporter.
func overhangCheck(candidate geom.AABB, z, heightEps float64, supporters []model.PlacedItem) bool {
	if z < heightEps {
		return true
	}
	cx, cy := candidate.CentreXY()
	for _, p := range supporters {
		if geom.PointInsideXY(cx, cy, p.AABB()) {
			return true
		}
	}
	return false
}

// balanceCheck is gate 7: the post-insertion centre of mass (existing
// placements plus the candidate) must lie within balanceLimitRatio of the
// cavity's base diagonal from the base centre.
func balanceCheck(c *model.Container, candidate geom.AABB, itemMass float64, cfg Config) bool {
	var acc geom.CentroidAccumulator
	for _, p := range c.Placements {
		px, py := p.AABB().CentreXY()
		acc.Add(px, py, p.Mass)
	}
	cx, cy := candidate.CentreXY()
	acc.Add(cx, cy, itemMass)

	comX, comY, ok := acc.Compute(cfg.Epsilon)
	if !ok {
		// Zero accumulated mass cannot happen once the candidate (itemMass
		// > 0 by construction) has been added, but guard defensively.
		return true
	}

	baseCX, baseCY := c.Cavity.X/2, c.Cavity.Y/2
	dx, dy := comX-baseCX, comY-baseCY
	offset := math.Hypot(dx, dy)

	diag := math.Hypot(c.Cavity.X, c.Cavity.Y)
	limit := cfg.BalanceLimitRatio*diag + cfg.Epsilon
	return offset <= limit
}
