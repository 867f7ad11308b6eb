package placement

import (
	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/model"
)

// Find searches container c for a stable origin for an item of the given
// oriented dimensions and mass, using cfg's thresholds. It returns the
// first candidate (in z ascending, then y ascending, then x ascending
// order) that passes every stability gate, or ok=false if none does.
//
// Find does not mutate c; the caller is responsible for appending the
// resulting PlacedItem once it decides to accept the placement.
func Find(c *model.Container, oriented geom.Vec3, itemMass float64, cfg Config) (origin geom.Vec3, ok bool) {
	if !massCapCheck(c, itemMass, cfg.Epsilon) {
		return geom.Vec3{}, false
	}

	levels := zLevels(c, oriented.Z, c.Cavity.Z, cfg.Epsilon, cfg.HeightEpsilon)
	xs := axisCandidates(c.Cavity.X, oriented.X, cfg.GridStep)
	ys := axisCandidates(c.Cavity.Y, oriented.Y, cfg.GridStep)

	for _, z := range levels {
		supporters := coplanarSupporters(c, z, cfg.HeightEpsilon)
		for _, y := range ys {
			for _, x := range xs {
				candidate := geom.NewAABB(geom.Vec3{X: x, Y: y, Z: z}, oriented)

				if !boundsCheck(c.Cavity, candidate, cfg.Epsilon) {
					continue
				}
				if !collisionCheck(c, candidate, cfg.Epsilon) {
					continue
				}
				if !supportCheck(candidate, z, cfg.HeightEpsilon, supporters, cfg.SupportRatio, cfg.Epsilon) {
					continue
				}
				if !weightHierarchyCheck(candidate, itemMass, supporters, cfg.Epsilon) {
					continue
				}
				if !overhangCheck(candidate, z, cfg.HeightEpsilon, supporters) {
					continue
				}
				if !balanceCheck(c, candidate, itemMass, cfg) {
					continue
				}
				return candidate.Min, true
			}
		}
	}
	return geom.Vec3{}, false
}
