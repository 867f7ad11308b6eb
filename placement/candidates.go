package placement

import (
	"sort"

	"github.com/kvantox/cratepack/model"
)

// zLevels returns L_z = {0} ∪ {top(p) : p ∈ placements}, deduplicated with
// heightEps, keeping only levels where level+itemHeight <= cavityHeight+eps,
// sorted ascending.
func zLevels(c *model.Container, itemHeight, cavityHeight, eps, heightEps float64) []float64 {
	levels := make([]float64, 0, len(c.Placements)+1)
	levels = append(levels, 0)
	for _, p := range c.Placements {
		levels = append(levels, p.AABB().Top())
	}
	sort.Float64s(levels)

	out := levels[:0:0]
	for _, lvl := range levels {
		if len(out) > 0 && lvl-out[len(out)-1] < heightEps {
			continue
		}
		if lvl+itemHeight <= cavityHeight+eps {
			out = append(out, lvl)
		}
	}
	return out
}

// axisCandidates returns the 1D candidate origins along one axis: {0, g,
// 2g, ...} strictly less than free, plus free itself exactly (so the far
// edge is always probed), where free = total - extent.
//
// If free <= 0, the item exactly fills (or cannot fit) the axis and the
// sole candidate is 0. If step <= 0 (a misconfigured grid step), the
// candidate set degenerates to {0, free} to avoid looping forever.
func axisCandidates(total, extent, step float64) []float64 {
	free := total - extent
	if free <= 0 {
		return []float64{0}
	}
	if step <= 0 {
		return []float64{0, free}
	}

	out := make([]float64, 0, int(free/step)+2)
	for x := 0.0; x < free; x += step {
		out = append(out, x)
	}
	out = append(out, free)
	return out
}
