package diagnostics

import (
	"math"

	"github.com/kvantox/cratepack/geom"
	"github.com/kvantox/cratepack/model"
	"github.com/kvantox/cratepack/placement"
)

// ComputeContainer recomputes the full diagnostic picture of c using cfg's
// height epsilon and balance limit ratio. It is cheap enough to call after
// every successful placement: O(n^2) in the container's current placement
// count, dominated by the per-placement supporter scan.
func ComputeContainer(c *model.Container, cfg placement.Config) ContainerDiagnostics {
	samples := make([]SupportSample, 0, len(c.Placements))

	var acc geom.CentroidAccumulator
	for _, p := range c.Placements {
		cx, cy := p.AABB().CentreXY()
		acc.Add(cx, cy, p.Mass)
	}

	var sumSupport float64
	minSupport := math.Inf(1)
	for i, p := range c.Placements {
		pct, restsOnFloor := supportPercent(c, i, cfg.HeightEpsilon)
		samples = append(samples, SupportSample{
			ObjectID:       p.ID,
			SupportPercent: pct,
			RestsOnFloor:   restsOnFloor,
		})
		sumSupport += pct
		if pct < minSupport {
			minSupport = pct
		}
	}

	avgSupport, worstSupport := 100.0, 100.0
	if len(samples) > 0 {
		avgSupport = sumSupport / float64(len(samples))
		worstSupport = minSupport
	}

	baseCX, baseCY := c.Cavity.X/2, c.Cavity.Y/2
	comX, comY, ok := acc.Compute(cfg.Epsilon)
	offset := 0.0
	if ok {
		offset = math.Hypot(comX-baseCX, comY-baseCY)
	}

	limit := cfg.BalanceLimitRatio * math.Hypot(c.Cavity.X, c.Cavity.Y)
	imbalance := 0.0
	if limit > 0 {
		imbalance = offset / limit
	}

	return ContainerDiagnostics{
		CentreOfMassOffset:    offset,
		BalanceLimit:          limit,
		ImbalanceRatio:        imbalance,
		AverageSupportPercent: avgSupport,
		MinimumSupportPercent: worstSupport,
		Samples:               samples,
	}
}

// supportPercent computes the support percentage of the placement at index
// i within c.Placements: 100% when it rests on the floor (origin Z within
// heightEps of 0), otherwise the summed XY overlap with coplanar
// supporters divided by the item's own base area.
func supportPercent(c *model.Container, i int, heightEps float64) (percent float64, restsOnFloor bool) {
	p := c.Placements[i]
	box := p.AABB()
	z := box.Min.Z
	if z < heightEps {
		return 100, true
	}

	var covered float64
	for j, other := range c.Placements {
		if j == i {
			continue
		}
		otherBox := other.AABB()
		if math.Abs(otherBox.Top()-z) >= heightEps {
			continue
		}
		covered += geom.OverlapAreaXY(box, otherBox)
	}

	base := box.BaseArea()
	if base <= 0 {
		return 0, false
	}
	return covered / base * 100, false
}

// Aggregate combines the diagnostics of every container into a single
// summary: the worst imbalance ratio, the worst (minimum) support
// percentage, and the unweighted mean of every placement's support
// percentage across all containers.
func Aggregate(all []ContainerDiagnostics) Summary {
	if len(all) == 0 {
		return Summary{}
	}

	var maxImbalance float64
	worstSupport := math.Inf(1)
	var sumSupport float64
	var countSamples int

	for _, d := range all {
		if d.ImbalanceRatio > maxImbalance {
			maxImbalance = d.ImbalanceRatio
		}
		for _, s := range d.Samples {
			if s.SupportPercent < worstSupport {
				worstSupport = s.SupportPercent
			}
			sumSupport += s.SupportPercent
			countSamples++
		}
	}

	if countSamples == 0 {
		worstSupport = 100
	}

	avg := 100.0
	if countSamples > 0 {
		avg = sumSupport / float64(countSamples)
	}

	return Summary{
		MaxImbalanceRatio:     maxImbalance,
		WorstSupportPercent:   worstSupport,
		AverageSupportPercent: avg,
	}
}
