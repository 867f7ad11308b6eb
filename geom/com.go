package geom

// CentroidAccumulator incrementally computes a mass-weighted XY centroid:
//
//	x̄ = Σ mᵢxᵢ / Σ mᵢ,  ȳ = Σ mᵢyᵢ / Σ mᵢ
//
// The zero value is ready to use. Compute returns ok=false when the
// accumulated mass is at or below eps, since the centroid is undefined for
// a massless (or empty) set of points.
type CentroidAccumulator struct {
	sumX, sumY, sumM float64
}

// Add folds in a point of mass m at (x, y). Non-positive masses are still
// accumulated verbatim; validation of individual item masses happens in the
// model package before items ever reach this accumulator.
func (c *CentroidAccumulator) Add(x, y, m float64) {
	c.sumX += x * m
	c.sumY += y * m
	c.sumM += m
}

// Compute returns the accumulated centroid. ok is false when the total mass
// is at or below eps, in which case x and y are zero and must not be used.
func (c *CentroidAccumulator) Compute(eps float64) (x, y float64, ok bool) {
	if c.sumM <= eps {
		return 0, 0, false
	}
	return c.sumX / c.sumM, c.sumY / c.sumM, true
}

// TotalMass returns the mass accumulated so far.
func (c *CentroidAccumulator) TotalMass() float64 {
	return c.sumM
}
