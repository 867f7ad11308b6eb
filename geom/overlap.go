package geom

import "math"

// DefaultEpsilon is the default general-purpose tolerance (ε_gen) applied to
// dimensions, positions, masses, and collision tests. Configurable per
// request via placement/packer options; this is only the zero-value default.
const DefaultEpsilon = 1e-6

// DefaultHeightEpsilon is the default coplanarity tolerance (ε_h) used to
// decide whether two faces rest at "the same" z level.
const DefaultHeightEpsilon = 1e-3

// Overlap1D returns the length of the overlap between closed intervals
// [a1,a2] and [b1,b2], or 0 if they are disjoint or only touch.
//
//	overlap_1d(a1,a2,b1,b2) = max(0, min(a2,b2) - max(a1,b1))
func Overlap1D(a1, a2, b1, b2 float64) float64 {
	lo := math.Max(a1, b1)
	hi := math.Min(a2, b2)
	if hi <= lo {
		return 0
	}
	return hi - lo
}

// OverlapAreaXY returns the area of the XY projections of a and b that
// overlap, i.e. the product of their 1D overlaps on X and Y.
func OverlapAreaXY(a, b AABB) float64 {
	ox := Overlap1D(a.Min.X, a.Max().X, b.Min.X, b.Max().X)
	oy := Overlap1D(a.Min.Y, a.Max().Y, b.Min.Y, b.Max().Y)
	return ox * oy
}

// Intersects reports whether a and b overlap with positive measure on all
// three axes, using eps strictly: boxes that merely share a boundary plane
// do not intersect. This is a separating-axis test — a and b are disjoint
// iff they are separated on at least one axis.
func Intersects(a, b AABB, eps float64) bool {
	aMax, bMax := a.Max(), b.Max()
	if a.Min.X+eps >= bMax.X || b.Min.X+eps >= aMax.X {
		return false
	}
	if a.Min.Y+eps >= bMax.Y || b.Min.Y+eps >= aMax.Y {
		return false
	}
	if a.Min.Z+eps >= bMax.Z || b.Min.Z+eps >= aMax.Z {
		return false
	}
	return true
}

// PointInsideXY reports whether point (x,y) lies within the closed XY
// projection of box b. No epsilon is applied here; callers that need
// tolerance widen the box themselves before calling.
func PointInsideXY(x, y float64, b AABB) bool {
	max := b.Max()
	return x >= b.Min.X && x <= max.X && y >= b.Min.Y && y <= max.Y
}

// PointInsideBox reports whether point p lies within the closed 3D volume
// of box b. No epsilon is applied here; callers supply tolerance when
// needed by growing b first.
func PointInsideBox(p Vec3, b AABB) bool {
	max := b.Max()
	return p.X >= b.Min.X && p.X <= max.X &&
		p.Y >= b.Min.Y && p.Y <= max.Y &&
		p.Z >= b.Min.Z && p.Z <= max.Z
}

// IsPositiveMagnitude reports whether v is a valid positive scalar
// magnitude: finite (not NaN, not ±Inf) and strictly greater than eps.
func IsPositiveMagnitude(v, eps float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > eps
}

// NearlyEqual reports whether a and b differ by no more than eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
