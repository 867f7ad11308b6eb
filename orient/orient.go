package orient

import "github.com/kvantox/cratepack/geom"

// Policy selects which axis-aligned orientations of an item are permitted.
type Policy int

const (
	// Fixed permits only the item's own (w,d,h); no rotation.
	Fixed Policy = iota

	// AxisAligned permits all six axis-aligned permutations of (w,d,h).
	AxisAligned
)

// PolicyFromAllowRotations maps the wire-level allow_rotations bool onto a
// Policy.
func PolicyFromAllowRotations(allow bool) Policy {
	if allow {
		return AxisAligned
	}
	return Fixed
}

// Enumerate returns the distinct oriented dimensions for dims under policy,
// in stable generation order, de-duplicated on each component using eps.
//
// Generation order for AxisAligned (before de-duplication):
//
//	(w,d,h), (w,h,d), (d,w,h), (d,h,w), (h,w,d), (h,d,w)
//
// This order is also the placement finder's orientation preference order:
// the first orientation (in this order) that yields a stable position
// wins.
func Enumerate(dims geom.Vec3, policy Policy, eps float64) []geom.Vec3 {
	if policy == Fixed {
		return []geom.Vec3{dims}
	}

	w, d, h := dims.X, dims.Y, dims.Z
	candidates := []geom.Vec3{
		{X: w, Y: d, Z: h},
		{X: w, Y: h, Z: d},
		{X: d, Y: w, Z: h},
		{X: d, Y: h, Z: w},
		{X: h, Y: w, Z: d},
		{X: h, Y: d, Z: w},
	}

	out := make([]geom.Vec3, 0, 6)
	for _, cand := range candidates {
		dup := false
		for _, seen := range out {
			if vecNearlyEqual(cand, seen, eps) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, cand)
		}
	}
	return out
}

func vecNearlyEqual(a, b geom.Vec3, eps float64) bool {
	return geom.NearlyEqual(a.X, b.X, eps) &&
		geom.NearlyEqual(a.Y, b.Y, eps) &&
		geom.NearlyEqual(a.Z, b.Z, eps)
}
