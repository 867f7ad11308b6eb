// Package placement searches for a stable position of an oriented item
// inside a single container.
//
// Candidate generation walks z-levels (the floor plus the top of every
// existing placement, deduplicated by height epsilon) ascending, and within
// each z-level a grid of (x,y) origins ascending in y then x, always
// probing the far edge exactly. The first candidate that passes every
// stability gate — bounds, no collision, mass cap, support ratio, weight
// hierarchy, centre-of-mass overhang, and post-insertion container balance
// — is accepted; there is no scoring beyond this early-accept iteration
// order.
//
// Find is the package's hot inner loop; candidate generation is written to
// avoid per-iteration heap allocation beyond the small slice of candidate
// coordinates.
package placement
