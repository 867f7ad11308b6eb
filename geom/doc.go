// Package geom provides the numeric primitives the packing engine builds
// on: 3-vectors, axis-aligned bounding boxes, 1D/2D overlap measures,
// point-in-box tests, a centre-of-mass accumulator, and the epsilon-aware
// comparisons every higher package relies on.
//
// Two epsilons govern every comparison in cratepack: Epsilon (general
// purpose — dimensions, positions, masses, collisions) and HeightEpsilon
// (coplanarity of top/bottom faces for "rests on" tests). Both are plain
// float64 values threaded through as parameters rather than package-level
// globals, so a caller can run two packing jobs with different tolerances
// concurrently without interference.
//
// Complexity: every function in this package is O(1).
package geom
