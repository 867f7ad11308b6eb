// Package orient enumerates the distinct axis-aligned orientations of a
// cuboid's dimensions under a rotation policy.
//
// Policy Fixed returns exactly the item's own (w,d,h). Policy AxisAligned
// generates all six permutations of (w,d,h), then removes numeric
// duplicates using ε_gen component-wise: a cube yields 1 orientation, a
// square-based cuboid yields 3, a fully asymmetric cuboid yields 6.
// Remaining orientations are returned in the stable generation order below,
// which doubles as the placement finder's orientation preference order.
package orient
