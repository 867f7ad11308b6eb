// Package cluster groups a pre-sorted sequence of items into contiguous
// runs of similar base footprint, so the placement finder forms clean
// layers instead of starting a new z-level prematurely.
//
// After the packer driver's primary sort (mass, volume descending, tie on
// ID ascending), items are partitioned in a single pass: two adjacent
// items belong to the same cluster iff their base areas differ by a
// relative factor at most tau (default 0.15). Relative order within a
// cluster is preserved; cluster order follows the primary sort of each
// cluster's leader (its first item).
package cluster
