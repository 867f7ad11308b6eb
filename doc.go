// Package cratepack is a constrained three-dimensional bin-packing engine:
// given a multiset of axis-aligned cuboid items and a pool of reusable
// container templates, it computes a placement of every item into one or
// more instantiated containers subject to collision, weight-hierarchy,
// support, overhang, and balance constraints, and reports a diagnosed
// summary plus a categorized list of items that could not be placed.
//
// What is cratepack?
//
//	A small, dependency-light packing core wrapped in a thin HTTP/SSE
//	contract and a CLI:
//
//	  - geom        — vectors, AABBs, overlap tests, centre-of-mass accumulator
//	  - model       — Item, PlacedItem, Container, ContainerTemplate
//	  - orient      — axis-aligned orientation enumeration
//	  - cluster     — footprint-similarity clustering of the sort order
//	  - placement   — candidate search and stability gates
//	  - packer      — the driver: sort, place, instantiate, classify
//	  - diagnostics — per-container and aggregate balance/support metrics
//	  - events      — the progress emitter's discriminated event family
//	  - api         — JSON contract, HTTP handlers, SSE framing, env config
//
// Why cratepack?
//
//   - Deterministic — identical inputs and configuration produce an
//     identical packing and an identical event sequence (no backtracking,
//     no randomness, no wall-clock dependence).
//   - Irrevocable by design — once an item is placed it never moves; this
//     keeps the state space bounded and the event stream linear.
//   - Pure core — the packing engine performs no I/O and never blocks;
//     everything that talks to the network lives in api/ and cmd/.
//
// See SPEC_FULL.md in the repository root for the full specification this
// module implements, and DESIGN.md for the grounding behind each package's
// design choices.
//
//	go get github.com/kvantox/cratepack
package cratepack
