// Package diagnostics computes per-container balance and support metrics,
// plus an aggregate summary across every container in a packing result.
//
// Per placement: support percentage is 100% when the item rests on the
// floor, otherwise the XY overlap area with coplanar supporters divided by
// the item's base area, as a percentage. Per container: centre-of-mass
// offset, balance limit (balanceLimitRatio * cavity diagonal), and
// imbalance ratio (offset / limit, 0 when the limit is 0). Aggregated
// summary: the worst (maximum) imbalance ratio, the worst (minimum)
// support percentage, and the unweighted mean of every placement's support
// percentage, across all containers.
package diagnostics
