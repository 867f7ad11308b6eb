package cluster

import "github.com/kvantox/cratepack/model"

// DefaultTolerance is the default relative footprint-area tolerance (tau)
// used to decide whether two adjacent items belong to the same cluster.
const DefaultTolerance = 0.15

// Cluster is a maximal run of sort-adjacent items in which each pair of
// neighbouring items has base areas differing by at most tau (relative).
type Cluster struct {
	Items []model.Item
}

// Group partitions a pre-sorted sequence of items into footprint clusters
// in a single left-to-right pass. items is assumed to already carry the
// packer driver's primary sort order (mass, volume descending, tie on ID
// ascending); Group never reorders items, it only identifies cluster
// boundaries — within a cluster, and across clusters, the input order is
// preserved exactly, since clusters are contiguous runs of an already
// sorted sequence.
//
// tau < 0 degenerates to "every item starts a new cluster" (no grouping),
// and tau == 0 groups only neighbours with exactly equal base areas; both
// are valid, if unhelpful, configurations and are never rejected.
func Group(items []model.Item, tau float64) []Cluster {
	if len(items) == 0 {
		return nil
	}

	clusters := make([]Cluster, 0, len(items))
	current := Cluster{Items: []model.Item{items[0]}}

	for i := 1; i < len(items); i++ {
		prevArea := baseArea(items[i-1])
		area := baseArea(items[i])
		if sameCluster(prevArea, area, tau) {
			current.Items = append(current.Items, items[i])
		} else {
			clusters = append(clusters, current)
			current = Cluster{Items: []model.Item{items[i]}}
		}
	}
	clusters = append(clusters, current)
	return clusters
}

// Flatten concatenates every cluster's items back into a single ordered
// sequence, identical to Group's input order.
func Flatten(clusters []Cluster) []model.Item {
	var out []model.Item
	for _, c := range clusters {
		out = append(out, c.Items...)
	}
	return out
}

func baseArea(it model.Item) float64 {
	return it.Dims.X * it.Dims.Y
}

// sameCluster reports whether two base areas differ by at most a relative
// factor of tau, relative to the larger area. Two zero areas always
// cluster; a zero area next to a positive one (degenerate, should not occur
// for validated items) has relative difference 1 and clusters only when
// tau >= 1.
func sameCluster(a, b, tau float64) bool {
	if a == 0 && b == 0 {
		return true
	}
	ref := a
	if b > ref {
		ref = b
	}
	if ref == 0 {
		return false
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff/ref <= tau
}
