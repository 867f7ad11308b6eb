package packer

import (
	"github.com/kvantox/cratepack/diagnostics"
	"github.com/kvantox/cratepack/model"
)

// PackResult is the outcome of a single Pack call: every instantiated
// container in creation order, the items that could not be placed, the
// diagnostics of each container at the end of the run (parallel to
// Containers), and the aggregated summary across all of them.
type PackResult struct {
	Containers  []*model.Container
	Unplaced    []model.UnplacedItem
	Diagnostics []diagnostics.ContainerDiagnostics
	Summary     diagnostics.Summary
}
