package packer

import (
	"sort"

	"github.com/kvantox/cratepack/model"
)

// sortTemplates orders templates ascending by (cavity volume, mass cap),
// so the first template able to fit a given item is the tightest
// reasonable choice.
func sortTemplates(templates []model.ContainerTemplate) []model.ContainerTemplate {
	out := append([]model.ContainerTemplate(nil), templates...)
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := out[i].Volume(), out[j].Volume()
		if vi != vj {
			return vi < vj
		}
		return out[i].MaxWeight < out[j].MaxWeight
	})
	return out
}

// sortItems orders items by the primary key (mass, volume) descending,
// tie-broken on item ID ascending.
func sortItems(items []model.Item) []model.Item {
	out := append([]model.Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Mass != out[j].Mass {
			return out[i].Mass > out[j].Mass
		}
		vi, vj := out[i].Volume(), out[j].Volume()
		if vi != vj {
			return vi > vj
		}
		return out[i].ID < out[j].ID
	})
	return out
}
