package model

import "github.com/kvantox/cratepack/geom"

// Container is a concrete, instantiated packing bin: a fixed cavity, a mass
// cap, the template it was instantiated from, and the ordered list of items
// placed into it so far. Containers are created on demand by the packer
// driver and never destroyed; insertion order is observable (it drives a
// step-by-step visualiser) and is preserved exactly as items are accepted.
type Container struct {
	ID         uint32
	TemplateID uint32
	Cavity     geom.Vec3
	MaxWeight  float64
	Label      *string
	Placements []PlacedItem // insertion order
}

// NewContainer instantiates an empty Container from a template.
func NewContainer(id uint32, tmpl ContainerTemplate) *Container {
	return &Container{
		ID:         id,
		TemplateID: tmpl.ID,
		Cavity:     tmpl.Cavity,
		MaxWeight:  tmpl.MaxWeight,
		Label:      tmpl.Label,
	}
}

// CavityAABB returns the container's interior as an AABB rooted at the
// origin.
func (c *Container) CavityAABB() geom.AABB {
	return geom.NewAABB(geom.Vec3{}, c.Cavity)
}

// TotalMass returns the sum of the mass of every item placed so far.
func (c *Container) TotalMass() float64 {
	var total float64
	for _, p := range c.Placements {
		total += p.Mass
	}
	return total
}

// RemainingMass returns how much more mass the container can accept before
// hitting MaxWeight (ignoring ε_gen — callers add tolerance themselves).
func (c *Container) RemainingMass() float64 {
	return c.MaxWeight - c.TotalMass()
}

// VolumeUtilisation returns the fraction of the cavity's volume occupied by
// placed items: Σ item.volume / (W·D·H). Returns 0 if the cavity has no
// volume (should not occur for a validated template).
func (c *Container) VolumeUtilisation() float64 {
	cavityVol := c.CavityAABB().Volume()
	if cavityVol <= 0 {
		return 0
	}
	var used float64
	for _, p := range c.Placements {
		used += p.Volume()
	}
	return used / cavityVol
}

// AddPlacement appends a placed item to the container in insertion order.
func (c *Container) AddPlacement(p PlacedItem) {
	c.Placements = append(c.Placements, p)
}
