package model

import "github.com/kvantox/cratepack/geom"

// ContainerTemplate is a reusable cavity shape and mass cap from which the
// packer driver instantiates concrete Containers on demand. Templates are
// shared, read-only references: many Containers may be instantiated from
// the same template.
type ContainerTemplate struct {
	ID        uint32
	Cavity    geom.Vec3 // X=width, Y=depth, Z=height of the interior
	MaxWeight float64
	Label     *string // optional human-readable label
}

// NewContainerTemplate validates and constructs a ContainerTemplate.
func NewContainerTemplate(id uint32, width, depth, height, maxWeight float64, label *string, eps float64) (ContainerTemplate, error) {
	if !geom.IsPositiveMagnitude(width, eps) {
		return ContainerTemplate{}, invalidDimension("width")
	}
	if !geom.IsPositiveMagnitude(depth, eps) {
		return ContainerTemplate{}, invalidDimension("depth")
	}
	if !geom.IsPositiveMagnitude(height, eps) {
		return ContainerTemplate{}, invalidDimension("height")
	}
	if !geom.IsPositiveMagnitude(maxWeight, eps) {
		return ContainerTemplate{}, invalidMass("max_weight")
	}
	return ContainerTemplate{
		ID:        id,
		Cavity:    geom.Vec3{X: width, Y: depth, Z: height},
		MaxWeight: maxWeight,
		Label:     label,
	}, nil
}

// Volume returns the template's cavity volume.
func (t ContainerTemplate) Volume() float64 {
	return t.Cavity.X * t.Cavity.Y * t.Cavity.Z
}
