package model

import "github.com/kvantox/cratepack/geom"

// Item is a single cuboid to be packed: a stable, opaque identifier,
// strictly positive finite dimensions, and a strictly positive finite
// mass. Items are immutable after construction; two items are
// interchangeable for packing purposes iff their (Dims, Mass) are equal —
// the identifier plays no role in the algorithm beyond reporting.
type Item struct {
	ID   uint32
	Dims geom.Vec3 // X=width, Y=depth, Z=height, all in the item's own frame
	Mass float64
}

// NewItem validates and constructs an Item. eps is the general-purpose
// epsilon (ε_gen) used to reject non-positive or non-finite magnitudes.
func NewItem(id uint32, width, depth, height, mass, eps float64) (Item, error) {
	if !geom.IsPositiveMagnitude(width, eps) {
		return Item{}, invalidDimension("width")
	}
	if !geom.IsPositiveMagnitude(depth, eps) {
		return Item{}, invalidDimension("depth")
	}
	if !geom.IsPositiveMagnitude(height, eps) {
		return Item{}, invalidDimension("height")
	}
	if !geom.IsPositiveMagnitude(mass, eps) {
		return Item{}, invalidMass("mass")
	}
	return Item{ID: id, Dims: geom.Vec3{X: width, Y: depth, Z: height}, Mass: mass}, nil
}

// Volume returns the item's unoriented volume (width * depth * height);
// orientation never changes volume.
func (i Item) Volume() float64 {
	return i.Dims.X * i.Dims.Y * i.Dims.Z
}

// PlacedItem is an Item placed at a specific origin inside a container
// using a specific (possibly axis-permuted) orientation.
//
// Invariant: the AABB formed by Origin and OrientedDims lies within the
// owning container's cavity (within ε_gen) and does not overlap any other
// PlacedItem in the same container. These invariants are enforced by the
// placement package before a PlacedItem is ever constructed; this type
// itself performs no validation.
type PlacedItem struct {
	Item
	Origin       geom.Vec3 // minimum corner of the placed AABB
	OrientedDims geom.Vec3 // the oriented (w,d,h) actually used; may differ from Item.Dims
}

// AABB returns the placed item's axis-aligned bounding box.
func (p PlacedItem) AABB() geom.AABB {
	return geom.NewAABB(p.Origin, p.OrientedDims)
}
