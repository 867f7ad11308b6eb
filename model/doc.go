// Package model defines cratepack's domain types: Item, PlacedItem,
// Container, ContainerTemplate, and PackRequest, along with the fallible
// constructors that validate them.
//
// Errors:
//
//	ErrInvalidDimension   - a width/depth/height is not finite or not > ε_gen.
//	ErrInvalidMass        - a mass is not finite or not > ε_gen.
//	ErrInvalidConfiguration - a structurally invalid request that is not a dimension or mass problem.
//	ErrMissingTemplates   - PackRequest.Templates is empty.
//
// Items and templates are immutable once constructed; a Container
// accumulates PlacedItem values in insertion order and is never shrunk.
package model
