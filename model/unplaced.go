package model

// UnplacedReason classifies why an Item could not be placed into any
// container. A tagged variant rather than an interface hierarchy: the
// packer driver knows exactly which of the three applies at the moment it
// gives up on an item.
type UnplacedReason int

const (
	// ReasonNone is the zero value; it is never attached to a real
	// UnplacedItem and exists only to make a missing classification obvious.
	ReasonNone UnplacedReason = iota

	// ReasonExceedsMass: every template's MaxWeight is below the item's
	// mass (within ε_gen).
	ReasonExceedsMass

	// ReasonExceedsDims: no template can hold the item in any orientation
	// permitted by the request's rotation policy.
	ReasonExceedsDims

	// ReasonNoStablePosition: at least one template could physically hold
	// the item, but no position in any live or freshly instantiated
	// container passed every stability gate.
	ReasonNoStablePosition
)

// String renders the reason using the response API's wire vocabulary.
func (r UnplacedReason) String() string {
	switch r {
	case ReasonExceedsMass:
		return "too_heavy_for_container"
	case ReasonExceedsDims:
		return "dimensions_exceed_container"
	case ReasonNoStablePosition:
		return "no_stable_position"
	default:
		return "unknown"
	}
}

// UnplacedItem pairs an Item with the reason it was rejected.
type UnplacedItem struct {
	Item
	Reason UnplacedReason
}
