package events

import (
	"github.com/kvantox/cratepack/diagnostics"
	"github.com/kvantox/cratepack/geom"
)

// Kind discriminates the five event payloads an Event may carry.
type Kind int

const (
	KindContainerStarted Kind = iota
	KindObjectPlaced
	KindContainerDiagnostics
	KindObjectRejected
	KindFinished
)

// ContainerStartedPayload reports a freshly instantiated container, before
// any item has been placed into it.
type ContainerStartedPayload struct {
	ID         uint32
	Dims       geom.Vec3
	MaxWeight  float64
	Label      *string
	TemplateID uint32
}

// ObjectPlacedPayload reports a successful placement.
type ObjectPlacedPayload struct {
	ContainerID uint32
	ID          uint32
	Pos         geom.Vec3
	Weight      float64
	Dims        geom.Vec3 // oriented dims actually used
	TotalWeight float64   // container total mass after this placement
}

// ContainerDiagnosticsPayload reports the recomputed diagnostics for one
// container, emitted immediately after the ObjectPlaced event that
// triggered the recomputation.
type ContainerDiagnosticsPayload struct {
	ContainerID uint32
	Diagnostics diagnostics.ContainerDiagnostics
}

// ObjectRejectedPayload reports an item the driver could not place.
type ObjectRejectedPayload struct {
	ID         uint32
	Weight     float64
	Dims       geom.Vec3
	ReasonCode string
	ReasonText string
}

// FinishedPayload reports the terminal state of a packing job.
type FinishedPayload struct {
	Containers         int
	Unplaced           int
	DiagnosticsSummary diagnostics.Summary
}

// Event is a single discriminated progress event. Exactly one of the
// payload fields matching Kind is populated; the rest are zero values.
type Event struct {
	Kind                 Kind
	ContainerStarted     *ContainerStartedPayload
	ObjectPlaced         *ObjectPlacedPayload
	ContainerDiagnostics *ContainerDiagnosticsPayload
	ObjectRejected       *ObjectRejectedPayload
	Finished             *FinishedPayload
}

// NewContainerStarted builds a KindContainerStarted event.
func NewContainerStarted(p ContainerStartedPayload) Event {
	return Event{Kind: KindContainerStarted, ContainerStarted: &p}
}

// NewObjectPlaced builds a KindObjectPlaced event.
func NewObjectPlaced(p ObjectPlacedPayload) Event {
	return Event{Kind: KindObjectPlaced, ObjectPlaced: &p}
}

// NewContainerDiagnostics builds a KindContainerDiagnostics event.
func NewContainerDiagnostics(p ContainerDiagnosticsPayload) Event {
	return Event{Kind: KindContainerDiagnostics, ContainerDiagnostics: &p}
}

// NewObjectRejected builds a KindObjectRejected event.
func NewObjectRejected(p ObjectRejectedPayload) Event {
	return Event{Kind: KindObjectRejected, ObjectRejected: &p}
}

// NewFinished builds a KindFinished event.
func NewFinished(p FinishedPayload) Event {
	return Event{Kind: KindFinished, Finished: &p}
}
