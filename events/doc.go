// Package events defines the packer driver's progress emitter: a sink
// that receives five discriminated event kinds as the packing job
// progresses, and the ordering contract those events must satisfy.
//
// Ordering contract: for each container, ContainerStarted precedes
// any ObjectPlaced on it; every ObjectPlaced is immediately followed by a
// ContainerDiagnostics for the same container; Finished is the last event,
// exactly once. A tagged variant (Kind + a single populated payload field)
// rather than an interface hierarchy, since the packer driver always knows
// exactly which event it is constructing.
package events
