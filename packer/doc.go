// Package packer implements the driver: it validates a request, sorts
// templates and items, iterates items against live containers and freshly
// instantiated ones, recomputes diagnostics after every accepted placement,
// classifies items it cannot place, and emits progress events.
//
// The algorithm is single-pass and irrevocable: once Pack accepts a
// placement it is never moved or undone. Pack is deterministic: identical
// inputs and Config produce an identical PackResult and an identical event
// sequence, since nothing in the call graph below it reads the clock, a
// random source, or external state.
package packer
