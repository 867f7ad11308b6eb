// Package api is the thin HTTP collaborator around the packing core: it
// decodes a batch request, runs packer.Pack, and renders either a single
// JSON response or a server-sent-event stream of the same progress events
// the core already emits to an events.Sink. Nothing in this package touches
// the packing algorithm itself; it only translates between wire shapes and
// the core's model/events/packer types.
package api
