package events

// Sink receives progress events from a packing job. Implementations must
// not block indefinitely: the surrounding driver is single-writer,
// single-reader per job, and a slow sink stalls the whole job.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Event)

// Emit implements Sink.
func (f SinkFunc) Emit(e Event) { f(e) }

// Nop is a Sink that discards every event. Useful when a caller only wants
// the final PackResult and has no interest in the live stream.
var Nop Sink = SinkFunc(func(Event) {})

// Recorder is a Sink that appends every event it receives, in order. It is
// primarily intended for tests that assert on the event ordering contract.
type Recorder struct {
	Events []Event
}

// Emit implements Sink.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}
