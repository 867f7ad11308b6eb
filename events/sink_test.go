package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvantox/cratepack/events"
)

func TestRecorderAppendsInOrder(t *testing.T) {
	var rec events.Recorder
	rec.Emit(events.NewContainerStarted(events.ContainerStartedPayload{ID: 1}))
	rec.Emit(events.NewFinished(events.FinishedPayload{Containers: 1}))

	assert.Len(t, rec.Events, 2)
	assert.Equal(t, events.KindContainerStarted, rec.Events[0].Kind)
	assert.Equal(t, events.KindFinished, rec.Events[1].Kind)
}

func TestSinkFuncAdapter(t *testing.T) {
	var got []events.Kind
	var sink events.Sink = events.SinkFunc(func(e events.Event) {
		got = append(got, e.Kind)
	})
	sink.Emit(events.NewObjectRejected(events.ObjectRejectedPayload{ID: 1}))
	assert.Equal(t, []events.Kind{events.KindObjectRejected}, got)
}

func TestNopSinkDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		events.Nop.Emit(events.NewFinished(events.FinishedPayload{}))
	})
}
