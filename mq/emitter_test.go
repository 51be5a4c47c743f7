package mq

import (
	"context"
	"testing"

	"tripnest/models"
)

func TestNilEmitterIsNoOp(t *testing.T) {
	var e *Emitter
	// must not panic without a Redis connection
	e.Emit(context.Background(), Event{Action: "created"})
	e.EmitBooking(context.Background(), "deleted", models.Booking{Customer: "jack@test.com"}, 0)

	empty := NewEmitter(nil)
	empty.Emit(context.Background(), Event{Action: "updated"})
}
