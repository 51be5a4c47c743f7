package mq

import (
	"context"
	"encoding/json"
	"log"

	"tripnest/models"

	"github.com/redis/go-redis/v9"
)

const bookingChannel = "booking-events"

// Event is a booking lifecycle notification published for downstream
// consumers (reporting, mail, etc.).
type Event struct {
	Action      string `json:"action"` // created, updated, deleted
	Customer    string `json:"customer"`
	HotelName   string `json:"hotel_name"`
	CheckInDate string `json:"check_in_date"`
	At          int64  `json:"at"`
}

// Emitter publishes booking events over Redis pub/sub. Fire and forget:
// publish failures are logged and never fail the request. A nil Emitter
// or nil connection is a no-op, so Redis stays optional at runtime.
type Emitter struct {
	conn *redis.Client
}

func NewEmitter(conn *redis.Client) *Emitter {
	return &Emitter{conn: conn}
}

func (e *Emitter) Emit(ctx context.Context, event Event) {
	if e == nil || e.conn == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal booking event: %v", err)
		return
	}

	if err := e.conn.Publish(ctx, bookingChannel, data).Err(); err != nil {
		log.Printf("failed to publish booking event: %v", err)
	}
}

// EmitBooking builds and publishes an event for the given booking.
func (e *Emitter) EmitBooking(ctx context.Context, action string, b models.Booking, at int64) {
	e.Emit(ctx, Event{
		Action:      action,
		Customer:    b.Customer,
		HotelName:   b.HotelName,
		CheckInDate: b.CheckInDate,
		At:          at,
	})
}
