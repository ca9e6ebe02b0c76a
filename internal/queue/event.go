// Package queue defines message payloads exchanged over the message broker.
package queue

// LifecycleQueueName is the durable queue carrying reservation
// lifecycle events.
const LifecycleQueueName = "reservation.lifecycle"

// ReservationEvent is published whenever a reservation changes state:
// admitted (booked), seated at a table, finished, or cancelled.  It
// carries enough information for downstream consumers to log or trigger
// analytics without querying the primary database.
type ReservationEvent struct {
	ReservationID   uint64  `json:"reservation_id"`
	Status          string  `json:"status"`
	TableID         *uint64 `json:"table_id,omitempty"`
	GuestName       string  `json:"guest_name"`
	MobileNumber    string  `json:"mobile_number"`
	ReservationDate string  `json:"reservation_date"`
	ReservationTime string  `json:"reservation_time"`
	People          uint32  `json:"people"`
	OccurredAt      string  `json:"occurred_at"`
}
