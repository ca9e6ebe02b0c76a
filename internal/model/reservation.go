package model

import (
	"errors"
	"time"
)

// ReservationStatus enumerates the lifecycle states of a reservation.
// The legal path is booked -> seated -> finished; cancelled is reachable
// from booked or seated. finished and cancelled are terminal.
type ReservationStatus string

const (
	StatusBooked    ReservationStatus = "booked"
	StatusSeated    ReservationStatus = "seated"
	StatusFinished  ReservationStatus = "finished"
	StatusCancelled ReservationStatus = "cancelled"
)

// Valid reports whether s is one of the four recognized statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusBooked, StatusSeated, StatusFinished, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no transition away from s is permitted.
func (s ReservationStatus) Terminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

// Sentinel errors for state-incompatible operations.  Handlers translate
// these into HTTP 409 responses.
var (
	ErrReservationImmutable = errors.New("a finished or cancelled reservation cannot be updated")
	ErrInvalidTransition    = errors.New("reservation status cannot move backwards")
	ErrAlreadySeated        = errors.New("reservation is already seated")
	ErrInsufficientCapacity = errors.New("table does not have sufficient capacity")
	ErrTableOccupied        = errors.New("table is currently occupied")
	ErrTableNotOccupied     = errors.New("table is not occupied")
)

// Reservation mirrors the schema of the reservations table.  Date and
// Time are kept in their wire formats (YYYY-MM-DD, HH:MM); the validate
// package has already proven they parse before a record is built.
type Reservation struct {
	ID           uint64            `json:"reservation_id"`
	FirstName    string            `json:"first_name"`
	LastName     string            `json:"last_name"`
	MobileNumber string            `json:"mobile_number"`
	Date         string            `json:"reservation_date"`
	Time         string            `json:"reservation_time"`
	People       uint32            `json:"people"`
	Status       ReservationStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// rank orders the forward path booked -> seated -> finished.  cancelled
// sits outside the path and is handled separately.
func rank(s ReservationStatus) int {
	switch s {
	case StatusBooked:
		return 0
	case StatusSeated:
		return 1
	case StatusFinished:
		return 2
	}
	return -1
}

// CanTransition decides whether a reservation currently in from may be
// moved to to by a direct status update.  A write of the current status
// is a no-op and always allowed, including on terminal reservations.
func CanTransition(from, to ReservationStatus) error {
	if from == to {
		return nil
	}
	if from.Terminal() {
		return ErrReservationImmutable
	}
	if to == StatusCancelled {
		return nil
	}
	if rank(to) < rank(from) {
		return ErrInvalidTransition
	}
	return nil
}

// CheckEditable rejects field edits on reservations in a terminal state.
func CheckEditable(r *Reservation) error {
	if r.Status.Terminal() {
		return ErrReservationImmutable
	}
	return nil
}
