package model

import "time"

// TableStatus enumerates the occupancy states of a physical table.
type TableStatus string

const (
	TableStatusFree     TableStatus = "Free"
	TableStatusOccupied TableStatus = "Occupied"
)

// Table mirrors the schema of the restaurant_tables table.  ReservationID
// is non-nil exactly when Status is Occupied; the seating transaction
// maintains that pairing.
type Table struct {
	ID            uint64      `json:"table_id"`
	Name          string      `json:"table_name"`
	Capacity      uint32      `json:"capacity"`
	Status        TableStatus `json:"status"`
	ReservationID *uint64     `json:"reservation_id"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// CheckSeat verifies the preconditions for binding r to t.  The checks
// run in a fixed order: an already-seated reservation is reported before
// capacity, and capacity before occupancy, so an undersized table is
// rejected with ErrInsufficientCapacity regardless of its current status.
func CheckSeat(t *Table, r *Reservation) error {
	if r.Status == StatusSeated {
		return ErrAlreadySeated
	}
	if t.Capacity < r.People {
		return ErrInsufficientCapacity
	}
	if t.Status != TableStatusFree {
		return ErrTableOccupied
	}
	return nil
}

// CheckFinish verifies that t can be released.
func CheckFinish(t *Table) error {
	if t.Status != TableStatusOccupied {
		return ErrTableNotOccupied
	}
	return nil
}
