package validate

import "unicode/utf8"

var tableRequired = []string{"table_name", "capacity"}

// tableAllowed mirrors the original setup form, which may submit a
// reservation_id alongside the table so fixtures can seed occupied tables.
var tableAllowed = map[string]struct{}{
	"table_name":     {},
	"capacity":       {},
	"reservation_id": {},
}

var seatAllowed = map[string]struct{}{
	"reservation_id": {},
}

// TableInput is the validated form of a table-creation payload.
type TableInput struct {
	Name     string
	Capacity uint32
}

// Table validates a table-creation payload.
func Table(payload map[string]any) (TableInput, *Error) {
	if err := requireFields(payload, tableRequired); err != nil {
		return TableInput{}, err
	}
	if err := rejectUnknown(payload, tableAllowed); err != nil {
		return TableInput{}, err
	}
	name, ok := payload["table_name"].(string)
	if !ok || utf8.RuneCountInString(name) < 2 {
		return TableInput{}, errf(KindInvalidTableName, "table_name must be at least 2 characters in length")
	}
	capacity, ok := intValue(payload["capacity"])
	if !ok || capacity <= 0 {
		return TableInput{}, errf(KindInvalidCapacity, "capacity must be a positive integer")
	}
	return TableInput{Name: name, Capacity: uint32(capacity)}, nil
}

// Seat validates the body of a seat request and returns the reservation
// identity to bind.
func Seat(payload map[string]any) (uint64, *Error) {
	if err := requireFields(payload, []string{"reservation_id"}); err != nil {
		return 0, err
	}
	if err := rejectUnknown(payload, seatAllowed); err != nil {
		return 0, err
	}
	id, ok := intValue(payload["reservation_id"])
	if !ok || id <= 0 {
		return 0, errf(KindInvalidReservationID, "reservation_id must be a positive integer")
	}
	return uint64(id), nil
}
