// Package validate implements the ordered validation pipeline that guards
// every write operation.  Each check is a pure predicate over the raw
// request payload; checks run in a fixed order and the pipeline stops at
// the first failure, so a missing field can never crash a format check.
// Nothing in this package touches the store.
package validate

import (
	"fmt"
	"time"
)

// Kind classifies a validation failure.  The values are stable and
// surfaced to callers alongside the message.
type Kind string

const (
	KindMissingField         Kind = "MissingField"
	KindUnknownField         Kind = "UnknownField"
	KindInvalidDate          Kind = "InvalidDate"
	KindInvalidTime          Kind = "InvalidTime"
	KindInvalidPartySize     Kind = "InvalidPartySize"
	KindOutsideHours         Kind = "OutsideHours"
	KindNotInFuture          Kind = "NotInFuture"
	KindClosedDay            Kind = "ClosedDay"
	KindInvalidInitialStatus Kind = "InvalidInitialStatus"
	KindInvalidStatus        Kind = "InvalidStatus"
	KindInvalidTableName     Kind = "InvalidTableName"
	KindInvalidCapacity      Kind = "InvalidCapacity"
	KindInvalidReservationID Kind = "InvalidReservationID"
)

// Error is a typed rejection produced by a validation check.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Policy carries the restaurant-specific booking rules.  All of it is
// configuration: the original deployment closed on Tuesdays and seated
// between 10:30 and 21:30 US-Eastern, but none of that is hard-coded.
type Policy struct {
	Location      *time.Location // restaurant's local time zone
	ClosedDay     time.Weekday   // weekday on which no reservation may be booked
	OpensAt       int            // first seating, minutes after midnight
	LastSeatingAt int            // last seating, minutes after midnight (inclusive)
}

// NewPolicy builds a Policy from its textual configuration form.
// open and lastSeating use the same HH:MM format as reservation times.
func NewPolicy(tz, closedDay, open, lastSeating string) (Policy, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid time zone %q: %w", tz, err)
	}
	day, err := parseWeekday(closedDay)
	if err != nil {
		return Policy{}, err
	}
	openMin, err := parseClock(open)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid opening time %q", open)
	}
	lastMin, err := parseClock(lastSeating)
	if err != nil {
		return Policy{}, fmt.Errorf("invalid last seating time %q", lastSeating)
	}
	if lastMin < openMin {
		return Policy{}, fmt.Errorf("last seating %q precedes opening %q", lastSeating, open)
	}
	return Policy{Location: loc, ClosedDay: day, OpensAt: openMin, LastSeatingAt: lastMin}, nil
}

func parseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s == d.String() {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", s)
}

// parseClock converts HH:MM to minutes after midnight.  It accepts the
// same range as the reservation_time check.
func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// hasValue reports whether the payload carries a usable value for key.
// JSON null and empty strings count as absent, matching the behavior of
// the required-properties guard this check descends from.
func hasValue(payload map[string]any, key string) bool {
	v, ok := payload[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}

// requireFields fails with MissingField on the first absent key.
func requireFields(payload map[string]any, keys []string) *Error {
	for _, k := range keys {
		if !hasValue(payload, k) {
			return errf(KindMissingField, "%s is required", k)
		}
	}
	return nil
}

// rejectUnknown fails with UnknownField when the payload carries any
// property outside the allowed set for the operation.
func rejectUnknown(payload map[string]any, allowed map[string]struct{}) *Error {
	for k := range payload {
		if _, ok := allowed[k]; !ok {
			return errf(KindUnknownField, "invalid field: %s", k)
		}
	}
	return nil
}

// intValue extracts a JSON number as an exact integer.  Decoded JSON
// numbers arrive as float64; fractional values are rejected.
func intValue(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	}
	return 0, false
}
