package validate

import (
	"regexp"
	"time"

	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/model"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

var reservationRequired = []string{
	"first_name",
	"last_name",
	"mobile_number",
	"reservation_date",
	"reservation_time",
	"people",
}

// reservationAllowed is the full property set accepted on create and
// edit payloads.  Clients legitimately echo back server-managed fields
// when resubmitting a record they previously fetched.
var reservationAllowed = map[string]struct{}{
	"first_name":       {},
	"last_name":        {},
	"mobile_number":    {},
	"reservation_date": {},
	"reservation_time": {},
	"people":           {},
	"status":           {},
	"reservation_id":   {},
	"created_at":       {},
	"updated_at":       {},
}

// ReservationInput is the validated, typed form of a reservation payload.
// It is the immutable value threaded out of the pipeline; handlers build
// model records from it without re-checking anything.
type ReservationInput struct {
	FirstName    string
	LastName     string
	MobileNumber string
	Date         string
	Time         string
	People       uint32
}

// reservationCheck is one step of the admission pipeline.  Steps run in
// declaration order and the first non-nil Error stops the run.
type reservationCheck func(payload map[string]any, p Policy, now time.Time) *Error

var admissionChecks = []reservationCheck{
	checkRequired,
	checkUnknown,
	checkDate,
	checkTime,
	checkPeople,
	checkClosedDay,
	checkFuture,
	checkHours,
	checkInitialStatus,
}

// editChecks is the admission pipeline minus the initial-status rule:
// an edit payload may echo any current status, and status changes are
// the business of the status-update operation, not field edits.
var editChecks = []reservationCheck{
	checkRequired,
	checkUnknown,
	checkDate,
	checkTime,
	checkPeople,
	checkClosedDay,
	checkFuture,
	checkHours,
}

// Reservation runs the full admission pipeline against a raw payload.
// now is the instant against which the future-date rule is evaluated;
// passing it in keeps every check pure.
func Reservation(payload map[string]any, p Policy, now time.Time) (ReservationInput, *Error) {
	return runReservation(payload, p, now, admissionChecks)
}

// ReservationEdit validates a merged field-edit payload.
func ReservationEdit(payload map[string]any, p Policy, now time.Time) (ReservationInput, *Error) {
	return runReservation(payload, p, now, editChecks)
}

func runReservation(payload map[string]any, p Policy, now time.Time, checks []reservationCheck) (ReservationInput, *Error) {
	for _, check := range checks {
		if err := check(payload, p, now); err != nil {
			return ReservationInput{}, err
		}
	}
	people, _ := intValue(payload["people"])
	return ReservationInput{
		FirstName:    payload["first_name"].(string),
		LastName:     payload["last_name"].(string),
		MobileNumber: payload["mobile_number"].(string),
		Date:         payload["reservation_date"].(string),
		Time:         payload["reservation_time"].(string),
		People:       uint32(people),
	}, nil
}

func checkRequired(payload map[string]any, _ Policy, _ time.Time) *Error {
	if err := requireFields(payload, reservationRequired); err != nil {
		return err
	}
	// The string fields must actually be strings; a numeric first_name
	// would otherwise panic the typed extraction.
	for _, k := range []string{"first_name", "last_name", "mobile_number", "reservation_date", "reservation_time"} {
		if _, ok := payload[k].(string); !ok {
			return errf(KindMissingField, "%s must be a string", k)
		}
	}
	return nil
}

func checkUnknown(payload map[string]any, _ Policy, _ time.Time) *Error {
	return rejectUnknown(payload, reservationAllowed)
}

func checkDate(payload map[string]any, _ Policy, _ time.Time) *Error {
	date := payload["reservation_date"].(string)
	if !dateRe.MatchString(date) {
		return errf(KindInvalidDate, "reservation_date %q is not a valid date; expected YYYY-MM-DD", date)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errf(KindInvalidDate, "reservation_date %q is not a real calendar date", date)
	}
	return nil
}

func checkTime(payload map[string]any, _ Policy, _ time.Time) *Error {
	t := payload["reservation_time"].(string)
	if !timeRe.MatchString(t) {
		return errf(KindInvalidTime, "reservation_time %q is not a valid time; expected HH:MM", t)
	}
	return nil
}

func checkPeople(payload map[string]any, _ Policy, _ time.Time) *Error {
	n, ok := intValue(payload["people"])
	if !ok || n <= 0 {
		return errf(KindInvalidPartySize, "people must be a positive integer")
	}
	return nil
}

func checkClosedDay(payload map[string]any, p Policy, _ time.Time) *Error {
	date, _ := time.Parse("2006-01-02", payload["reservation_date"].(string))
	if date.Weekday() == p.ClosedDay {
		return errf(KindClosedDay, "the restaurant is closed on %s", p.ClosedDay)
	}
	return nil
}

func checkFuture(payload map[string]any, p Policy, now time.Time) *Error {
	at, err := time.ParseInLocation("2006-01-02 15:04",
		payload["reservation_date"].(string)+" "+payload["reservation_time"].(string), p.Location)
	if err != nil {
		return errf(KindInvalidDate, "reservation_date and reservation_time do not combine to a valid instant")
	}
	if !at.After(now) {
		return errf(KindNotInFuture, "reservation must be in the future")
	}
	return nil
}

func checkHours(payload map[string]any, p Policy, _ time.Time) *Error {
	minutes, _ := parseClock(payload["reservation_time"].(string))
	if minutes < p.OpensAt || minutes > p.LastSeatingAt {
		return errf(KindOutsideHours, "reservations are only allowed between %s and %s",
			clockString(p.OpensAt), clockString(p.LastSeatingAt))
	}
	return nil
}

func checkInitialStatus(payload map[string]any, _ Policy, _ time.Time) *Error {
	v, ok := payload["status"]
	if !ok || v == nil {
		return nil
	}
	if s, isStr := v.(string); isStr && (s == "" || s == string(model.StatusBooked)) {
		return nil
	}
	return errf(KindInvalidInitialStatus, "a new reservation must have status %q", model.StatusBooked)
}

// Status validates the target of a status-update operation.
func Status(s string) (model.ReservationStatus, *Error) {
	status := model.ReservationStatus(s)
	if !status.Valid() {
		return "", errf(KindInvalidStatus, "invalid status %q; status must be one of booked, seated, finished, cancelled", s)
	}
	return status, nil
}

func clockString(minutes int) string {
	return time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format("15:04")
}
