package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  Methods
// with a Tx suffix run inside a caller-owned transaction; the caller
// must commit or roll back.  All timestamps are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// spanning this repository and TableRepo.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

// reservationCols formats date and time back into their wire forms so a
// stored record round-trips exactly as it was admitted.
const reservationCols = `id, first_name, last_name, mobile_number,
       DATE_FORMAT(reservation_date, '%Y-%m-%d'),
       TIME_FORMAT(reservation_time, '%H:%i'),
       people, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*model.Reservation, error) {
	var res model.Reservation
	err := row.Scan(&res.ID, &res.FirstName, &res.LastName, &res.MobileNumber,
		&res.Date, &res.Time, &res.People, &res.Status, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Create inserts a new reservation and populates the generated identity
// and timestamps on the provided record.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations
	           (first_name, last_name, mobile_number, reservation_date, reservation_time, people, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, q,
		res.FirstName, res.LastName, res.MobileNumber, res.Date, res.Time, res.People, res.Status)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	// Query back the full row to populate timestamps and defaults.
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*res = *stored
	return nil
}

// GetByID returns the reservation with the given identity.  When no such
// row exists, sql.ErrNoRows is returned.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ?`
	return scanReservation(r.db.QueryRowContext(ctx, q, id))
}

// GetForUpdateTx reads a reservation inside tx while taking a row lock,
// so concurrent seatings of the same reservation serialize on it.
func (r *ReservationRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + reservationCols + ` FROM reservations WHERE id = ? FOR UPDATE`
	return scanReservation(tx.QueryRowContext(ctx, q, id))
}

// UpdateFields persists an edited record's guest fields and returns the
// stored row.  Status is deliberately not written here; lifecycle moves
// go through SetStatus or the seating transaction.
func (r *ReservationRepo) UpdateFields(ctx context.Context, res *model.Reservation) (*model.Reservation, error) {
	const q = `UPDATE reservations
	           SET first_name = ?, last_name = ?, mobile_number = ?,
	               reservation_date = ?, reservation_time = ?, people = ?
	           WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, q,
		res.FirstName, res.LastName, res.MobileNumber, res.Date, res.Time, res.People, res.ID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, res.ID)
}

// SetStatus persists a status transition and returns the updated record.
func (r *ReservationRepo) SetStatus(ctx context.Context, id uint64, status model.ReservationStatus) (*model.Reservation, error) {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE reservations SET status = ? WHERE id = ?`, status, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// SetStatusTx is SetStatus within a caller-owned transaction.  It does
// not read the row back; the seating coordinator already holds it.
func (r *ReservationRepo) SetStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status model.ReservationStatus) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE reservations SET status = ? WHERE id = ?`, status, id)
	return err
}

// ListByDate returns the reservations for one calendar date, excluding
// finished and cancelled ones, ordered by time of day ascending.
func (r *ReservationRepo) ListByDate(ctx context.Context, date string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationCols + `
	           FROM reservations
	           WHERE reservation_date = ? AND status NOT IN (?, ?)
	           ORDER BY reservation_time`
	rows, err := r.db.QueryContext(ctx, q, date, model.StatusFinished, model.StatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

// FindByPhone returns all reservations whose contact number contains the
// digits of the given number, ignoring punctuation, ordered by date.
// Matching every status is intentional: the phone search is how staff
// find a guest's full history.
func (r *ReservationRepo) FindByPhone(ctx context.Context, number string) ([]model.Reservation, error) {
	const q = `SELECT ` + reservationCols + `
	           FROM reservations
	           WHERE REGEXP_REPLACE(mobile_number, '[^0-9]', '') LIKE CONCAT('%', ?, '%')
	           ORDER BY reservation_date, reservation_time`
	rows, err := r.db.QueryContext(ctx, q, digitsOnly(number))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReservations(rows)
}

func collectReservations(rows *sql.Rows) ([]model.Reservation, error) {
	out := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// digitsOnly strips everything but ASCII digits from a phone number.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
