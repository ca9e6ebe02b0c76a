package repository

import (
	"context"
	"database/sql"

	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/model"
)

// TableRepo encapsulates database operations for restaurant tables.
// The table row is the locking anchor of the seating transaction:
// GetForUpdateTx takes the row lock that makes two concurrent seat
// requests for the same table serialize.
type TableRepo struct {
	db *sql.DB
}

// NewTableRepo constructs a TableRepo given a DB handle.
func NewTableRepo(db *sql.DB) *TableRepo { return &TableRepo{db: db} }

// DB exposes the underlying handle for transaction scoping.
func (r *TableRepo) DB() *sql.DB { return r.db }

const tableCols = `id, table_name, capacity, status, reservation_id, created_at, updated_at`

func scanTable(row rowScanner) (*model.Table, error) {
	var (
		t     model.Table
		resID sql.NullInt64
	)
	err := row.Scan(&t.ID, &t.Name, &t.Capacity, &t.Status, &resID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if resID.Valid {
		id := uint64(resID.Int64)
		t.ReservationID = &id
	}
	return &t, nil
}

// Create inserts a new table and populates the generated identity and
// timestamps on the provided record.  New tables start out Free.
func (r *TableRepo) Create(ctx context.Context, t *model.Table) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO restaurant_tables (table_name, capacity, status) VALUES (?, ?, ?)`,
		t.Name, t.Capacity, model.TableStatusFree)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	stored, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*t = *stored
	return nil
}

// GetByID returns the table with the given identity, or sql.ErrNoRows.
func (r *TableRepo) GetByID(ctx context.Context, id uint64) (*model.Table, error) {
	const q = `SELECT ` + tableCols + ` FROM restaurant_tables WHERE id = ?`
	return scanTable(r.db.QueryRowContext(ctx, q, id))
}

// GetForUpdateTx reads a table inside tx while holding its row lock.
func (r *TableRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Table, error) {
	const q = `SELECT ` + tableCols + ` FROM restaurant_tables WHERE id = ? FOR UPDATE`
	return scanTable(tx.QueryRowContext(ctx, q, id))
}

// List returns all tables ordered by name.
func (r *TableRepo) List(ctx context.Context) ([]model.Table, error) {
	const q = `SELECT ` + tableCols + ` FROM restaurant_tables ORDER BY table_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Table, 0)
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignTx marks the table Occupied and binds the reservation, within a
// caller-owned transaction.
func (r *TableRepo) AssignTx(ctx context.Context, tx *sql.Tx, tableID, reservationID uint64) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE restaurant_tables SET status = ?, reservation_id = ? WHERE id = ?`,
		model.TableStatusOccupied, reservationID, tableID)
	return err
}

// ReleaseTx marks the table Free and clears its binding, within a
// caller-owned transaction.
func (r *TableRepo) ReleaseTx(ctx context.Context, tx *sql.Tx, tableID uint64) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE restaurant_tables SET status = ?, reservation_id = NULL WHERE id = ?`,
		model.TableStatusFree, tableID)
	return err
}
