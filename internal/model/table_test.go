package model

import (
	"errors"
	"testing"
)

func TestCheckSeat(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		res     Reservation
		wantErr error
	}{
		{
			name:  "free table with capacity",
			table: Table{Capacity: 6, Status: TableStatusFree},
			res:   Reservation{People: 4, Status: StatusBooked},
		},
		{
			name:  "party exactly fills the table",
			table: Table{Capacity: 4, Status: TableStatusFree},
			res:   Reservation{People: 4, Status: StatusBooked},
		},
		{
			name:    "reservation already seated",
			table:   Table{Capacity: 6, Status: TableStatusFree},
			res:     Reservation{People: 4, Status: StatusSeated},
			wantErr: ErrAlreadySeated,
		},
		{
			name:    "party too large",
			table:   Table{Capacity: 2, Status: TableStatusFree},
			res:     Reservation{People: 4, Status: StatusBooked},
			wantErr: ErrInsufficientCapacity,
		},
		{
			name:    "table occupied",
			table:   Table{Capacity: 6, Status: TableStatusOccupied},
			res:     Reservation{People: 4, Status: StatusBooked},
			wantErr: ErrTableOccupied,
		},
		{
			// Capacity is checked before occupancy: an undersized table is
			// reported as too small even while someone is sitting at it.
			name:    "undersized occupied table reports capacity",
			table:   Table{Capacity: 2, Status: TableStatusOccupied},
			res:     Reservation{People: 4, Status: StatusBooked},
			wantErr: ErrInsufficientCapacity,
		},
		{
			// Already-seated wins over everything else.
			name:    "seated reservation at undersized occupied table",
			table:   Table{Capacity: 2, Status: TableStatusOccupied},
			res:     Reservation{People: 4, Status: StatusSeated},
			wantErr: ErrAlreadySeated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSeat(&tt.table, &tt.res)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckSeat() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckFinish(t *testing.T) {
	if err := CheckFinish(&Table{Status: TableStatusOccupied}); err != nil {
		t.Errorf("CheckFinish(occupied) = %v, want nil", err)
	}
	if err := CheckFinish(&Table{Status: TableStatusFree}); !errors.Is(err, ErrTableNotOccupied) {
		t.Errorf("CheckFinish(free) = %v, want %v", err, ErrTableNotOccupied)
	}
}
