package model

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    ReservationStatus
		to      ReservationStatus
		wantErr error
	}{
		{name: "booked to seated", from: StatusBooked, to: StatusSeated},
		{name: "seated to finished", from: StatusSeated, to: StatusFinished},
		{name: "booked to finished skips seated", from: StatusBooked, to: StatusFinished},
		{name: "booked to cancelled", from: StatusBooked, to: StatusCancelled},
		{name: "seated to cancelled", from: StatusSeated, to: StatusCancelled},

		{name: "booked no-op", from: StatusBooked, to: StatusBooked},
		{name: "finished no-op", from: StatusFinished, to: StatusFinished},
		{name: "cancelled no-op", from: StatusCancelled, to: StatusCancelled},

		{name: "seated back to booked", from: StatusSeated, to: StatusBooked, wantErr: ErrInvalidTransition},
		{name: "finished back to seated", from: StatusFinished, to: StatusSeated, wantErr: ErrReservationImmutable},
		{name: "finished to cancelled", from: StatusFinished, to: StatusCancelled, wantErr: ErrReservationImmutable},
		{name: "cancelled to booked", from: StatusCancelled, to: StatusBooked, wantErr: ErrReservationImmutable},
		{name: "cancelled to seated", from: StatusCancelled, to: StatusSeated, wantErr: ErrReservationImmutable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, err, tt.wantErr)
			}
		})
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []ReservationStatus{StatusBooked, StatusSeated, StatusFinished, StatusCancelled} {
		if !s.Valid() {
			t.Errorf("%s.Valid() = false, want true", s)
		}
	}
	for _, s := range []ReservationStatus{"", "BOOKED", "pending"} {
		if s.Valid() {
			t.Errorf("%q.Valid() = true, want false", s)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusBooked.Terminal() || StatusSeated.Terminal() {
		t.Error("booked and seated must not be terminal")
	}
	if !StatusFinished.Terminal() || !StatusCancelled.Terminal() {
		t.Error("finished and cancelled must be terminal")
	}
}

func TestCheckEditable(t *testing.T) {
	for _, s := range []ReservationStatus{StatusBooked, StatusSeated} {
		if err := CheckEditable(&Reservation{Status: s}); err != nil {
			t.Errorf("CheckEditable(%s) = %v, want nil", s, err)
		}
	}
	for _, s := range []ReservationStatus{StatusFinished, StatusCancelled} {
		if err := CheckEditable(&Reservation{Status: s}); !errors.Is(err, ErrReservationImmutable) {
			t.Errorf("CheckEditable(%s) = %v, want %v", s, err, ErrReservationImmutable)
		}
	}
}
