package handler

import (
	"net/http"
	"testing"
)

func TestTableCreateRejectsBeforeStore(t *testing.T) {
	h := NewTableHandler(nil, nil)

	tests := []struct {
		name     string
		body     string
		wantKind string
	}{
		{name: "missing capacity", body: `{"table_name":"#2"}`, wantKind: "MissingField"},
		{name: "short name", body: `{"table_name":"A","capacity":4}`, wantKind: "InvalidTableName"},
		{name: "zero capacity", body: `{"table_name":"#2","capacity":0}`, wantKind: "InvalidCapacity"},
		{name: "unknown field", body: `{"table_name":"#2","capacity":4,"section":"patio"}`, wantKind: "UnknownField"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := doJSON(h.Create, http.MethodPost, "/v1/tables", tt.body, nil)
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if kind, _ := decodeError(t, rec); kind != tt.wantKind {
				t.Errorf("error kind = %q, want %q", kind, tt.wantKind)
			}
		})
	}
}

func TestTableSeatRejectsBeforeTransaction(t *testing.T) {
	h := NewTableHandler(nil, nil)

	tests := []struct {
		name     string
		body     string
		wantKind string
	}{
		{name: "missing reservation_id", body: `{}`, wantKind: "MissingField"},
		{name: "string reservation_id", body: `{"reservation_id":"12"}`, wantKind: "InvalidReservationID"},
		{name: "unknown field", body: `{"reservation_id":12,"note":"window seat"}`, wantKind: "UnknownField"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := doJSON(h.Seat, http.MethodPut, "/v1/tables/3/seat", tt.body, map[string]string{"id": "3"})
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
			if kind, _ := decodeError(t, rec); kind != tt.wantKind {
				t.Errorf("error kind = %q, want %q", kind, tt.wantKind)
			}
		})
	}
}

func TestTableSeatBadPathID(t *testing.T) {
	h := NewTableHandler(nil, nil)

	rec, err := doJSON(h.Seat, http.MethodPut, "/v1/tables/nope/seat", `{"reservation_id":12}`, map[string]string{"id": "nope"})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
