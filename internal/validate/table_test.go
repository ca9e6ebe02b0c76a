package validate

import "testing"

func TestTable(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		want     TableInput
		wantKind Kind
	}{
		{
			name:    "valid table",
			payload: map[string]any{"table_name": "Bar #1", "capacity": float64(1)},
			want:    TableInput{Name: "Bar #1", Capacity: 1},
		},
		{
			name:     "missing name",
			payload:  map[string]any{"capacity": float64(4)},
			wantKind: KindMissingField,
		},
		{
			name:     "missing capacity",
			payload:  map[string]any{"table_name": "#2"},
			wantKind: KindMissingField,
		},
		{
			name:     "unknown field",
			payload:  map[string]any{"table_name": "#2", "capacity": float64(4), "section": "patio"},
			wantKind: KindUnknownField,
		},
		{
			name:     "one character name",
			payload:  map[string]any{"table_name": "A", "capacity": float64(4)},
			wantKind: KindInvalidTableName,
		},
		{
			name:     "numeric name",
			payload:  map[string]any{"table_name": float64(2), "capacity": float64(4)},
			wantKind: KindInvalidTableName,
		},
		{
			name:     "zero capacity",
			payload:  map[string]any{"table_name": "#2", "capacity": float64(0)},
			wantKind: KindInvalidCapacity,
		},
		{
			name:     "fractional capacity",
			payload:  map[string]any{"table_name": "#2", "capacity": 2.5},
			wantKind: KindInvalidCapacity,
		},
		{
			name:     "string capacity",
			payload:  map[string]any{"table_name": "#2", "capacity": "4"},
			wantKind: KindInvalidCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Table(tt.payload)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("Table() = %v, want accept", err)
				}
				if in != tt.want {
					t.Errorf("input = %+v, want %+v", in, tt.want)
				}
				return
			}
			if err == nil {
				t.Fatalf("Table() accepted payload, want kind %s", tt.wantKind)
			}
			if err.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", err.Kind, tt.wantKind)
			}
		})
	}
}

func TestSeat(t *testing.T) {
	tests := []struct {
		name     string
		payload  map[string]any
		want     uint64
		wantKind Kind
	}{
		{
			name:    "valid seat request",
			payload: map[string]any{"reservation_id": float64(12)},
			want:    12,
		},
		{
			name:     "missing reservation_id",
			payload:  map[string]any{},
			wantKind: KindMissingField,
		},
		{
			name:     "unknown field",
			payload:  map[string]any{"reservation_id": float64(12), "table_id": float64(3)},
			wantKind: KindUnknownField,
		},
		{
			name:     "string reservation_id",
			payload:  map[string]any{"reservation_id": "12"},
			wantKind: KindInvalidReservationID,
		},
		{
			name:     "negative reservation_id",
			payload:  map[string]any{"reservation_id": float64(-1)},
			wantKind: KindInvalidReservationID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Seat(tt.payload)
			if tt.wantKind == "" {
				if err != nil {
					t.Fatalf("Seat() = %v, want accept", err)
				}
				if id != tt.want {
					t.Errorf("id = %d, want %d", id, tt.want)
				}
				return
			}
			if err == nil {
				t.Fatalf("Seat() accepted payload, want kind %s", tt.wantKind)
			}
			if err.Kind != tt.wantKind {
				t.Errorf("Kind = %s, want %s", err.Kind, tt.wantKind)
			}
		})
	}
}
