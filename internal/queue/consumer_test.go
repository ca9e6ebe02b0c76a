package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. (testing.T.Chdir needs Go 1.24;
// this toolchain is older.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

func TestHandleMessageWritesLogLine(t *testing.T) {
	chdir(t, t.TempDir())

	tableID := uint64(3)
	ev := ReservationEvent{
		ReservationID:   12,
		Status:          "seated",
		TableID:         &tableID,
		GuestName:       "Rick Sanchez",
		MobileNumber:    "202-555-0188",
		ReservationDate: "2030-03-06",
		ReservationTime: "18:00",
		People:          4,
		OccurredAt:      "2030-03-06T17:55:00Z",
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := handleMessage(body); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}

	data, err := os.ReadFile(filepath.Join("logs", "reservations.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	for _, want := range []string{"reservation seated", "reservation_id=12", "table=3", "2030-03-06 18:00"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q does not contain %q", line, want)
		}
	}
}

func TestHandleMessageNoTable(t *testing.T) {
	chdir(t, t.TempDir())

	body, _ := json.Marshal(ReservationEvent{ReservationID: 9, Status: "booked"})
	if err := handleMessage(body); err != nil {
		t.Fatalf("handleMessage: %v", err)
	}
	data, err := os.ReadFile(filepath.Join("logs", "reservations.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "table=-") {
		t.Errorf("log line %q should mark the table as absent", string(data))
	}
}

func TestHandleMessageRejectsBadJSON(t *testing.T) {
	chdir(t, t.TempDir())

	if err := handleMessage([]byte("not json")); err == nil {
		t.Error("handleMessage accepted malformed body")
	}
}
