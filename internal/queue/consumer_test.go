package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHandleMessageAppendsLogLine(t *testing.T) {
	t.Chdir(t.TempDir())

	ev := BookingConfirmedEvent{
		BookingID:        7,
		UserID:           1,
		RoomID:           3,
		CheckInDate:      "2024-01-01",
		CheckOutDate:     "2024-01-03",
		TotalAmountCents: 200000,
		PaymentID:        9,
		AmountCents:      200000,
		ConfirmedAt:      "2024-01-05T10:00:00Z",
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if err := handleMessage(body); err != nil {
		t.Fatalf("handle: %v", err)
	}
	data, err := os.ReadFile(filepath.Join("logs", "booking.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	line := string(data)
	for _, want := range []string{"booking_id=7", "payment_id=9", "2024-01-01..2024-01-03", "total=200000 cents"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line missing %q: %s", want, line)
		}
	}

	// A second message appends rather than truncates.
	if err := handleMessage(body); err != nil {
		t.Fatalf("handle: %v", err)
	}
	data, err = os.ReadFile(filepath.Join("logs", "booking.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(data), "booking_id=7"); got != 2 {
		t.Errorf("want 2 log lines, got %d", got)
	}
}

func TestHandleMessageRejectsMalformedBody(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := handleMessage([]byte("{not json")); err == nil {
		t.Fatal("malformed body accepted")
	}
	if _, err := os.Stat(filepath.Join("logs", "booking.log")); !os.IsNotExist(err) {
		t.Error("malformed message produced a log file")
	}
}
