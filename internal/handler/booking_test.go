package handler_test

import (
	"net/http"
	"testing"
)

func TestCreateBookingFreezesTotal(t *testing.T) {
	ev := newEnv(t)
	_, token := ev.signup(t, "a@x.com")
	roomID := ev.seedRoom(t, "Ocean View Suite", 100000)

	rec := ev.do(t, http.MethodPost, "/api/bookings", token, map[string]any{
		"room_id":        roomID,
		"check_in_date":  "2024-01-01",
		"check_out_date": "2024-01-03",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	booking := decode(t, rec)["booking"].(map[string]any)
	if got := int64(booking["total_amount_cents"].(float64)); got != 200000 {
		t.Errorf("total=%d, want 200000 (2 nights x 100000)", got)
	}
	if booking["status"] != "pending" {
		t.Errorf("status=%v, want pending", booking["status"])
	}
	if booking["room_name"] != "Ocean View Suite" {
		t.Errorf("room_name=%v", booking["room_name"])
	}
	if booking["check_in_date"] != "2024-01-01" || booking["check_out_date"] != "2024-01-03" {
		t.Errorf("dates not echoed: %v .. %v", booking["check_in_date"], booking["check_out_date"])
	}
}

func TestCreateBookingRejectsBadDates(t *testing.T) {
	ev := newEnv(t)
	_, token := ev.signup(t, "a@x.com")
	roomID := ev.seedRoom(t, "Suite", 100000)

	for _, dates := range [][2]string{
		{"2024-01-03", "2024-01-01"}, // reversed
		{"2024-01-01", "2024-01-01"}, // zero nights
		{"01/02/2024", "2024-01-03"}, // wrong format
	} {
		rec := ev.do(t, http.MethodPost, "/api/bookings", token, map[string]any{
			"room_id":        roomID,
			"check_in_date":  dates[0],
			"check_out_date": dates[1],
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("dates %v: status %d, want 400", dates, rec.Code)
		}
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	ev := newEnv(t)
	_, token := ev.signup(t, "a@x.com")

	rec := ev.do(t, http.MethodPost, "/api/bookings", token, map[string]any{
		"room_id":        999,
		"check_in_date":  "2024-01-01",
		"check_out_date": "2024-01-02",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rec.Code)
	}
}

func TestCreateBookingRequiresToken(t *testing.T) {
	ev := newEnv(t)
	roomID := ev.seedRoom(t, "Suite", 100000)

	rec := ev.do(t, http.MethodPost, "/api/bookings", "", map[string]any{
		"room_id":        roomID,
		"check_in_date":  "2024-01-01",
		"check_out_date": "2024-01-02",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", rec.Code)
	}

	rec = ev.do(t, http.MethodPost, "/api/bookings", "not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: status %d, want 401", rec.Code)
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	ev := newEnv(t)
	_, token := ev.signup(t, "a@x.com")
	roomID := ev.seedRoom(t, "Suite", 100000)

	rec := ev.do(t, http.MethodPost, "/api/bookings", token, map[string]any{
		"room_id": roomID, "check_in_date": "2024-01-10", "check_out_date": "2024-01-15",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("first booking: status %d", rec.Code)
	}

	// Overlapping range, even from another user, is refused.
	_, token2 := ev.signup(t, "b@x.com")
	rec = ev.do(t, http.MethodPost, "/api/bookings", token2, map[string]any{
		"room_id": roomID, "check_in_date": "2024-01-12", "check_out_date": "2024-01-20",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("overlap: status %d, want 409", rec.Code)
	}

	// Back-to-back stays share a turnover day and are fine.
	rec = ev.do(t, http.MethodPost, "/api/bookings", token2, map[string]any{
		"room_id": roomID, "check_in_date": "2024-01-15", "check_out_date": "2024-01-18",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("adjacent: status %d, want 201", rec.Code)
	}
}

func TestListBookingsOwnerOnly(t *testing.T) {
	ev := newEnv(t)
	idA, tokenA := ev.signup(t, "a@x.com")
	_, tokenB := ev.signup(t, "b@x.com")
	roomID := ev.seedRoom(t, "Suite", 100000)

	rec := ev.do(t, http.MethodPost, "/api/bookings", tokenA, map[string]any{
		"room_id": roomID, "check_in_date": "2024-01-01", "check_out_date": "2024-01-02",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d", rec.Code)
	}

	path := "/api/bookings/user/" + itoa(idA)
	rec = ev.do(t, http.MethodGet, path, tokenA, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("own list: status %d", rec.Code)
	}
	var list []map[string]any
	mustUnmarshal(t, rec.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Fatalf("want 1 booking, got %d", len(list))
	}

	// A token for user B never yields user A's bookings.
	rec = ev.do(t, http.MethodGet, path, tokenB, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("cross-user list: status %d, want 403", rec.Code)
	}
}
