package handler_test

import (
	"net/http"
	"testing"
)

func TestProfileGetOwnerOnly(t *testing.T) {
	ev := newEnv(t)
	idA, tokenA := ev.signup(t, "a@x.com")
	_, tokenB := ev.signup(t, "b@x.com")

	path := "/api/profile/" + itoa(idA)

	rec := ev.do(t, http.MethodGet, path, tokenA, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("own profile: status %d", rec.Code)
	}
	body := decode(t, rec)
	if body["email"] != "a@x.com" {
		t.Errorf("email=%v", body["email"])
	}
	if _, leaked := body["password_hash"]; leaked {
		t.Error("password hash exposed")
	}

	rec = ev.do(t, http.MethodGet, path, tokenB, nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("cross-user profile: status %d, want 403", rec.Code)
	}

	rec = ev.do(t, http.MethodGet, path, "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d, want 401", rec.Code)
	}
}

func TestProfilePartialUpdate(t *testing.T) {
	ev := newEnv(t)
	id, token := ev.signup(t, "a@x.com")
	path := "/api/profile/" + itoa(id)

	// Only first_name present: the other fields keep their stored values.
	rec := ev.do(t, http.MethodPut, path, token, map[string]any{"first_name": "Jane"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", rec.Code, rec.Body.String())
	}
	user := decode(t, rec)["user"].(map[string]any)
	if user["first_name"] != "Jane" || user["last_name"] != "Doe" {
		t.Errorf("partial update broke fields: %v", user)
	}

	// Phone set in a second call; first_name from the first call survives.
	rec = ev.do(t, http.MethodPut, path, token, map[string]any{"phone": "+123"})
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status %d", rec.Code)
	}
	user = decode(t, rec)["user"].(map[string]any)
	if user["phone"] != "+123" || user["first_name"] != "Jane" {
		t.Errorf("sequential updates lost state: %v", user)
	}
}

func TestProfileUpdateOwnerOnly(t *testing.T) {
	ev := newEnv(t)
	idA, _ := ev.signup(t, "a@x.com")
	_, tokenB := ev.signup(t, "b@x.com")

	rec := ev.do(t, http.MethodPut, "/api/profile/"+itoa(idA), tokenB, map[string]any{"first_name": "Mallory"})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status %d, want 403", rec.Code)
	}
}
