package handler_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/peirisgrand/resort-api/internal/config"
	"github.com/peirisgrand/resort-api/internal/handler"
	"github.com/peirisgrand/resort-api/internal/model"
	"github.com/peirisgrand/resort-api/internal/queue"
	"github.com/peirisgrand/resort-api/internal/repository"
	"github.com/peirisgrand/resort-api/internal/router"
)

// testSchema mirrors the MySQL schema in sqlite terms so the whole HTTP
// stack can run against an in-memory store.
const testSchema = `
CREATE TABLE users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	phone         TEXT,
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE rooms (
	id                    INTEGER PRIMARY KEY AUTOINCREMENT,
	name                  TEXT NOT NULL,
	description           TEXT,
	room_type             TEXT NOT NULL,
	price_per_night_cents INTEGER NOT NULL,
	max_occupancy         INTEGER NOT NULL,
	amenities             TEXT,
	image_url             TEXT,
	is_available          INTEGER NOT NULL DEFAULT 1,
	created_at            DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at            DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE bookings (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id            INTEGER NOT NULL,
	room_id            INTEGER NOT NULL,
	check_in_date      DATE NOT NULL,
	check_out_date     DATE NOT NULL,
	total_amount_cents INTEGER NOT NULL,
	status             TEXT NOT NULL DEFAULT 'pending',
	special_requests   TEXT,
	created_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE payments (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	booking_id     INTEGER NOT NULL,
	amount_cents   INTEGER NOT NULL,
	payment_method TEXT NOT NULL,
	transaction_id TEXT,
	status         TEXT NOT NULL DEFAULT 'pending',
	processed_at   DATETIME,
	created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE about_us (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	title      TEXT NOT NULL,
	content    TEXT NOT NULL,
	section    TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// env is a fully wired API over an in-memory database.  The payment
// handler's broker publish is stubbed so tests can assert on emitted events
// or force a broker failure via publishErr.
type env struct {
	e          *echo.Echo
	db         *sql.DB
	users      *repository.UserRepo
	rooms      *repository.RoomRepo
	bookings   *repository.BookingRepo
	cfg        config.Config
	events     []queue.BookingConfirmedEvent
	publishErr error
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// One connection, or each pooled conn would get its own :memory: DB.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.Exec(testSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}

	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLHours: 24,
		BcryptCost:     bcrypt.MinCost,
	}

	ev := &env{
		db:       db,
		users:    repository.NewUserRepo(db),
		rooms:    repository.NewRoomRepo(db),
		bookings: repository.NewBookingRepo(db),
		cfg:      cfg,
	}

	paymentH := handler.NewPaymentHandler(repository.NewPaymentRepo(db), ev.bookings)
	paymentH.Publish = func(ctx context.Context, e queue.BookingConfirmedEvent) error {
		if ev.publishErr != nil {
			return ev.publishErr
		}
		ev.events = append(ev.events, e)
		return nil
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, ev.users))
	router.RegisterPublic(e, handler.NewRoomHandler(ev.rooms), handler.NewAboutHandler(repository.NewAboutRepo(db)))
	router.RegisterProtected(e, cfg.JWTSecret, handler.NewBookingHandler(ev.bookings, ev.rooms), handler.NewProfileHandler(ev.users), paymentH)
	ev.e = e
	return ev
}

// do performs a request against the wired Echo instance.  A non-empty token
// is sent as a bearer credential; body is JSON-encoded when non-nil.
func (ev *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ev.e.ServeHTTP(rec, req)
	return rec
}

func itoa(n uint64) string { return strconv.FormatUint(n, 10) }

// mustUnmarshal decodes raw JSON into out or fails the test.
func mustUnmarshal(t *testing.T, raw []byte, out any) {
	t.Helper()
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode %q: %v", raw, err)
	}
}

// decode unmarshals a recorded JSON body into a generic map.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// signup registers a user through the API and returns its id and token.
func (ev *env) signup(t *testing.T, email string) (uint64, string) {
	t.Helper()
	rec := ev.do(t, http.MethodPost, "/api/auth/signup", "", map[string]any{
		"email":      email,
		"password":   "pw",
		"first_name": "John",
		"last_name":  "Doe",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
	body := decode(t, rec)
	user := body["user"].(map[string]any)
	return uint64(user["id"].(float64)), body["access_token"].(string)
}

// seedRoom inserts a room directly through the repository.
func (ev *env) seedRoom(t *testing.T, name string, priceCents int64) uint64 {
	t.Helper()
	id, err := ev.rooms.Create(context.Background(), model.Room{
		Name:               name,
		RoomType:           "Suite",
		PricePerNightCents: priceCents,
		MaxOccupancy:       2,
		Amenities:          "Ocean View, WiFi",
		IsAvailable:        true,
	})
	if err != nil {
		t.Fatalf("seed room: %v", err)
	}
	return id
}
