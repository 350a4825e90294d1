package repository_test

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// testSchema mirrors the MySQL schema in sqlite terms.  Declared column
// types matter: the sqlite driver converts DATE/DATETIME columns into
// time.Time the way parseTime=true does for MySQL.
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

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	// One connection, or each pooled conn would get its own :memory: DB.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.ExecContext(context.Background(), testSchema); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return db
}
