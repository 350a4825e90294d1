// Package repository implements data access over database/sql.  This file
// defines sentinel error values reused across repositories so that handlers
// can map failures onto HTTP status codes without inspecting driver errors.
package repository

import (
	"errors"
	"strings"
)

// ErrEmailExists is returned when inserting a user whose email is already
// taken.  Handlers translate this into the signup conflict response.
var ErrEmailExists = errors.New("email already exists")

// ErrRoomNotFound is returned when a room lookup matches no row.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking lookup matches no row.
var ErrBookingNotFound = errors.New("booking not found")

// isDuplicate reports whether err is a unique-constraint violation.  MySQL
// surfaces error 1062; the sqlite driver used in tests reports a "UNIQUE
// constraint failed" message.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "1062") || strings.Contains(msg, "unique constraint")
}
