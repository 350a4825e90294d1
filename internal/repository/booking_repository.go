package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/peirisgrand/resort-api/internal/model"
)

type BookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can open transactions
// spanning bookings and payments.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// Create inserts a pending booking and returns its ID.  The caller computes
// and freezes the total before calling.
func (r *BookingRepo) Create(ctx context.Context, b model.Booking) (uint64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO bookings (user_id,room_id,check_in_date,check_out_date,total_amount_cents,status,special_requests)
		 VALUES (?,?,?,?,?,?,?)`,
		b.UserID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.TotalAmountCents, b.Status, nullableStr(b.SpecialRequests))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches one booking (without room join) or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id,user_id,room_id,check_in_date,check_out_date,total_amount_cents,status,special_requests,created_at,updated_at
		 FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row, false)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// ListByUser returns all bookings owned by a user, joined with the room name
// for display.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT b.id,b.user_id,b.room_id,b.check_in_date,b.check_out_date,b.total_amount_cents,b.status,b.special_requests,b.created_at,b.updated_at,r.name
		 FROM bookings b JOIN rooms r ON r.id = b.room_id
		 WHERE b.user_id=?`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows, true)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Overlaps reports whether the room already has a non-cancelled booking
// whose date range intersects [checkIn, checkOut).  Two ranges intersect
// when each starts before the other ends.
func (r *BookingRepo) Overlaps(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE room_id=? AND status <> ? AND check_in_date < ? AND check_out_date > ?`,
		roomID, model.BookingStatusCancelled, checkOut, checkIn).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateStatusTx flips a booking's status inside the caller's transaction.
func (r *BookingRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE bookings SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?", status, id)
	return err
}

func scanBooking(s scanner, withRoomName bool) (model.Booking, error) {
	var b model.Booking
	var requests sql.NullString
	dest := []any{&b.ID, &b.UserID, &b.RoomID, &b.CheckInDate, &b.CheckOutDate,
		&b.TotalAmountCents, &b.Status, &requests, &b.CreatedAt, &b.UpdatedAt}
	if withRoomName {
		dest = append(dest, &b.RoomName)
	}
	if err := s.Scan(dest...); err != nil {
		return model.Booking{}, err
	}
	if requests.Valid {
		b.SpecialRequests = &requests.String
	}
	return b, nil
}
