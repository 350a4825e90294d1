package model

import "time"

// Booking statuses.  A booking starts out pending and becomes confirmed
// when a payment is processed against it.  No other transitions exist.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking records a user's reservation of one room for a date range.
// TotalAmountCents is nights × the room's nightly price, computed once at
// creation and frozen thereafter.
//
// Fields:
//
//	ID               – primary key identifier.
//	UserID           – user who made the booking.
//	RoomID           – room being booked.
//	CheckInDate      – arrival date (date only, UTC).
//	CheckOutDate     – departure date (date only, UTC).
//	TotalAmountCents – frozen total price in cents.
//	Status           – pending | confirmed | cancelled.
//	SpecialRequests  – optional free text from the guest.
//	CreatedAt        – creation timestamp.
//	UpdatedAt        – last update timestamp.
type Booking struct {
	ID               uint64    // bookings.id
	UserID           uint64    // bookings.user_id
	RoomID           uint64    // bookings.room_id
	CheckInDate      time.Time // bookings.check_in_date
	CheckOutDate     time.Time // bookings.check_out_date
	TotalAmountCents int64     // bookings.total_amount_cents
	Status           string    // bookings.status
	SpecialRequests  *string   // bookings.special_requests (nullable)
	CreatedAt        time.Time // bookings.created_at
	UpdatedAt        time.Time // bookings.updated_at

	// RoomName is populated by queries that join rooms for display; it is
	// not a column of the bookings table.
	RoomName string
}
