// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a payment confirms a booking.  It
// carries enough context for downstream consumers to log or notify without
// querying the primary database.
type BookingConfirmedEvent struct {
	BookingID        uint64 `json:"booking_id"`
	UserID           uint64 `json:"user_id"`
	RoomID           uint64 `json:"room_id"`
	RoomName         string `json:"room_name,omitempty"`
	CheckInDate      string `json:"check_in_date"`
	CheckOutDate     string `json:"check_out_date"`
	TotalAmountCents int64  `json:"total_amount_cents"`
	PaymentID        uint64 `json:"payment_id"`
	AmountCents      int64  `json:"amount_cents"`
	ConfirmedAt      string `json:"confirmed_at"`
}
