package model

import "time"

// Payment statuses.  The processing handler has no gateway behind it and
// records every accepted payment as completed.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Payment is a row of the `payments` table, belonging to one booking.
type Payment struct {
	ID            uint64     // payments.id
	BookingID     uint64     // payments.booking_id
	AmountCents   int64      // payments.amount_cents
	PaymentMethod string     // payments.payment_method
	TransactionID *string    // payments.transaction_id (nullable)
	Status        string     // payments.status
	ProcessedAt   *time.Time // payments.processed_at (nullable)
	CreatedAt     time.Time  // payments.created_at
}
