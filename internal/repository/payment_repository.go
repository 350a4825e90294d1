package repository

import (
	"context"
	"database/sql"

	"github.com/peirisgrand/resort-api/internal/model"
)

type PaymentRepo struct{ DB *sql.DB }

func NewPaymentRepo(db *sql.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

// CreateTx inserts a payment inside the caller's transaction and returns its
// ID.  The payment handler pairs this with BookingRepo.UpdateStatusTx so a
// payment row and the booking's status change commit together.
func (r *PaymentRepo) CreateTx(ctx context.Context, tx *sql.Tx, p model.Payment) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO payments (booking_id,amount_cents,payment_method,transaction_id,status,processed_at)
		 VALUES (?,?,?,?,?,?)`,
		p.BookingID, p.AmountCents, p.PaymentMethod, nullableStr(p.TransactionID), p.Status, p.ProcessedAt)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches one payment row.
func (r *PaymentRepo) GetByID(ctx context.Context, id uint64) (model.Payment, error) {
	var p model.Payment
	var txnID sql.NullString
	var processed sql.NullTime
	err := r.DB.QueryRowContext(ctx,
		`SELECT id,booking_id,amount_cents,payment_method,transaction_id,status,processed_at,created_at
		 FROM payments WHERE id=? LIMIT 1`, id).
		Scan(&p.ID, &p.BookingID, &p.AmountCents, &p.PaymentMethod, &txnID, &p.Status, &processed, &p.CreatedAt)
	if err != nil {
		return model.Payment{}, err
	}
	if txnID.Valid {
		p.TransactionID = &txnID.String
	}
	if processed.Valid {
		p.ProcessedAt = &processed.Time
	}
	return p, nil
}
