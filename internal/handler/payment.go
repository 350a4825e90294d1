package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peirisgrand/resort-api/internal/model"
	"github.com/peirisgrand/resort-api/internal/queue"
	"github.com/peirisgrand/resort-api/internal/repository"
	queue_publisher "github.com/peirisgrand/resort-api/internal/service"
)

// PaymentHandler records payments against bookings.  There is no gateway
// behind this endpoint: an accepted payment is stored as completed and the
// parent booking flips to confirmed in the same transaction.
type PaymentHandler struct {
	Payments *repository.PaymentRepo
	Bookings *repository.BookingRepo

	// Publish lets tests stub out the broker; nil disables publishing.
	Publish func(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

func NewPaymentHandler(p *repository.PaymentRepo, b *repository.BookingRepo) *PaymentHandler {
	if p == nil || b == nil {
		panic("nil repository passed to NewPaymentHandler")
	}
	return &PaymentHandler{Payments: p, Bookings: b, Publish: queue_publisher.PublishBookingConfirmed}
}

type processPaymentReq struct {
	BookingID     uint64  `json:"booking_id"`
	AmountCents   int64   `json:"amount_cents"`
	PaymentMethod string  `json:"payment_method"`
	TransactionID *string `json:"transaction_id"`
}

type paymentPart struct {
	ID            uint64     `json:"id"`
	BookingID     uint64     `json:"booking_id"`
	AmountCents   int64      `json:"amount_cents"`
	PaymentMethod string     `json:"payment_method"`
	TransactionID *string    `json:"transaction_id"`
	Status        string     `json:"status"`
	ProcessedAt   *time.Time `json:"processed_at"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Process handles POST /api/payments.  A booking that does not exist or
// belongs to someone else yields the same 404, so callers cannot probe for
// other users' booking ids.  The amount is recorded as supplied; partial
// payments are allowed.
func (h *PaymentHandler) Process(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req processPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BookingID == 0 || req.PaymentMethod == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking_id and payment_method required"})
	}
	if req.AmountCents <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount_cents must be positive"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	booking, err := h.Bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if err == repository.ErrBookingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if booking.UserID != userID {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}

	now := time.Now().UTC()
	p := model.Payment{
		BookingID:     booking.ID,
		AmountCents:   req.AmountCents,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Status:        model.PaymentStatusCompleted,
		ProcessedAt:   &now,
	}

	// Payment row and booking status change commit or roll back together.
	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin transaction failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	paymentID, err := h.Payments.CreateTx(ctx, tx, p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create payment failed"})
	}
	if err := h.Bookings.UpdateStatusTx(ctx, tx, booking.ID, model.BookingStatusConfirmed); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "confirm booking failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true

	created, err := h.Payments.GetByID(ctx, paymentID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load payment failed"})
	}

	// Best effort: a broker outage must never fail a recorded payment.
	if h.Publish != nil {
		ev := queue.BookingConfirmedEvent{
			BookingID:        booking.ID,
			UserID:           booking.UserID,
			RoomID:           booking.RoomID,
			CheckInDate:      booking.CheckInDate.Format(dateLayout),
			CheckOutDate:     booking.CheckOutDate.Format(dateLayout),
			TotalAmountCents: booking.TotalAmountCents,
			PaymentID:        paymentID,
			AmountCents:      req.AmountCents,
			ConfirmedAt:      now.Format(time.RFC3339),
		}
		_ = h.Publish(ctx, ev)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Payment processed successfully",
		"payment": paymentPart{
			ID:            created.ID,
			BookingID:     created.BookingID,
			AmountCents:   created.AmountCents,
			PaymentMethod: created.PaymentMethod,
			TransactionID: created.TransactionID,
			Status:        created.Status,
			ProcessedAt:   created.ProcessedAt,
			CreatedAt:     created.CreatedAt,
		},
	})
}
