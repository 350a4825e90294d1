package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peirisgrand/resort-api/internal/model"
	"github.com/peirisgrand/resort-api/internal/repository"
)

// dateLayout is the wire format for calendar dates: ISO dates without time.
const dateLayout = "2006-01-02"

// BookingHandler serves booking creation and per-user listing.  All methods
// assume JWT authentication has run; the caller identity comes from the
// token subject, never from the request body.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Rooms    *repository.RoomRepo
}

func NewBookingHandler(b *repository.BookingRepo, r *repository.RoomRepo) *BookingHandler {
	if b == nil || r == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b, Rooms: r}
}

type createBookingReq struct {
	RoomID          uint64  `json:"room_id"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	SpecialRequests *string `json:"special_requests"`
}

type bookingPart struct {
	ID               uint64    `json:"id"`
	UserID           uint64    `json:"user_id"`
	RoomID           uint64    `json:"room_id"`
	RoomName         string    `json:"room_name"`
	CheckInDate      string    `json:"check_in_date"`
	CheckOutDate     string    `json:"check_out_date"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	Status           string    `json:"status"`
	SpecialRequests  *string   `json:"special_requests"`
	CreatedAt        time.Time `json:"created_at"`
}

func publicBooking(b model.Booking) bookingPart {
	return bookingPart{
		ID:               b.ID,
		UserID:           b.UserID,
		RoomID:           b.RoomID,
		RoomName:         b.RoomName,
		CheckInDate:      b.CheckInDate.Format(dateLayout),
		CheckOutDate:     b.CheckOutDate.Format(dateLayout),
		TotalAmountCents: b.TotalAmountCents,
		Status:           b.Status,
		SpecialRequests:  b.SpecialRequests,
		CreatedAt:        b.CreatedAt,
	}
}

// Create handles POST /api/bookings.  The total is nights × the room's
// nightly price, computed here and frozen on the row.  Check-out must fall
// strictly after check-in, and the room must be free for the whole range.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RoomID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id required"})
	}
	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in_date must be YYYY-MM-DD"})
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out_date must be YYYY-MM-DD"})
	}
	if !checkOut.After(checkIn) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out_date must be after check_in_date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	overlap, err := h.Bookings.Overlaps(ctx, room.ID, checkIn, checkOut)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if overlap {
		return c.JSON(http.StatusConflict, echo.Map{"error": "room is already booked for those dates"})
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	b := model.Booking{
		UserID:           userID,
		RoomID:           room.ID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		TotalAmountCents: nights * room.PricePerNightCents,
		Status:           model.BookingStatusPending,
		SpecialRequests:  req.SpecialRequests,
	}
	id, err := h.Bookings.Create(ctx, b)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	created, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load booking failed"})
	}
	created.RoomName = room.Name

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Booking created successfully",
		"booking": publicBooking(created),
	})
}

// ListByUser handles GET /api/bookings/user/:id.  Owner-only: the token
// subject must match the path id.
func (h *BookingHandler) ListByUser(c echo.Context) error {
	callerID, err := authUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	targetID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if callerID != targetID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, targetID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]bookingPart, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, publicBooking(b))
	}
	return c.JSON(http.StatusOK, out)
}
