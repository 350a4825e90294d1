// This file defines the unauthenticated room catalog handlers.  Listing and
// detail are read-only; inventory is only ever written by the seeder.

package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/peirisgrand/resort-api/internal/model"
	"github.com/peirisgrand/resort-api/internal/repository"
)

// RoomHandler serves the public room catalog.
type RoomHandler struct {
	Rooms *repository.RoomRepo
}

func NewRoomHandler(r *repository.RoomRepo) *RoomHandler {
	return &RoomHandler{Rooms: r}
}

// roomPart is the public projection of a room.  Amenities become an ordered
// list, split from the stored comma-separated string.
type roomPart struct {
	ID                 uint64   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	RoomType           string   `json:"room_type"`
	PricePerNightCents int64    `json:"price_per_night_cents"`
	MaxOccupancy       int      `json:"max_occupancy"`
	Amenities          []string `json:"amenities"`
	ImageURL           string   `json:"image_url"`
	IsAvailable        bool     `json:"is_available"`
}

func publicRoom(rm model.Room) roomPart {
	amenities := []string{}
	if rm.Amenities != "" {
		amenities = strings.Split(rm.Amenities, ", ")
	}
	return roomPart{
		ID:                 rm.ID,
		Name:               rm.Name,
		Description:        rm.Description,
		RoomType:           rm.RoomType,
		PricePerNightCents: rm.PricePerNightCents,
		MaxOccupancy:       rm.MaxOccupancy,
		Amenities:          amenities,
		ImageURL:           rm.ImageURL,
		IsAvailable:        rm.IsAvailable,
	}
}

// List handles GET /api/rooms: every room currently flagged available.
func (h *RoomHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, err := h.Rooms.ListAvailable(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]roomPart, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, publicRoom(rm))
	}
	return c.JSON(http.StatusOK, out)
}

// Get handles GET /api/rooms/:id.
func (h *RoomHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, publicRoom(rm))
}
