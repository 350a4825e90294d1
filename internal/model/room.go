package model

import "time"

// Room is a bookable unit of inventory from the `rooms` table.  Prices are
// stored as integer cents per night.  Amenities are kept as a single
// comma-separated string in the database; handlers split it into an ordered
// list for responses.
type Room struct {
	ID                 uint64    // rooms.id
	Name               string    // rooms.name
	Description        string    // rooms.description
	RoomType           string    // rooms.room_type
	PricePerNightCents int64     // rooms.price_per_night_cents
	MaxOccupancy       int       // rooms.max_occupancy
	Amenities          string    // rooms.amenities ("A, B, C")
	ImageURL           string    // rooms.image_url
	IsAvailable        bool      // rooms.is_available
	CreatedAt          time.Time // rooms.created_at
	UpdatedAt          time.Time // rooms.updated_at
}
