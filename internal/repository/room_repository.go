package repository

import (
	"context"
	"database/sql"

	"github.com/peirisgrand/resort-api/internal/model"
)

type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

const roomColumns = "id,name,description,room_type,price_per_night_cents,max_occupancy,amenities,image_url,is_available,created_at,updated_at"

// ListAvailable returns all rooms currently flagged available, in store
// order.
func (r *RoomRepo) ListAvailable(ctx context.Context) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE is_available=1")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Room, 0)
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// GetByID fetches one room or ErrRoomNotFound.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE id=? LIMIT 1", id)
	rm, err := scanRoom(row)
	if err == sql.ErrNoRows {
		return model.Room{}, ErrRoomNotFound
	}
	return rm, err
}

// Create inserts a room and returns its ID.  Only the seeder uses this; the
// public surface never mutates inventory.
func (r *RoomRepo) Create(ctx context.Context, rm model.Room) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO rooms (name,description,room_type,price_per_night_cents,max_occupancy,amenities,image_url,is_available)
		 VALUES (?,?,?,?,?,?,?,?)`,
		rm.Name, rm.Description, rm.RoomType, rm.PricePerNightCents, rm.MaxOccupancy, rm.Amenities, rm.ImageURL, rm.IsAvailable)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanRoom(s scanner) (model.Room, error) {
	var rm model.Room
	var desc, amenities, imageURL sql.NullString
	err := s.Scan(&rm.ID, &rm.Name, &desc, &rm.RoomType, &rm.PricePerNightCents,
		&rm.MaxOccupancy, &amenities, &imageURL, &rm.IsAvailable, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		return model.Room{}, err
	}
	rm.Description = desc.String
	rm.Amenities = amenities.String
	rm.ImageURL = imageURL.String
	return rm, nil
}
