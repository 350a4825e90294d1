// Command seed wipes and repopulates the database with demo data: two
// guests, six rooms, three about sections, two bookings and two payments,
// one completed and one pending.  Run it against a dev database only.
package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/peirisgrand/resort-api/internal/config"
	"github.com/peirisgrand/resort-api/internal/database"
	"github.com/peirisgrand/resort-api/internal/model"
	"github.com/peirisgrand/resort-api/internal/repository"
)

type seedRoom struct {
	name, desc, roomType string
	priceCents           int64
	occupancy            int
	amenities, imageURL  string
}

var seedRooms = []seedRoom{
	{"Ocean View Suite", "Spacious suite with panoramic ocean views, private balcony, and premium amenities. Perfect for romantic getaways.", "Suite", 2500000, 2, "Ocean View, Private Balcony, King Bed, Mini Bar, Air Conditioning, WiFi, Room Service", "https://images.pexels.com/photos/271624/pexels-photo-271624.jpeg"},
	{"Deluxe Beach Room", "Comfortable room with direct beach access and modern furnishings. Ideal for couples and solo travelers.", "Deluxe", 1800000, 2, "Beach Access, Queen Bed, Air Conditioning, WiFi, Mini Fridge, Coffee Maker", "https://images.pexels.com/photos/164595/pexels-photo-164595.jpeg"},
	{"Family Villa", "Spacious villa perfect for families with separate bedrooms and a private garden area.", "Villa", 3500000, 6, "Private Garden, Two Bedrooms, Living Room, Kitchen, Air Conditioning, WiFi, Parking", "https://images.pexels.com/photos/1743229/pexels-photo-1743229.jpeg"},
	{"Standard Twin Room", "Comfortable twin room with garden view and essential amenities for budget-conscious travelers.", "Standard", 1200000, 2, "Garden View, Twin Beds, Air Conditioning, WiFi, Desk", "https://images.pexels.com/photos/271643/pexels-photo-271643.jpeg"},
	{"Presidential Suite", "Luxurious presidential suite with premium services and unmatched comfort. The ultimate indulgence.", "Presidential", 5000000, 4, "Ocean View, Private Balcony, Jacuzzi, King Bed, Living Room, Butler Service, Mini Bar, Air Conditioning, WiFi", "https://images.pexels.com/photos/1579253/pexels-photo-1579253.jpeg"},
	{"Beachfront Bungalow", "Charming bungalow right on the beach with traditional Sri Lankan architecture and modern comforts.", "Bungalow", 2800000, 3, "Beachfront, Traditional Design, Queen Bed, Air Conditioning, WiFi, Private Entrance", "https://images.pexels.com/photos/1134176/pexels-photo-1134176.jpeg"},
}

var seedAbout = [][3]string{
	{"About Peiris Grand Resort", "Peiris Grand Resort Panadura is a premium beachfront destination offering a peaceful escape with a touch of elegance. Located in the scenic coastal town of Panadura, Sri Lanka.", "main"},
	{"Our Mission", "To deliver memorable guest experiences through genuine service, comfort, and innovation, while celebrating Sri Lankan hospitality and culture.", "mission"},
	{"Our Vision", "To be the leading resort on Sri Lanka's western coast, known for excellence in service, sustainable practices, and unforgettable experiences.", "vision"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	// Children before parents, so the foreign keys do not object.
	for _, table := range []string{"payments", "bookings", "about_us", "rooms", "users"} {
		if _, err := db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			log.Fatalf("wipe %s: %v", table, err)
		}
	}

	users := repository.NewUserRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	payments := repository.NewPaymentRepo(db)
	about := repository.NewAboutRepo(db)

	phone1 := "+94771234567"
	u1, err := users.Create(ctx, "test@peirisresort.com", "12345", "John", "Doe", &phone1, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}
	phone2 := "+94761234568"
	if _, err := users.Create(ctx, "admin@peirisresort.com", "12345", "Admin", "User", &phone2, cfg.BcryptCost); err != nil {
		log.Fatalf("seed user: %v", err)
	}

	roomIDs := make([]uint64, 0, len(seedRooms))
	for _, sr := range seedRooms {
		id, err := rooms.Create(ctx, model.Room{
			Name:               sr.name,
			Description:        sr.desc,
			RoomType:           sr.roomType,
			PricePerNightCents: sr.priceCents,
			MaxOccupancy:       sr.occupancy,
			Amenities:          sr.amenities,
			ImageURL:           sr.imageURL,
			IsAvailable:        true,
		})
		if err != nil {
			log.Fatalf("seed room %q: %v", sr.name, err)
		}
		roomIDs = append(roomIDs, id)
	}

	for _, a := range seedAbout {
		if _, err := about.Create(ctx, a[0], a[1], a[2]); err != nil {
			log.Fatalf("seed about %q: %v", a[0], err)
		}
	}

	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	req1 := "Late check-in requested"
	b1, err := bookings.Create(ctx, model.Booking{
		UserID: u1, RoomID: roomIDs[0],
		CheckInDate: date(2024, time.February, 15), CheckOutDate: date(2024, time.February, 18),
		TotalAmountCents: 3 * seedRooms[0].priceCents,
		Status:           model.BookingStatusConfirmed,
		SpecialRequests:  &req1,
	})
	if err != nil {
		log.Fatalf("seed booking: %v", err)
	}
	req2 := "Ground floor room preferred"
	b2, err := bookings.Create(ctx, model.Booking{
		UserID: u1, RoomID: roomIDs[1],
		CheckInDate: date(2024, time.March, 1), CheckOutDate: date(2024, time.March, 3),
		TotalAmountCents: 2 * seedRooms[1].priceCents,
		Status:           model.BookingStatusPending,
		SpecialRequests:  &req2,
	})
	if err != nil {
		log.Fatalf("seed booking: %v", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Fatalf("seed payment: %v", err)
	}
	now := time.Now().UTC()
	txn := "TXN123456789"
	if _, err := payments.CreateTx(ctx, tx, model.Payment{
		BookingID:     b1,
		AmountCents:   3 * seedRooms[0].priceCents,
		PaymentMethod: "Credit Card",
		TransactionID: &txn,
		Status:        model.PaymentStatusCompleted,
		ProcessedAt:   &now,
	}); err != nil {
		_ = tx.Rollback()
		log.Fatalf("seed payment: %v", err)
	}
	// The pending booking has a bank transfer still awaiting processing.
	txn2 := "TXN987654321"
	if _, err := payments.CreateTx(ctx, tx, model.Payment{
		BookingID:     b2,
		AmountCents:   2 * seedRooms[1].priceCents,
		PaymentMethod: "Bank Transfer",
		TransactionID: &txn2,
		Status:        model.PaymentStatusPending,
	}); err != nil {
		_ = tx.Rollback()
		log.Fatalf("seed payment: %v", err)
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("seed payment: %v", err)
	}

	log.Print("seed complete")
}
