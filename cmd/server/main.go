package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/peirisgrand/resort-api/internal/config"
	"github.com/peirisgrand/resort-api/internal/database"
	"github.com/peirisgrand/resort-api/internal/handler"
	"github.com/peirisgrand/resort-api/internal/middleware"
	"github.com/peirisgrand/resort-api/internal/queue"
	"github.com/peirisgrand/resort-api/internal/repository"
	"github.com/peirisgrand/resort-api/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureSchema(ctx, db); err != nil {
		cancel()
		log.Fatalf("schema: %v", err)
	}
	cancel()

	// Repositories and handlers
	users := repository.NewUserRepo(db)
	rooms := repository.NewRoomRepo(db)
	bookings := repository.NewBookingRepo(db)
	payments := repository.NewPaymentRepo(db)
	about := repository.NewAboutRepo(db)

	authH := handler.NewAuthHandler(cfg, users)
	roomH := handler.NewRoomHandler(rooms)
	bookingH := handler.NewBookingHandler(bookings, rooms)
	profileH := handler.NewProfileHandler(users)
	paymentH := handler.NewPaymentHandler(payments, bookings)
	aboutH := handler.NewAboutHandler(about)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	// Redis-backed rate limiting and response caching; both degrade to
	// pass-through when Redis is down.  The limiter is attached per group
	// rather than globally: on protected routes it runs after JWTAuth so
	// user-keyed strategies see the token subject.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable: cache and rate limit disabled")
	}
	rlMW := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e) // hello and health stay unthrottled
	router.RegisterAuth(e, authH, rlMW)
	router.RegisterPublic(e, roomH, aboutH, rlMW, cacheMW)
	router.RegisterProtected(e, cfg.JWTSecret, bookingH, profileH, paymentH, rlMW)

	// Background consumer mirrors confirmed bookings into logs/booking.log.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
