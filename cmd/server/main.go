package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/config"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/database"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/handler"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/queue"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/repository"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/router"
	"github.com/SWELIJ/Elijah-Restaurant-Reservations-monorepo/internal/validate"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	policy, err := validate.NewPolicy(cfg.RestaurantTZ, cfg.ClosedWeekday, cfg.OpenTime, cfg.LastSeatingTime)
	if err != nil {
		log.Fatalf("invalid booking policy: %v", err)
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("schema migration failed: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}

	reservations := repository.NewReservationRepo(db)
	tables := repository.NewTableRepo(db)
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.Register(e, router.Deps{
		Auth:         handler.NewAuthHandler(cfg, users, tokens),
		Reservations: handler.NewReservationHandler(reservations, policy),
		Tables:       handler.NewTableHandler(tables, reservations),
		JWTSecret:    cfg.JWTSecret,
		RateLimit:    config.LoadRateLimitConfig(),
		Cache:        config.LoadCacheConfig(),
		Rdb:          rdb,
	})

	// Lifecycle consumer runs for the life of the process and survives
	// broker outages via its own reconnect loop.
	go func() {
		if err := queue.StartLifecycleConsumer(); err != nil {
			log.Printf("lifecycle consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
