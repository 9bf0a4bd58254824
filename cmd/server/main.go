package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv" // .env loading for local development
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/vehicle-registry/internal/auth"
	"github.com/iliyamo/vehicle-registry/internal/config"
	"github.com/iliyamo/vehicle-registry/internal/database"
	"github.com/iliyamo/vehicle-registry/internal/handler"
	"github.com/iliyamo/vehicle-registry/internal/queue"
	"github.com/iliyamo/vehicle-registry/internal/repository"
	"github.com/iliyamo/vehicle-registry/internal/router"
	"github.com/iliyamo/vehicle-registry/internal/service"
)

func main() {
	_ = godotenv.Load() // best effort; env vars win over .env
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	seedHash, err := auth.HashPassword(database.SeedAdminPassword, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("seed hash: %v", err)
	}
	if err := database.SeedAdmin(ctx, db, seedHash); err != nil {
		log.Fatalf("seed: %v", err)
	}

	rdb := config.NewRedisClient() // nil when unreachable; features degrade
	if rdb == nil {
		log.Printf("redis unavailable: rate limiting and response cache disabled")
	}

	admins := repository.NewAdminRepo(db)
	vehicles := repository.NewVehicleRepo(db)

	codec := auth.NewTokenCodec(cfg.JWTSecret, config.TokenTTL)
	authenticator := auth.NewAuthenticator(admins)

	authH := handler.NewAuthHandler(authenticator, codec)
	adminH := handler.NewAdminHandler(admins, cfg.BcryptCost)
	vehicleH := handler.NewVehicleHandler(vehicles, service.NewQueuePublisher(cfg.AMQPURL))

	go queue.StartAuditConsumer(cfg.AMQPURL) // audit trail consumer

	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	router.Register(e, cfg, authH, adminH, vehicleH, codec, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
