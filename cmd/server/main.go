package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/BrunaRochaL/violet-view/internal/config"
	"github.com/BrunaRochaL/violet-view/internal/database"
	"github.com/BrunaRochaL/violet-view/internal/gateway"
	"github.com/BrunaRochaL/violet-view/internal/handler"
	"github.com/BrunaRochaL/violet-view/internal/middleware"
	"github.com/BrunaRochaL/violet-view/internal/queue"
	"github.com/BrunaRochaL/violet-view/internal/repository/mongodb"
	"github.com/BrunaRochaL/violet-view/internal/router"
)

func main() {
	cfg := config.Load()

	client, db, err := database.Open(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	users := mongodb.NewUserRepo(db)
	movies := mongodb.NewMovieRepo(db)
	audits := mongodb.NewAuditRepo(db)
	omdb := gateway.NewOMDbClient(cfg.OMDbBaseURL, cfg.OMDbAPIKey)

	e := echo.New()
	e.Use(echomw.Recover())
	e.Use(echomw.CORS()) // the front end runs on a different origin

	// Redis is optional: without it the limiter passes everything through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}
	e.Use(middleware.BearerIdentity(cfg.JWTSecret))
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e,
		handler.NewAuthHandler(cfg, users, audits),
		handler.NewUserHandler(cfg, users),
		handler.NewMovieHandler(movies),
		handler.NewSearchHandler(omdb, audits),
		handler.NewAuditHandler(audits),
	)

	// Mirrors recorded audit events into logs/audit.log; no-op without a broker.
	go queue.StartAuditConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
