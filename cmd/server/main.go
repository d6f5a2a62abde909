package main

import (
	"database/sql"
	"log"
	"net/http"

	"golang.org/x/time/rate"

	"shopvana-backend/internal/cart"
	"shopvana-backend/internal/config"
	"shopvana-backend/internal/db"
	"shopvana-backend/internal/handler"
	"shopvana-backend/internal/logger"
	"shopvana-backend/internal/metrics"
	"shopvana-backend/internal/middleware"
	"shopvana-backend/internal/option"
	"shopvana-backend/internal/product"
	"shopvana-backend/internal/session"
)

// Seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = func(addr string, h http.Handler) error {
		return http.ListenAndServe(addr, h)
	}
)

func newServer(cfg *config.Config, database *sql.DB) http.Handler {
	sessionRepo := session.NewRepository(database)
	sessionSvc := session.NewService(sessionRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	optionRepo := option.NewRepository(database)
	optionSvc := option.NewService(optionRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, sessionRepo, productRepo, cfg.AssetBaseURL)

	registry := metrics.NewRegistry()

	h := handler.New(sessionSvc, productSvc, optionSvc, cartSvc, registry, cfg.AssetBaseURL)
	limiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	return handler.NewRouter(h, limiter)
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router := newServer(cfg, database)

	log.Printf("🚀 Shopvana API listening on http://localhost:%s/", cfg.AppPort)
	return startServerFunc(":"+cfg.AppPort, router)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
