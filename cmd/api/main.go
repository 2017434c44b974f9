package main

import (
	"log"

	"sentinel-backend/internal/bootstrap"
	"sentinel-backend/internal/shared/config"
	"sentinel-backend/internal/shared/server"
)

// @title        Sensitive Information Detection API
// @version      1.0.0
// @description  Enterprise document sensitivity analysis backed by an external AI provider.
// @BasePath     /api
func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
