package main

import (
	"log"

	"github.com/vistatrip/listings-backend-go/internal/api"
	"github.com/vistatrip/listings-backend-go/internal/config"
	"github.com/vistatrip/listings-backend-go/internal/database"
)

func main() {
	cfg := config.Load()

	dbConfig := database.Config{
		Path: cfg.DBPath,
	}
	if err := database.Init(dbConfig); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	if err := database.Seed(database.GetDB()); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	router := api.SetupRouter(cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
