package main

import (
	"log"

	"productpulse/internal/config"
	"productpulse/internal/database"
	"productpulse/internal/handlers"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Database connection failed: ", err)
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		log.Fatal("Schema setup failed: ", err)
	}

	router := handlers.NewRouter(db, cfg)

	log.Println("ProductPulse API starting on :" + cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
