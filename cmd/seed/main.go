package main

import (
	"fmt"
	"log"

	"productpulse/internal/config"
	"productpulse/internal/database"
)

// Seeds a sample user, API key, product, review and trend, then prints the
// generated key. Run once against a fresh database.
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

	apiKey, err := database.Seed(db)
	if err != nil {
		log.Fatal("Seeding failed: ", err)
	}

	fmt.Println("Seeded test user (email: test@example.com, password: testpass)")
	fmt.Println("API Key:", apiKey)
}
