package database

import (
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// Seed populates one sample user, an active API key, a product with one
// review, and a trend. Returns the generated API key so the operator can
// start calling the query endpoints. One-time bootstrap, not idempotent.
func Seed(db *sql.DB) (string, error) {
	var userID int
	err := db.QueryRow(
		`INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id`,
		"test@example.com",
		hashPassword("testpass"),
	).Scan(&userID)
	if err != nil {
		return "", fmt.Errorf("seed user: %w", err)
	}

	apiKey, err := generateAPIKey()
	if err != nil {
		return "", err
	}
	if _, err := db.Exec(
		`INSERT INTO api_keys (user_id, key, active) VALUES ($1, $2, TRUE)`,
		userID,
		apiKey,
	); err != nil {
		return "", fmt.Errorf("seed api key: %w", err)
	}

	var productID int
	err = db.QueryRow(
		`INSERT INTO products (name, url, price, currency, last_seen)
		 VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP) RETURNING id`,
		"Sample Product",
		"https://example.com/product",
		"19.99",
		"USD",
	).Scan(&productID)
	if err != nil {
		return "", fmt.Errorf("seed product: %w", err)
	}

	if _, err := db.Exec(
		`INSERT INTO reviews (product_id, review_text, rating, review_date, source)
		 VALUES ($1, $2, $3, CURRENT_TIMESTAMP, $4)`,
		productID,
		"Great product!",
		"5.0",
		"example.com",
	); err != nil {
		return "", fmt.Errorf("seed review: %w", err)
	}

	if _, err := db.Exec(
		`INSERT INTO trends (trend_type, description, data)
		 VALUES ($1, $2, $3)`,
		"price_drop",
		"Sample price drop trend",
		fmt.Sprintf(`{"product_id": %d}`, productID),
	); err != nil {
		return "", fmt.Errorf("seed trend: %w", err)
	}

	return apiKey, nil
}

// generateAPIKey returns 64 hex characters, the upper bound of the accepted
// key shape.
func generateAPIKey() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("generate api key: %w", err)
	}
	return hex.EncodeToString(b[:]), nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
