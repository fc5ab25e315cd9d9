package database

import (
	"database/sql"
	"fmt"
)

// CreateTables creates all required tables in the database
func CreateTables(db *sql.DB) error {
	if err := createUsersTable(db); err != nil {
		return err
	}
	if err := createAPIKeysTable(db); err != nil {
		return err
	}
	if err := createProductsTable(db); err != nil {
		return err
	}
	if err := createReviewsTable(db); err != nil {
		return err
	}
	return createTrendsTable(db)
}

// createUsersTable creates the users table
func createUsersTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// createAPIKeysTable creates api_keys; keys cascade away with their owner.
func createAPIKeysTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS api_keys (
		id SERIAL PRIMARY KEY,
		user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		key VARCHAR(64) UNIQUE NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create api_keys table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS api_keys_key_active_idx ON api_keys(key) WHERE active = TRUE`); err != nil {
		return fmt.Errorf("ensure api_keys active-key index: %w", err)
	}
	return nil
}

func createProductsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		url TEXT,
		price NUMERIC(10,2) CHECK (price IS NULL OR price >= 0),
		currency VARCHAR(10),
		last_seen TIMESTAMP
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create products table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS products_name_lower_idx ON products(lower(name))`); err != nil {
		return fmt.Errorf("ensure products name index: %w", err)
	}
	return nil
}

func createReviewsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS reviews (
		id SERIAL PRIMARY KEY,
		product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		review_text TEXT,
		rating NUMERIC(2,1) CHECK (rating IS NULL OR (rating >= 0 AND rating <= 5)),
		review_date TIMESTAMP,
		source VARCHAR(255)
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create reviews table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS reviews_product_idx ON reviews(product_id, id)`); err != nil {
		return fmt.Errorf("ensure reviews product index: %w", err)
	}
	return nil
}

func createTrendsTable(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS trends (
		id SERIAL PRIMARY KEY,
		trend_type VARCHAR(50),
		description TEXT,
		data JSONB,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("create trends table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS trends_type_idx ON trends(trend_type, id)`); err != nil {
		return fmt.Errorf("ensure trends type index: %w", err)
	}
	return nil
}
