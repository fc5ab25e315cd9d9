package models

import (
	"time"
)

// User owns API keys. The query API never exposes users directly.
type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// APIKey is an opaque bearer token stored server-side with an active flag.
type APIKey struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Key       string    `json:"-" db:"key"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Product struct {
	ID       int        `json:"id" db:"id"`
	Name     string     `json:"name" db:"name"`
	URL      *string    `json:"url,omitempty" db:"url"`
	Price    *Decimal   `json:"price" db:"price"`
	Currency *string    `json:"currency" db:"currency"`
	LastSeen *time.Time `json:"last_seen,omitempty" db:"last_seen"`
}

type Review struct {
	ID         int        `json:"id" db:"id"`
	ProductID  int        `json:"product_id" db:"product_id"`
	ReviewText *string    `json:"review_text" db:"review_text"`
	Rating     *Decimal   `json:"rating" db:"rating"`
	ReviewDate *time.Time `json:"review_date,omitempty" db:"review_date"`
	Source     *string    `json:"source" db:"source"`
}

type Trend struct {
	ID          int       `json:"id" db:"id"`
	TrendType   *string   `json:"trend_type" db:"trend_type"`
	Description *string   `json:"description" db:"description"`
	Data        []byte    `json:"data,omitempty" db:"data"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ProductSummary is the shape returned by GET /products.
type ProductSummary struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    *Decimal `json:"price"`
	Currency *string  `json:"currency"`
}

// TrendSummary is the shape returned by GET /trends.
type TrendSummary struct {
	ID          int     `json:"id"`
	TrendType   *string `json:"trend_type"`
	Description *string `json:"description"`
}

// ReviewSummary is the shape returned by GET /reviews.
type ReviewSummary struct {
	ID         int      `json:"id"`
	ProductID  int      `json:"product_id"`
	ReviewText *string  `json:"review_text"`
	Rating     *Decimal `json:"rating"`
	Source     *string  `json:"source"`
}
