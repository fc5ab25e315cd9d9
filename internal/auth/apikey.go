package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"productpulse/internal/models"
)

// Credential failures are distinct so the transport layer can report a
// missing header, a token that can't possibly be a key, and a well-formed
// token with no active match as different outcomes.
var (
	ErrMissingCredential   = errors.New("api key required")
	ErrMalformedCredential = errors.New("malformed api key")
	ErrInvalidCredential   = errors.New("invalid or inactive api key")
)

// keyShape is the fixed shape of issued keys. Tokens outside it are rejected
// before any lookup.
var keyShape = regexp.MustCompile(`^[A-Za-z0-9]{32,64}$`)

// ValidateKey checks a client-supplied token against the api_keys table and
// returns the matching active key record. Pure read, no side effects.
// Storage failures are returned wrapped, distinct from the credential errors.
func ValidateKey(db *sql.DB, token string) (*models.APIKey, error) {
	if token == "" {
		return nil, ErrMissingCredential
	}
	if !keyShape.MatchString(token) {
		return nil, ErrMalformedCredential
	}

	var key models.APIKey
	err := db.QueryRow(
		`SELECT id, user_id, key, active, created_at FROM api_keys WHERE key = $1 AND active = TRUE`,
		token,
	).Scan(&key.ID, &key.UserID, &key.Key, &key.Active, &key.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("api key lookup: %w", err)
	}

	return &key, nil
}
