package middleware

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse/internal/auth"
)

const (
	apiKeyHeaderName = "X-API-Key"

	// Context keys set for downstream handlers once the credential resolves.
	APIKeyIDContextKey = "api_key_id"
	UserIDContextKey   = "user_id"
)

// APIKeyAuth validates the X-API-Key header against the api_keys table and
// attaches the resolved identity to the request context. Runs before handler
// dispatch; handlers never see unauthenticated requests.
func APIKeyAuth(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(apiKeyHeaderName)

		key, err := auth.ValidateKey(db, token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrMissingCredential),
				errors.Is(err, auth.ErrMalformedCredential),
				errors.Is(err, auth.ErrInvalidCredential):
				c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			default:
				log.Printf("Error validating API key: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "authentication backend error"})
			}
			c.Abort()
			return
		}

		c.Set(APIKeyIDContextKey, key.ID)
		c.Set(UserIDContextKey, key.UserID)
		c.Next()
	}
}
