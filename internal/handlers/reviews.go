package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse/internal/models"
)

func productExists(db *sql.DB, productID int) (bool, error) {
	var exists bool
	err := db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`,
		productID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ListReviews serves GET /reviews for a single product. The product must
// exist; a missing product is a 404 before any review query runs.
func ListReviews(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := parseProductID(c.Query("product_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		limit, err := parseLimit(c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		offset, err := parseOffset(c.Query("offset"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		exists, err := productExists(db, productID)
		if err != nil {
			log.Printf("Error checking product existence: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving reviews"})
			return
		}
		if !exists {
			c.JSON(http.StatusNotFound, gin.H{"detail": "product not found"})
			return
		}

		query := `
			SELECT id, product_id, review_text, rating, source
			FROM reviews
			WHERE product_id = $1
			ORDER BY id ASC
			LIMIT $2 OFFSET $3
		`

		rows, err := db.Query(query, productID, limit, offset)
		if err != nil {
			log.Printf("Error retrieving reviews: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving reviews"})
			return
		}
		defer rows.Close()

		reviews := make([]models.ReviewSummary, 0)
		for rows.Next() {
			var review models.ReviewSummary
			var text, rating, source sql.NullString

			if err := rows.Scan(&review.ID, &review.ProductID, &text, &rating, &source); err != nil {
				log.Printf("Error scanning review: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving reviews"})
				return
			}

			if text.Valid {
				review.ReviewText = &text.String
			}
			review.Rating, err = models.DecimalFromNullString(rating)
			if err != nil {
				log.Printf("Error decoding review rating: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving reviews"})
				return
			}
			if source.Valid {
				review.Source = &source.String
			}

			reviews = append(reviews, review)
		}
		if err := rows.Err(); err != nil {
			log.Printf("Error iterating reviews: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving reviews"})
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}
