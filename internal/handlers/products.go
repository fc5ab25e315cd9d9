package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse/internal/models"
)

// ListProducts serves GET /products: optional case-insensitive name filter
// plus offset/limit paging in primary-key order.
func ListProducts(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := parseListQueryParams(c.Query("limit"), c.Query("offset"), c.Query("q"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		query := `
			SELECT id, name, price, currency
			FROM products
			WHERE ($1 = '' OR lower(name) LIKE $1)
			ORDER BY id ASC
			LIMIT $2 OFFSET $3
		`

		rows, err := db.Query(query, params.Pattern, params.Limit, params.Offset)
		if err != nil {
			log.Printf("Error retrieving products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving products"})
			return
		}
		defer rows.Close()

		products := make([]models.ProductSummary, 0)
		for rows.Next() {
			var product models.ProductSummary
			var price, currency sql.NullString

			if err := rows.Scan(&product.ID, &product.Name, &price, &currency); err != nil {
				log.Printf("Error scanning product: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving products"})
				return
			}

			product.Price, err = models.DecimalFromNullString(price)
			if err != nil {
				log.Printf("Error decoding product price: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving products"})
				return
			}
			if currency.Valid {
				product.Currency = &currency.String
			}

			products = append(products, product)
		}
		if err := rows.Err(); err != nil {
			log.Printf("Error iterating products: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}
