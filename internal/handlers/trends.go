package handlers

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"productpulse/internal/models"
)

// ListTrends serves GET /trends: optional exact trend_type filter, limit only.
func ListTrends(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		trendType, err := parseTrendType(c.Query("trend_type"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		limit, err := parseLimit(c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
			return
		}

		query := `
			SELECT id, trend_type, description
			FROM trends
			WHERE ($1 = '' OR trend_type = $1)
			ORDER BY id ASC
			LIMIT $2
		`

		rows, err := db.Query(query, trendType, limit)
		if err != nil {
			log.Printf("Error retrieving trends: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving trends"})
			return
		}
		defer rows.Close()

		trends := make([]models.TrendSummary, 0)
		for rows.Next() {
			var trend models.TrendSummary
			var kind, description sql.NullString

			if err := rows.Scan(&trend.ID, &kind, &description); err != nil {
				log.Printf("Error scanning trend: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving trends"})
				return
			}

			if kind.Valid {
				trend.TrendType = &kind.String
			}
			if description.Valid {
				trend.Description = &description.String
			}

			trends = append(trends, trend)
		}
		if err := rows.Err(); err != nil {
			log.Printf("Error iterating trends: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "error retrieving trends"})
			return
		}

		c.JSON(http.StatusOK, trends)
	}
}
