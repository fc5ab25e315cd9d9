package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestListReviewsForExistingProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.
		ExpectQuery(`SELECT id, product_id, review_text, rating, source`).
		WithArgs(1, 10, 0).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "product_id", "review_text", "rating", "source"}).
				AddRow(1, 1, "Great!", "5.0", "example.com"),
		)

	router := gin.New()
	router.GET("/reviews", ListReviews(db))

	req := httptest.NewRequest(http.MethodGet, "/reviews?product_id=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	var out []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 review, got %d", len(out))
	}
	if out[0]["review_text"] != "Great!" {
		t.Fatalf("expected review_text=Great!, got %#v", out[0]["review_text"])
	}
	if rating, _ := out[0]["rating"].(float64); rating != 5 {
		t.Fatalf("expected rating=5, got %#v", out[0]["rating"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListReviewsMissingProductIs404WithoutReviewQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`)).
		WithArgs(999).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	router := gin.New()
	router.GET("/reviews", ListReviews(db))

	req := httptest.NewRequest(http.MethodGet, "/reviews?product_id=999", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusNotFound)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out["detail"] != "product not found" {
		t.Fatalf("expected detail=product not found, got %#v", out["detail"])
	}

	// Only the existence probe may run.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListReviewsRejectsBadProductID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/reviews", ListReviews(db))

	for _, query := range []string{"", "product_id=0", "product_id=-5", "product_id=abc"} {
		req := httptest.NewRequest(http.MethodGet, "/reviews?"+query, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		mustStatus(t, resp.Code, http.StatusBadRequest)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListReviewsAbsentRatingStaysNull(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	mock.
		ExpectQuery(`SELECT id, product_id, review_text, rating, source`).
		WithArgs(1, 10, 0).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "product_id", "review_text", "rating", "source"}).
				AddRow(2, 1, nil, nil, nil),
		)

	router := gin.New()
	router.GET("/reviews", ListReviews(db))

	req := httptest.NewRequest(http.MethodGet, "/reviews?product_id=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	var out []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 review, got %d", len(out))
	}
	rating, present := out[0]["rating"]
	if !present || rating != nil {
		t.Fatalf("expected rating=null, got %#v", rating)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListReviewsExistenceProbeBackendError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`)).
		WithArgs(1).
		WillReturnError(errClosedPool)

	router := gin.New()
	router.GET("/reviews", ListReviews(db))

	req := httptest.NewRequest(http.MethodGet, "/reviews?product_id=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusInternalServerError)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out["detail"] != "error retrieving reviews" {
		t.Fatalf("expected generic detail, got %#v", out["detail"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
