package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

func TestListTrendsExactTypeFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`SELECT id, trend_type, description`).
		WithArgs("price_drop", 10).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "trend_type", "description"}).
				AddRow(1, "price_drop", "Biggest price drops this week"),
		)

	router := gin.New()
	router.GET("/trends", ListTrends(db))

	req := httptest.NewRequest(http.MethodGet, "/trends?trend_type=price_drop", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	var out []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 trend, got %d", len(out))
	}
	if out[0]["trend_type"] != "price_drop" {
		t.Fatalf("expected trend_type=price_drop, got %#v", out[0]["trend_type"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListTrendsNoFilterUsesDefaultLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`SELECT id, trend_type, description`).
		WithArgs("", 10).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "trend_type", "description"}).
				AddRow(1, "price_drop", "Biggest price drops this week").
				AddRow(2, "rating_spike", nil),
		)

	router := gin.New()
	router.GET("/trends", ListTrends(db))

	req := httptest.NewRequest(http.MethodGet, "/trends", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)

	var out []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 trends, got %d", len(out))
	}
	if out[1]["description"] != nil {
		t.Fatalf("expected null description, got %#v", out[1]["description"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListTrendsRejectsOverlongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.GET("/trends", ListTrends(db))

	req := httptest.NewRequest(http.MethodGet, "/trends?trend_type="+strings.Repeat("x", 51), nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusBadRequest)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestListTrendsBackendError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(`SELECT id, trend_type, description`).
		WithArgs("", 10).
		WillReturnError(errClosedPool)

	router := gin.New()
	router.GET("/trends", ListTrends(db))

	req := httptest.NewRequest(http.MethodGet, "/trends", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusInternalServerError)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
