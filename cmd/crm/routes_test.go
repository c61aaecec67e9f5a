package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jewelry-crm/internal/config"
)

func testRouter() http.Handler {
	cfg := config.Default()
	cfg.ManagerLogin = "manager"
	cfg.ManagerPass = "secret"
	cfg.CORSOrigins = []string{"http://localhost:5173"}
	return routes(cfg, slog.Default(), services{})
}

func TestRoutes_ManagerAreaRequiresAuth(t *testing.T) {
	router := testRouter()

	paths := []string{
		"/api/manager/report?start_date=2025-03-01&end_date=2025-03-31",
		"/api/manager/report/pdf",
		"/api/manager/report/excel",
		"/api/manager/documents/1/pdf",
		"/api/manager/orders/1/brief",
		"/api/manager/workers",
	}
	for _, path := range paths {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}
}

func TestRoutes_ManagerAreaWithAuth(t *testing.T) {
	router := testRouter()

	// до сервиса запрос не доходит: даты проверяются в обработчике
	req := httptest.NewRequest(http.MethodGet, "/api/manager/report?start_date=bad&end_date=2025-03-31", nil)
	req.SetBasicAuth("manager", "secret")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Неверный формат дат")
}

func TestRoutes_PublicEstimate(t *testing.T) {
	router := testRouter()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/pricing/estimate", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/pricing/estimate", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
}
