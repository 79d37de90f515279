package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/senxilab/senxi-backend/internal/catalog"
	"github.com/senxilab/senxi-backend/internal/handlers"
	"github.com/senxilab/senxi-backend/internal/logger"
	"github.com/senxilab/senxi-backend/internal/repos"
	"github.com/senxilab/senxi-backend/internal/repos/testutil"
	"github.com/senxilab/senxi-backend/internal/services"
)

func newTestLogger(tb testing.TB) *logger.Logger {
	tb.Helper()
	log, err := logger.New("dev")
	if err != nil {
		tb.Fatalf("new logger: %v", err)
	}
	return log
}

func newProductRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	log := newTestLogger(t)
	svc := services.NewProductService(catalog.New(), repos.NewProductRepo(db, log), log)
	handler := handlers.NewProductHandler(svc, log)

	router := gin.New()
	group := router.Group("/api/products")
	group.GET("", handler.List)
	group.GET("/categories", handler.Categories)
	group.GET("/search", handler.Search)
	group.POST("/compare", handler.Compare)
	group.GET("/:id", handler.Get)
	return router
}

func TestProductListEndpoint(t *testing.T) {
	router := newProductRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products?category=home", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var products []catalog.Product
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) == 0 {
		t.Fatal("no home products returned")
	}
	for _, p := range products {
		if p.Category != "home" {
			t.Fatalf("category filter leaked %s", p.ID)
		}
	}
}

func TestProductGetNotFound(t *testing.T) {
	router := newProductRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/ghost-99", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] != "产品不存在" {
		t.Fatalf("body = %v", body)
	}
}

func TestCompareEndpoint(t *testing.T) {
	router := newProductRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products/compare",
		strings.NewReader(`{"product_ids":["mini-01","pro-01"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var comparison catalog.Comparison
	if err := json.Unmarshal(w.Body.Bytes(), &comparison); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(comparison.Dimensions) != 6 {
		t.Fatalf("dimensions = %d, want 6", len(comparison.Dimensions))
	}
}

func TestCompareEndpointTooFewProducts(t *testing.T) {
	router := newProductRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/products/compare",
		strings.NewReader(`{"product_ids":["mini-01"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("body = %v, want error message", body)
	}
}

func TestSearchEndpointEmptyKeyword(t *testing.T) {
	router := newProductRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/search", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("body = %s, want empty array", w.Body.String())
	}
}
