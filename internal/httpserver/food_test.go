package httpserver

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodapp/internal/domain"
)

func TestListFoodHandler(t *testing.T) {
	deps := testDeps()
	deps.FoodSvc = &stubFoodSvc{items: []domain.FoodItem{
		{ID: "food-a", Name: "Greek Salad", PriceCents: 1200, Category: "Salad"},
	}}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodGet, "/api/food/list", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"name":"Greek Salad"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListFoodHandler_EmptyCatalog(t *testing.T) {
	router := newTestRouter(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/food/list", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty data array: %s", rec.Body.String())
	}
}

func multipartFood(t *testing.T, fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if withImage {
		fw, err := mw.CreateFormFile("image", "dish.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("not-really-a-png")); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestAddFoodHandler(t *testing.T) {
	deps := testDeps()
	foodSvc := &stubFoodSvc{item: &domain.FoodItem{ID: "food-1", Name: "Cheese Pasta"}}
	deps.FoodSvc = foodSvc
	router := newTestRouter(t, deps)

	body, contentType := multipartFood(t, map[string]string{
		"name":        "Cheese Pasta",
		"description": "Creamy and rich",
		"priceCents":  "1800",
		"category":    "Pasta",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/food/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if foodSvc.lastAdd.Name != "Cheese Pasta" || foodSvc.lastAdd.PriceCents != 1800 {
		t.Fatalf("unexpected input forwarded: %+v", foodSvc.lastAdd)
	}
}

func TestAddFoodHandler_MissingImage(t *testing.T) {
	router := newTestRouter(t, testDeps())

	body, contentType := multipartFood(t, map[string]string{
		"name":       "Cheese Pasta",
		"priceCents": "1800",
		"category":   "Pasta",
	}, false)

	req := httptest.NewRequest(http.MethodPost, "/api/food/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAddFoodHandler_BadPrice(t *testing.T) {
	router := newTestRouter(t, testDeps())

	body, contentType := multipartFood(t, map[string]string{
		"name":       "Cheese Pasta",
		"priceCents": "eighteen",
		"category":   "Pasta",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/api/food/add", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRemoveFoodHandler(t *testing.T) {
	deps := testDeps()
	foodSvc := &stubFoodSvc{}
	deps.FoodSvc = foodSvc
	router := newTestRouter(t, deps)

	rec := postJSON(router, "/api/food/remove", `{"id":"food-1"}`, false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if foodSvc.lastID != "food-1" {
		t.Fatalf("expected remove of food-1, got %q", foodSvc.lastID)
	}
}

func TestRemoveFoodHandler_NotFound(t *testing.T) {
	deps := testDeps()
	deps.FoodSvc = &stubFoodSvc{removeErr: domain.ErrNotFound}
	router := newTestRouter(t, deps)

	rec := postJSON(router, "/api/food/remove", `{"id":"ghost"}`, false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
