package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	authsvc "foodapp/internal/service/auth"
)

func TestRegisterHandler(t *testing.T) {
	deps := testDeps()
	router := newTestRouter(t, deps)

	body := `{"name":"Ada","email":"ada@example.com","password":"hunter2go"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"token":"tok"`) {
		t.Fatalf("expected token in body: %s", rec.Body.String())
	}
}

func TestRegisterHandler_InvalidEmail(t *testing.T) {
	router := newTestRouter(t, testDeps())

	body := `{"name":"Ada","email":"not-an-email","password":"hunter2go"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegisterHandler_EmailTaken(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthSvc{registerErr: authsvc.ErrEmailTaken}
	router := newTestRouter(t, deps)

	body := `{"name":"Ada","email":"ada@example.com","password":"hunter2go"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthSvc{loginErr: authsvc.ErrInvalidCredentials}
	router := newTestRouter(t, deps)

	body := `{"email":"ada@example.com","password":"wrong-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestAuthRequired_MissingToken(t *testing.T) {
	deps := testDeps()
	deps.AuthSvc = &stubAuthSvc{verifyErr: authsvc.ErrInvalidToken}
	router := newTestRouter(t, deps)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/get", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Fatalf("expected failure envelope: %s", rec.Body.String())
	}
}
