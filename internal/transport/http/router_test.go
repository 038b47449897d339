package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"artzone/internal/handler"
	"artzone/internal/httputil"
	"artzone/internal/model"
)

type stubUserVerifier struct {
	err error
}

func (s *stubUserVerifier) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.User{ID: id}, nil
}

func testRouterConfig() RouterConfig {
	return RouterConfig{
		HealthHandler:   handler.NewHealthHandler("test"),
		AuthHandler:     &handler.AuthHandler{},
		ArtistHandler:   &handler.ArtistHandler{},
		ArtworkHandler:  &handler.ArtworkHandler{},
		EventHandler:    &handler.EventHandler{},
		BlogHandler:     &handler.BlogHandler{},
		CartHandler:     &handler.CartHandler{},
		FavoriteHandler: &handler.FavoriteHandler{},
		JWTSecret:       "test-secret",
		UserVerifier:    &stubUserVerifier{},
	}
}

func TestRouter_Health(t *testing.T) {
	router := NewRouter(testRouterConfig())

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != httputil.StatusSuccess {
		t.Errorf("status field = %v, want %q", body["status"], httputil.StatusSuccess)
	}
	if body["environment"] != "test" {
		t.Errorf("environment = %v, want %q", body["environment"], "test")
	}
	if body["timestamp"] == nil {
		t.Error("expected a timestamp field")
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := NewRouter(testRouterConfig())

	req := httptest.NewRequest(stdhttp.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body httputil.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body.Status != httputil.StatusError || body.Message != "Route not found" {
		t.Errorf("body = %+v, want error envelope with Route not found", body)
	}
}

func TestRouter_ProtectedRouteRequiresToken(t *testing.T) {
	router := NewRouter(testRouterConfig())

	for _, path := range []string{"/api/cart", "/api/favorites", "/api/auth/me"} {
		req := httptest.NewRequest(stdhttp.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != stdhttp.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", path, rec.Code)
		}
	}
}

// A valid token whose account has been deleted must get a 401 on every
// protected route, not just /auth/me.
func TestRouter_ProtectedRouteRejectsStaleToken(t *testing.T) {
	cfg := testRouterConfig()
	cfg.UserVerifier = &stubUserVerifier{err: model.ErrUserNotFound}
	router := NewRouter(cfg)

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	for _, path := range []string{"/api/cart", "/api/favorites"} {
		req := httptest.NewRequest(stdhttp.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != stdhttp.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", path, rec.Code)
		}

		var body httputil.Response
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: invalid JSON response: %v", path, err)
		}
		if body.Message != "User not found" {
			t.Errorf("%s: message = %q, want %q", path, body.Message, "User not found")
		}
	}
}
