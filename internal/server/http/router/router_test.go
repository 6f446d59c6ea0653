package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anandpatel/cafewala/internal/config"
	"github.com/anandpatel/cafewala/internal/server/http/handlers"
	testhelpers "github.com/anandpatel/cafewala/internal/test"
)

var _ handlers.CafeFacade = (*testhelpers.CafeFacadeStub)(nil)

func newTestRouter() http.Handler {
	cfg := &config.Config{RateLimitRPS: 100, RateLimitBurst: 100}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return Setup(&testhelpers.CafeFacadeStub{}, cfg, logger)
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := newTestRouter()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/health"},
		{http.MethodGet, "/api/menu"},
		{http.MethodGet, "/api/menu/id-1"},
		{http.MethodGet, "/api/orders/CAFE-20260831-0001"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code == http.StatusNotFound || resp.Code == http.StatusUnauthorized {
			t.Fatalf("%s %s: unexpected status %d", tc.method, tc.path, resp.Code)
		}
	}
}

func TestSetupAdminRoutesRequireAuth(t *testing.T) {
	engine := newTestRouter()

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/orders"},
		{http.MethodPut, "/api/orders/CAFE-20260831-0001/status"},
		{http.MethodPost, "/api/menu"},
		{http.MethodDelete, "/api/menu/id-1"},
		{http.MethodGet, "/api/reservations"},
		{http.MethodDelete, "/api/reservations/res-1"},
		{http.MethodGet, "/api/contact"},
		{http.MethodPatch, "/api/contact/msg-1/read"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without token, got %d", tc.method, tc.path, resp.Code)
		}
	}
}

func TestSetupAdminRoutesAcceptToken(t *testing.T) {
	engine := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.Code)
	}
}

func TestSetupUnknownRoute(t *testing.T) {
	engine := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
