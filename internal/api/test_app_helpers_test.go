package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zakariamou/sahha/internal/db"
	"github.com/zakariamou/sahha/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "sahha-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	handler := NewHandler(database, time.UTC)
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

// newBootstrappedApp seeds default settings, a 12-week plan starting Monday
// 2026-01-05, stub logs, and the start-weight measurement.
func newBootstrappedApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	app, handler := newTestApp(t)
	bootstrap := services.NewBootstrapService(
		handler.repositories.Settings,
		handler.repositories.PlanDays,
		handler.repositories.DailyLogs,
		handler.repositories.Measurements,
	)
	if err := bootstrap.EnsureBootstrapped(time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	return app, handler
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSON(t *testing.T, response *http.Response, out any) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}
