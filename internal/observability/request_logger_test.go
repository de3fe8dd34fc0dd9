package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func TestRequestLoggerRecordsCounters(t *testing.T) {
	metrics := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
		}
	}

	if got := metrics.RequestTotal("/ping", http.MethodGet, http.StatusOK); got != 3 {
		t.Fatalf("RequestTotal = %d, want 3", got)
	}
	if got := metrics.RequestTotal("/ping", http.MethodGet, http.StatusNotFound); got != 0 {
		t.Fatalf("RequestTotal for unseen status = %d, want 0", got)
	}
}
