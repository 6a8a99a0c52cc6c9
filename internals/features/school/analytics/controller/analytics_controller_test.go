// file: internals/features/school/analytics/controller/analytics_controller_test.go
package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Query validation happens before any data access, so these run with
// no database behind the controller.
func newFinancialApp() *fiber.App {
	ctrl := NewAnalyticsController(nil)
	app := fiber.New()
	app.Get("/api/analytics/financial", ctrl.Financial)
	return app
}

func TestFinancialRequiresYear(t *testing.T) {
	app := newFinancialApp()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/analytics/financial?view=yearly", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing year: status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestFinancialRequiresExplicitView(t *testing.T) {
	app := newFinancialApp()

	for _, target := range []string{
		"/api/analytics/financial?year=2024",
		"/api/analytics/financial?year=2024&view=weekly",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", target, resp.StatusCode, http.StatusBadRequest)
		}
	}
}

func TestFinancialMonthlyRequiresMonth(t *testing.T) {
	app := newFinancialApp()

	for _, target := range []string{
		"/api/analytics/financial?year=2024&view=monthly",
		"/api/analytics/financial?year=2024&view=monthly&month=13",
		"/api/analytics/financial?year=2024&view=monthly&month=0",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", target, resp.StatusCode, http.StatusBadRequest)
		}
	}
}
