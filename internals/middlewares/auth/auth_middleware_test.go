// internals/middlewares/auth/auth_middleware_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"studentcrm_backend/internals/configs"
	"studentcrm_backend/internals/constants"
	authService "studentcrm_backend/internals/features/users/auth/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(AuthMiddleware())
	app.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"username": c.Locals("username"),
			"role":     c.Locals("userRole"),
		})
	})
	app.Get("/api/admin-area",
		OnlyRoles("Access denied.", constants.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendString("ok") },
	)
	// Record reads mirror the student endpoint: role gate at the route,
	// own-record check in the handler.
	app.Get("/api/student/:id",
		OnlyRoles("Access denied.", constants.RoleAdmin, constants.RoleStudent),
		func(c *fiber.Ctx) error {
			recordUsername := "johnsmith_14032008"
			role, _ := c.Locals("userRole").(string)
			username, _ := c.Locals("username").(string)
			if !OwnRecord(role, username, constants.RoleStudent, recordUsername) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Access denied."})
			}
			return c.SendString("ok")
		},
	)
	app.Post("/api/fees/notification", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func withSecret(t *testing.T, secret string) {
	t.Helper()
	old := configs.JWTSecret
	configs.JWTSecret = secret
	t.Cleanup(func() { configs.JWTSecret = old })
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	withSecret(t, "test-secret")
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
	withSecret(t, "test-secret")
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareWrongKey(t *testing.T) {
	withSecret(t, "signing-secret")
	token, err := authService.GenerateToken("someone", constants.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	withSecret(t, "different-secret")
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	withSecret(t, "test-secret")
	app := newTestApp(t)

	token, err := authService.GenerateToken("janedoe_19851102", constants.RoleTeacher)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestRoleGate(t *testing.T) {
	withSecret(t, "test-secret")
	app := newTestApp(t)

	studentToken, err := authService.GenerateToken("johnsmith_14032008", constants.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/admin-area", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("student in admin area: status = %d, want %d", resp.StatusCode, http.StatusForbidden)
	}

	adminToken, err := authService.GenerateToken("admin", constants.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/api/admin-area", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("admin in admin area: status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestOwnRecord(t *testing.T) {
	// Admin reads anyone; a student reads only themself.
	if !OwnRecord(constants.RoleAdmin, "admin", constants.RoleStudent, "johnsmith_14032008") {
		t.Error("admin denied a student record")
	}
	if !OwnRecord(constants.RoleStudent, "johnsmith_14032008", constants.RoleStudent, "johnsmith_14032008") {
		t.Error("student denied their own record")
	}
	if OwnRecord(constants.RoleStudent, "maryann_01121995", constants.RoleStudent, "johnsmith_14032008") {
		t.Error("student allowed a foreign record")
	}
	if OwnRecord(constants.RoleTeacher, "janedoe_19851102", constants.RoleTeacher, "bobray_19900101") {
		t.Error("teacher allowed a foreign record")
	}
}

func TestOwnRecordIsolationOverHTTP(t *testing.T) {
	withSecret(t, "test-secret")
	app := newTestApp(t)

	fetch := func(username, role string) int {
		t.Helper()
		token, err := authService.GenerateToken(username, role)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/api/student/some-id", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		return resp.StatusCode
	}

	// Another student's token on the record must be rejected even though
	// the role gate passes.
	if got := fetch("maryann_01121995", constants.RoleStudent); got != http.StatusForbidden {
		t.Errorf("foreign student: status = %d, want %d", got, http.StatusForbidden)
	}
	if got := fetch("johnsmith_14032008", constants.RoleStudent); got != http.StatusOK {
		t.Errorf("record owner: status = %d, want %d", got, http.StatusOK)
	}
	if got := fetch("admin", constants.RoleAdmin); got != http.StatusOK {
		t.Errorf("admin: status = %d, want %d", got, http.StatusOK)
	}
	if got := fetch("janedoe_19851102", constants.RoleTeacher); got != http.StatusForbidden {
		t.Errorf("teacher on student endpoint: status = %d, want %d", got, http.StatusForbidden)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	withSecret(t, "test-secret")
	app := newTestApp(t)

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"username": "johnsmith_14032008",
		"role":     constants.RoleStudent,
		"iat":      now.Add(-2 * time.Hour).Unix(),
		"exp":      now.Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareSkipsWebhookPath(t *testing.T) {
	withSecret(t, "test-secret")
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/fees/notification", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("webhook without token: status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}
