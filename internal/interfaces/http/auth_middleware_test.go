package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventario-app/inventario-api/internal/domain/entity"
	httpiface "github.com/inventario-app/inventario-api/internal/interfaces/http"
	"github.com/inventario-app/inventario-api/pkg/jwt"
)

const (
	testJWTSecret = "secreto-de-prueba"
	testIssuer    = "inventario-api"
	testUserID    = "user-123"
)

// buildAuthTestApp arma una app mínima con las mismas cadenas de middleware
// que usa el router real.
func buildAuthTestApp() *fiber.App {
	app := fiber.New()
	protected := app.Group("/api", httpiface.AuthMiddleware(testJWTSecret))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": httpiface.GetUserID(c),
			"role":    httpiface.GetRole(c),
		})
	})
	admin := protected.Group("/admin", httpiface.RequireAdmin())
	admin.Get("/panel", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	token, err := jwt.Generate(testJWTSecret, testUserID, role, testIssuer, 60)
	require.NoError(t, err)
	return token
}

func doAuthRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, "/api/me", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalidoRetorna401(t *testing.T) {
	app := buildAuthTestApp()
	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		resp := doAuthRequest(t, app, "/api/me", header)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_TokenInvalidoRetorna401(t *testing.T) {
	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, "/api/me", "Bearer no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpiradoRetorna401(t *testing.T) {
	app := buildAuthTestApp()
	expired, err := jwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, -1)
	require.NoError(t, err)
	resp := doAuthRequest(t, app, "/api/me", "Bearer "+expired)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FirmaIncorrectaRetorna401(t *testing.T) {
	app := buildAuthTestApp()
	otro, err := jwt.Generate("otro-secreto", testUserID, entity.RoleAdmin, testIssuer, 60)
	require.NoError(t, err)
	resp := doAuthRequest(t, app, "/api/me", "Bearer "+otro)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenValidoExtraeClaims(t *testing.T) {
	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, "/api/me", "Bearer "+tokenForRole(t, entity.RolePasante))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
	}
	decodeJSON(t, resp, &body)
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, entity.RolePasante, body.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, "/api/admin/panel", "Bearer "+tokenForRole(t, entity.RoleAdmin))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireAdmin_PasanteRecibe403(t *testing.T) {
	app := buildAuthTestApp()
	resp := doAuthRequest(t, app, "/api/admin/panel", "Bearer "+tokenForRole(t, entity.RolePasante))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// jwt round-trip
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerarYParsear(t *testing.T) {
	token, err := jwt.Generate(testJWTSecret, testUserID, entity.RoleAdmin, testIssuer, 60)
	require.NoError(t, err)

	userID, role, err := jwt.Parse(testJWTSecret, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}
