package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lms/config"
	"lms/middleware"
	"lms/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	app := fiber.New()
	app.Get("/protected", middleware.JWTMiddleware, func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{
			"userId": c.Locals("userId"),
			"role":   c.Locals("role"),
		})
	})
	app.Get("/admin-only", middleware.JWTMiddleware, middleware.RequireRoles(models.RoleAdmin), func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	return app
}

func request(t *testing.T, app *fiber.App, path, authHeader string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestTokenRoundTrip(t *testing.T) {
	app := setupApp(t)

	token, err := middleware.GenerateJWT(42, models.RoleInstructor)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, request(t, app, "/protected", "Bearer "+token))
}

func TestMissingOrMalformedHeader(t *testing.T) {
	app := setupApp(t)

	assert.Equal(t, http.StatusUnauthorized, request(t, app, "/protected", ""))
	assert.Equal(t, http.StatusUnauthorized, request(t, app, "/protected", "Token abc"))
	assert.Equal(t, http.StatusUnauthorized, request(t, app, "/protected", "Bearer not-a-token"))
}

func TestExpiredToken(t *testing.T) {
	app := setupApp(t)

	claims := jwt.MapClaims{
		"userId": 42,
		"role":   string(models.RoleLearner),
		"iat":    time.Now().Add(-8 * 24 * time.Hour).Unix(),
		"exp":    time.Now().Add(-24 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, request(t, app, "/protected", "Bearer "+expired))
}

func TestTokenSignedWithWrongKey(t *testing.T) {
	app := setupApp(t)

	claims := jwt.MapClaims{
		"userId": 42,
		"role":   string(models.RoleAdmin),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, request(t, app, "/protected", "Bearer "+forged))
}

func TestRequireRoles(t *testing.T) {
	app := setupApp(t)

	adminToken, err := middleware.GenerateJWT(1, models.RoleAdmin)
	require.NoError(t, err)
	learnerToken, err := middleware.GenerateJWT(2, models.RoleLearner)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, request(t, app, "/admin-only", "Bearer "+adminToken))
	assert.Equal(t, http.StatusForbidden, request(t, app, "/admin-only", "Bearer "+learnerToken))
}
