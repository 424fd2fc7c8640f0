package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	apphttp "github.com/jhoicas/ventas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	adminToken    = "token-admin"
	userToken     = "token-user"
	inactiveToken = "token-inactivo"
)

var (
	adminUser = &entity.User{ID: "00000000-0000-0000-0000-000000000001", Name: "Admin", Role: entity.RoleAdmin, IsActive: true}
	plainUser = &entity.User{ID: "00000000-0000-0000-0000-000000000002", Name: "Ana", Role: entity.RoleUser, IsActive: true}
)

// fakeAuthenticator resuelve tokens fijos sin JWT ni base de datos.
type fakeAuthenticator struct{}

func (fakeAuthenticator) Authenticate(_ context.Context, token string) (*entity.User, error) {
	switch token {
	case adminToken:
		return adminUser, nil
	case userToken:
		return plainUser, nil
	case inactiveToken:
		return nil, fmt.Errorf("%w: la cuenta está desactivada", domain.ErrForbidden)
	default:
		return nil, fmt.Errorf("%w: token inválido", domain.ErrUnauthenticated)
	}
}

// buildTestApp ruta protegida con AuthMiddleware + RequireAdmin y un handler dummy.
func buildTestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/admin",
		apphttp.AuthMiddleware(fakeAuthenticator{}),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "user_id": apphttp.GetUserID(c)})
		},
	)
	app.Get("/me", apphttp.AuthMiddleware(fakeAuthenticator{}), func(c *fiber.Ctx) error {
		u := apphttp.GetUser(c)
		return c.JSON(fiber.Map{"user_id": u.ID, "role": u.Role})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware + RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_SinHeader_Retorna401(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/admin", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp).Code)
}

func TestAuth_FormatoIncorrecto_Retorna401(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/admin", "Basic abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestAuth_TokenInvalido_Retorna401(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/admin", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
}

func TestAuth_CuentaInactiva_Retorna403(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/me", "Bearer "+inactiveToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAdmin_UsuarioSinRolAdmin_Retorna403(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/admin", "Bearer "+userToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decodeError(t, resp).Code)
}

func TestRequireAdmin_Admin_Retorna200(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/admin", "Bearer "+adminToken)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, adminUser.ID, body["user_id"])
}

func TestAuth_UsuarioEnLocals(t *testing.T) {
	resp := doGet(t, buildTestApp(), "/me", "bearer "+userToken)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, plainUser.ID, body["user_id"])
	assert.Equal(t, "user", body["role"])
}
