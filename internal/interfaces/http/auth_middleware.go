package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// LocalUser clave de c.Locals con el *entity.User autenticado.
const LocalUser = "user"

// Authenticator resuelve un bearer token al usuario vigente.
// Lo implementa auth.AuthUseCase.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token y deja el usuario en c.Locals.
// Sin header o con formato incorrecto: 401. Token inválido o usuario inexistente: 401.
// Cuenta desactivada: 403.
func AuthMiddleware(authn Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return writeCode(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "Authorization header requerido")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return writeCode(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return writeCode(c, fiber.StatusUnauthorized, "MISSING_TOKEN", "token vacío")
		}
		user, err := authn.Authenticate(c.Context(), tokenString)
		if err != nil {
			return writeError(c, err)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireAdmin exige rol admin. Debe ir después de AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return writeCode(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "no autenticado")
		}
		if !user.IsAdmin() {
			return writeCode(c, fiber.StatusForbidden, "FORBIDDEN", "se requiere rol admin")
		}
		return c.Next()
	}
}

// GetUser devuelve el usuario autenticado o nil.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetUserID devuelve el ID del usuario autenticado ("" si no hay).
func GetUserID(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.ID
	}
	return ""
}
