package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/crunchyspot/crunchyspot-api/internal/application/dto"
	"github.com/crunchyspot/crunchyspot-api/internal/domain/repository"
	"github.com/crunchyspot/crunchyspot-api/pkg/jwt"
)

// Local key del email del Principal en Fiber.
const LocalPrincipalEmail = "principal_email"

// AuthMiddleware valida el Bearer Token JWT y deja el email del Principal en
// c.Locals. Cualquier fallo de credencial (header ausente, formato malo,
// token inválido o expirado) corta la request con 401 sin tocar el store.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalPrincipalEmail, email)
		return c.Next()
	}
}

// RequireAdmin autoriza solo a usuarios con rol admin. Asume que
// AuthMiddleware ya corrió y dejó el Principal: va SIEMPRE después en la
// cadena. El rol se consulta en el store por email del Principal.
func RequireAdmin(users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := GetPrincipalEmail(c)
		if email == "" {
			// Cadena mal compuesta o token sin identidad: no hay Principal que autorizar.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_PRINCIPAL", Message: "no autenticado"})
		}
		user, err := users.FindByEmail(email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		}
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
		}
		return c.Next()
	}
}

// GetPrincipalEmail devuelve el email del Principal (después de AuthMiddleware).
func GetPrincipalEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalPrincipalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// isSelf chequeo de auto-alcance por handler: el email del path debe
// coincidir con el del Principal. Complementa a AuthMiddleware, no a RequireAdmin.
func isSelf(c *fiber.Ctx, email string) bool {
	return email == GetPrincipalEmail(c)
}
