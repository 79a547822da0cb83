package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Salon-api/internal/application/dto"
	"github.com/jhoicas/Salon-api/pkg/jwt"
)

// Locals keys para la identidad del token en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRoleID   = "role_id"
)

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
// Ningún handler protegido se ejecuta sin token válido, firmado y vigente.
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
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalUsername, id.Username)
		c.Locals(LocalRoleID, id.RoleID)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Montar después de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae role_id.
//   - 403 FORBIDDEN si el rol no está permitido.
func RequireRole(allowed ...int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no contiene rol"})
		}
		if !slices.Contains(allowed, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tiene permisos para esta operación"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el user_id del token (0 si no hay).
func GetUserID(c *fiber.Ctx) int64 {
	v, _ := c.Locals(LocalUserID).(int64)
	return v
}

// GetUsername devuelve el username del token.
func GetUsername(c *fiber.Ctx) string {
	v, _ := c.Locals(LocalUsername).(string)
	return v
}

// GetRole devuelve el role_id del token (0 si no hay).
func GetRole(c *fiber.Ctx) int {
	v, _ := c.Locals(LocalRoleID).(int)
	return v
}
