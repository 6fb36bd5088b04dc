package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/pkg/jwt"
)

// Locals keys para el usuario de la sesión en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// SnapshotSource lectura del estado vigente.
type SnapshotSource interface {
	Snapshot() entity.Snapshot
}

// AuthMiddleware valida el Bearer Token de sesión y carga en c.Locals el usuario y su rol vigente.
// El rol se toma del store, no del token, para que un cambio de rol se vea en la siguiente petición.
func AuthMiddleware(jwtSecret string, users SnapshotSource) fiber.Handler {
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
		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		snap := users.Snapshot()
		user, ok := snap.FindUser(userID)
		if !ok || !user.Active {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INACTIVE_USER", Message: "usuario inexistente o inactivo"})
		}
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalRole, user.Role)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol vigente del usuario de la sesión.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
