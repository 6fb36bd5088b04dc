package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/pkg/jwt"
)

// SessionHandler abre sesiones. No autentica: solo identifica al usuario activo
// cuyo contexto (id + rol) consumen las operaciones.
type SessionHandler struct {
	users      SnapshotSource
	secret     string
	issuer     string
	expMinutes int
}

// NewSessionHandler construye el handler de sesión.
func NewSessionHandler(users SnapshotSource, secret, issuer string, expMinutes int) *SessionHandler {
	return &SessionHandler{users: users, secret: secret, issuer: issuer, expMinutes: expMinutes}
}

// Open godoc
// @Summary      Abrir sesión como un usuario activo
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SessionRequest  true  "user_id"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/session [post]
func (h *SessionHandler) Open(c *fiber.Ctx) error {
	var in dto.SessionRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	snap := h.users.Snapshot()
	user, ok := snap.FindUser(in.UserID)
	if !ok || !user.Active {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "usuario inexistente o inactivo"})
	}
	token, err := jwt.Generate(h.secret, user.ID, user.Role, h.issuer, h.expMinutes)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.SessionResponse{
		Token:     token,
		ExpiresIn: h.expMinutes * 60,
		User:      dto.NewUserResponse(user),
	})
}
