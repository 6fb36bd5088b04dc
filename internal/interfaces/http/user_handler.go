package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/application/store"
)

// UserHandler gestiona el equipo.
type UserHandler struct {
	store *store.Store
}

// NewUserHandler construye el handler.
func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// Create POST /api/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	user, snap, err := h.store.CreateUser(c.Context(), store.UserInput{Name: in.Name, Email: in.Email, Role: in.Role})
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusCreated, snap, dto.NewUserResponse(*user))
}

// UpdateProfile PUT /api/users/:id
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	user, snap, err := h.store.UpdateProfile(c.Context(), c.Params("id"), in.Name, in.Email)
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewUserResponse(*user))
}

// ToggleActive activa o desactiva un usuario. El usuario de la sesión no puede cambiarse a sí mismo.
// POST /api/users/:id/toggle-active
func (h *UserHandler) ToggleActive(c *fiber.Ctx) error {
	user, snap, err := h.store.ToggleUserActive(c.Context(), GetUserID(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewUserResponse(*user))
}

// SwitchRole cambia el rol del usuario. Es un filtro de vista: no exige credenciales.
// POST /api/users/:id/role
func (h *UserHandler) SwitchRole(c *fiber.Ctx) error {
	var in dto.SwitchRoleRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	user, snap, err := h.store.SwitchRole(c.Context(), c.Params("id"), in.Role)
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewUserResponse(*user))
}
