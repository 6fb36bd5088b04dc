package dto

import (
	"time"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// SessionRequest body para POST /api/session. No hay contraseña: la sesión solo
// identifica al usuario activo.
type SessionRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// SessionResponse token de sesión y usuario.
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // segundos
	User      UserResponse `json:"user"`
}

// CreateUserRequest body para POST /api/users.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

// UpdateProfileRequest body para PUT /api/users/:id.
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
}

// SwitchRoleRequest body para POST /api/users/:id/role.
type SwitchRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UserResponse usuario en respuestas.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse mapea la entidad.
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Active: u.Active, CreatedAt: u.CreatedAt}
}
