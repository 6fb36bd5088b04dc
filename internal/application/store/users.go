package store

import (
	"context"
	"strings"

	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// UserInput datos de alta de un miembro del equipo.
type UserInput struct {
	Name  string
	Email string
	Role  string
}

// CreateUser da de alta un usuario activo. El email es único (sin distinguir mayúsculas).
func (s *Store) CreateUser(ctx context.Context, in UserInput) (*entity.User, entity.Snapshot, error) {
	now := s.nowFn()
	user := &entity.User{
		ID:        s.newID(),
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.TrimSpace(in.Email),
		Role:      in.Role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	snap, err := s.run(ctx, "CreateUser", func(r Repos) error {
		if user.Name == "" || user.Email == "" || !entity.IsValidRole(user.Role) {
			return domain.ErrInvalidInput
		}
		if existing, _ := r.Users.GetByEmail(user.Email); existing != nil {
			return domain.ErrDuplicate
		}
		return r.Users.Create(user)
	})
	if err != nil {
		return nil, snap, err
	}
	return user, snap, nil
}

// UpdateProfile edita nombre y email del usuario.
func (s *Store) UpdateProfile(ctx context.Context, userID, name, email string) (*entity.User, entity.Snapshot, error) {
	var out *entity.User
	snap, err := s.run(ctx, "UpdateProfile", func(r Repos) error {
		name, email := strings.TrimSpace(name), strings.TrimSpace(email)
		if name == "" || email == "" {
			return domain.ErrInvalidInput
		}
		user, _ := r.Users.GetByID(userID)
		if user == nil {
			return domain.ErrNotFound
		}
		if other, _ := r.Users.GetByEmail(email); other != nil && other.ID != user.ID {
			return domain.ErrDuplicate
		}
		user.Name = name
		user.Email = email
		user.UpdatedAt = s.nowFn()
		out = user
		return r.Users.Update(user)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// ToggleUserActive invierte el flag Active. actorID es el usuario de la sesión en curso:
// nadie puede cambiar su propio estado.
func (s *Store) ToggleUserActive(ctx context.Context, actorID, userID string) (*entity.User, entity.Snapshot, error) {
	var out *entity.User
	snap, err := s.run(ctx, "ToggleUserActive", func(r Repos) error {
		if actorID != "" && actorID == userID {
			return domain.ErrSelfDeactivationForbidden
		}
		user, _ := r.Users.GetByID(userID)
		if user == nil {
			return domain.ErrNotFound
		}
		user.Active = !user.Active
		user.UpdatedAt = s.nowFn()
		out = user
		return r.Users.Update(user)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// SwitchRole reasigna el rol del usuario. No afecta a ninguna otra entidad y
// no exige credenciales: el rol es un filtro de vista, no una frontera de seguridad.
func (s *Store) SwitchRole(ctx context.Context, userID, role string) (*entity.User, entity.Snapshot, error) {
	var out *entity.User
	snap, err := s.run(ctx, "SwitchRole", func(r Repos) error {
		if !entity.IsValidRole(role) {
			return domain.ErrInvalidInput
		}
		user, _ := r.Users.GetByID(userID)
		if user == nil {
			return domain.ErrNotFound
		}
		out = user
		if user.Role == role {
			return errNoChange
		}
		user.Role = role
		user.UpdatedAt = s.nowFn()
		return r.Users.Update(user)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}
