package memory

import (
	"strings"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria de UserRepository (atada a una transacción).
type UserRepo struct {
	st *state
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	return r.st.users.insert(user.ID, user)
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.st.users.get(id), nil
}

// GetByEmail busca por email sin distinguir mayúsculas.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.st.users.find(func(u *entity.User) bool {
		return strings.EqualFold(u.Email, email)
	}), nil
}

// Update reemplaza el usuario.
func (r *UserRepo) Update(user *entity.User) error {
	return r.st.users.put(user.ID, user)
}

// List lista usuarios en orden de alta.
func (r *UserRepo) List() ([]*entity.User, error) {
	return r.st.users.list(), nil
}
