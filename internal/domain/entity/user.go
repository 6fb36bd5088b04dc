package entity

import "time"

// Roles válidos para User.
const (
	RoleDirector          = "Director"
	RoleSalesRetail       = "Sales-Retail"
	RoleSalesCorporate    = "Sales-Corporate"
	RoleTrainingManager   = "Training-Manager"
	RoleOperationsManager = "Operations-Manager"
	RoleTrainer           = "Trainer"
	RoleFinance           = "Finance"
	RoleHR                = "HR"
)

// Roles enumera los roles en orden de presentación.
var Roles = []string{
	RoleDirector,
	RoleSalesRetail,
	RoleSalesCorporate,
	RoleTrainingManager,
	RoleOperationsManager,
	RoleTrainer,
	RoleFinance,
	RoleHR,
}

// IsValidRole indica si el rol pertenece a la enumeración fija.
func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User representa un miembro del equipo. Nunca se elimina: Active=false equivale a baja.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
