// Package roles proyecta la navegación y el dashboard de inicio según el rol activo.
// Solo filtra un manifiesto estático; nunca toca entidades.
package roles

import (
	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// Variantes del dashboard de inicio.
const (
	DashboardDirector   = "director"
	DashboardSales      = "sales"
	DashboardTraining   = "training"
	DashboardOperations = "operations"
	DashboardTrainer    = "trainer"
	DashboardFinance    = "finance"
	DashboardHR         = "hr"
)

// NavItem entrada del menú lateral.
type NavItem struct {
	ID    string   `json:"id"`
	Label string   `json:"label"`
	Path  string   `json:"path"`
	Roles []string `json:"-"`
}

// Projection lo que ve un rol.
type Projection struct {
	Role      string    `json:"role"`
	Dashboard string    `json:"dashboard"`
	Items     []NavItem `json:"items"`
}

var (
	everyone = entity.Roles
	sales    = []string{entity.RoleDirector, entity.RoleSalesRetail, entity.RoleSalesCorporate}
)

// manifest orden de menú fijo.
var manifest = []NavItem{
	{ID: "home", Label: "Inicio", Path: "/", Roles: everyone},
	{ID: "leads", Label: "Leads", Path: "/leads", Roles: sales},
	{ID: "deals", Label: "Deals", Path: "/deals", Roles: append(sales[:len(sales):len(sales)], entity.RoleFinance)},
	{ID: "proposals", Label: "Propuestas", Path: "/proposals", Roles: append(sales[:len(sales):len(sales)], entity.RoleTrainingManager)},
	{ID: "invoices", Label: "Facturas", Path: "/invoices", Roles: []string{entity.RoleDirector, entity.RoleFinance, entity.RoleOperationsManager}},
	{ID: "trainings", Label: "Clases", Path: "/trainings", Roles: []string{entity.RoleDirector, entity.RoleTrainingManager, entity.RoleOperationsManager, entity.RoleTrainer}},
	{ID: "learners", Label: "Alumnos", Path: "/learners", Roles: []string{entity.RoleDirector, entity.RoleTrainingManager, entity.RoleTrainer, entity.RoleHR}},
	{ID: "payouts", Label: "Pagos a formadores", Path: "/payouts", Roles: []string{entity.RoleDirector, entity.RoleFinance, entity.RoleOperationsManager}},
	{ID: "users", Label: "Equipo", Path: "/users", Roles: []string{entity.RoleDirector, entity.RoleHR}},
	{ID: "profile", Label: "Perfil", Path: "/profile", Roles: everyone},
}

var dashboards = map[string]string{
	entity.RoleDirector:          DashboardDirector,
	entity.RoleSalesRetail:       DashboardSales,
	entity.RoleSalesCorporate:    DashboardSales,
	entity.RoleTrainingManager:   DashboardTraining,
	entity.RoleOperationsManager: DashboardOperations,
	entity.RoleTrainer:           DashboardTrainer,
	entity.RoleFinance:           DashboardFinance,
	entity.RoleHR:                DashboardHR,
}

// Project filtra el manifiesto para role, respetando su orden.
func Project(role string) (Projection, error) {
	if !entity.IsValidRole(role) {
		return Projection{}, domain.ErrInvalidInput
	}
	items := make([]NavItem, 0, len(manifest))
	for _, item := range manifest {
		if contains(item.Roles, role) {
			items = append(items, item)
		}
	}
	return Projection{Role: role, Dashboard: dashboards[role], Items: items}, nil
}

// Allows indica si role ve el ítem itemID.
func Allows(role, itemID string) bool {
	for _, item := range manifest {
		if item.ID == itemID {
			return contains(item.Roles, role)
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
