package entity

import "time"

// Estados de Lead.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusQualified = "Qualified"
	LeadStatusConverted = "Converted"
	LeadStatusLost      = "Lost"
)

// Tipos de Lead (y de Deal).
const (
	TypeRetail    = "Retail"
	TypeCorporate = "Corporate"
)

// leadTransitions: transiciones permitidas desde cada estado.
// Converted solo se alcanza con la conversión a Deal; Converted y Lost son finales.
var leadTransitions = map[string]map[string]bool{
	LeadStatusNew:       {LeadStatusContacted: true, LeadStatusQualified: true, LeadStatusLost: true},
	LeadStatusContacted: {LeadStatusQualified: true, LeadStatusLost: true},
	LeadStatusQualified: {LeadStatusLost: true},
	LeadStatusConverted: {},
	LeadStatusLost:      {},
}

// Lead representa un cliente potencial antes de cualquier compromiso comercial.
type Lead struct {
	ID         string
	Name       string
	Company    string
	Email      string
	Phone      string
	Source     string
	Type       string // Retail, Corporate
	Status     string
	AssignedTo string // User.ID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsTerminal indica si el lead ya no admite cambios de estado.
func (l *Lead) IsTerminal() bool {
	return l.Status == LeadStatusConverted || l.Status == LeadStatusLost
}

// CanMoveTo indica si el lead puede avanzar manualmente al estado indicado.
func (l *Lead) CanMoveTo(status string) bool {
	return leadTransitions[l.Status][status]
}

// IsValidLeadType valida el tipo de lead.
func IsValidLeadType(t string) bool {
	return t == TypeRetail || t == TypeCorporate
}
