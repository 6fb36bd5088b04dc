package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etapas del pipeline de ventas.
const (
	DealStageOpen        = "Open"
	DealStageProposal    = "Proposal"
	DealStageNegotiation = "Negotiation"
	DealStageClosedWon   = "Closed-Won"
	DealStageClosedLost  = "Closed-Lost"
)

var dealTransitions = map[string]map[string]bool{
	DealStageOpen:        {DealStageProposal: true, DealStageNegotiation: true, DealStageClosedWon: true, DealStageClosedLost: true},
	DealStageProposal:    {DealStageNegotiation: true, DealStageClosedWon: true, DealStageClosedLost: true},
	DealStageNegotiation: {DealStageClosedWon: true, DealStageClosedLost: true},
	DealStageClosedWon:   {},
	DealStageClosedLost:  {},
}

// Deal representa una oportunidad comercial con valor monetario.
// LeadID es opcional; una vez asignado no cambia y es único entre deals.
// IsPaid solo lo activa el pago de una factura que cubre el valor del deal.
type Deal struct {
	ID         string
	Title      string
	ClientName string
	Type       string
	Value      decimal.Decimal
	Stage      string
	AssignedTo string
	IsPaid     bool
	LeadID     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsClosed indica si el deal está en una etapa final.
func (d *Deal) IsClosed() bool {
	return d.Stage == DealStageClosedWon || d.Stage == DealStageClosedLost
}

// CanMoveTo indica si el deal puede avanzar a la etapa indicada.
func (d *Deal) CanMoveTo(stage string) bool {
	return dealTransitions[d.Stage][stage]
}
