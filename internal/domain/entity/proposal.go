package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Proposal.
const (
	ProposalStatusSent     = "Sent"
	ProposalStatusAccepted = "Accepted"
	ProposalStatusRejected = "Rejected"
)

// LineItem curso ofertado dentro de una propuesta.
type LineItem struct {
	Name     string
	Price    decimal.Decimal
	Duration string // ej. "40 Hours"
}

// Proposal oferta de cursos asociada a un Deal.
// El total no se almacena: se deriva siempre de las líneas.
type Proposal struct {
	ID        string
	DealID    string
	Items     []LineItem
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalValue suma los precios de las líneas.
func (p *Proposal) TotalValue() decimal.Decimal {
	return SumItems(p.Items)
}

// IsResolved indica si la propuesta ya fue aceptada o rechazada.
func (p *Proposal) IsResolved() bool {
	return p.Status == ProposalStatusAccepted || p.Status == ProposalStatusRejected
}

// SumItems suma los precios de un conjunto de líneas.
func SumItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price)
	}
	return total
}

// CloneItems copia las líneas para que ningún llamador comparta el slice interno.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
