package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// LineItemRequest curso de una propuesta.
type LineItemRequest struct {
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Duration string          `json:"duration,omitempty"`
}

// CreateProposalRequest body para POST /api/deals/:id/proposals.
type CreateProposalRequest struct {
	Items []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateProposalRequest body para PUT /api/proposals/:id.
type UpdateProposalRequest struct {
	Items []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ToLineItems convierte las líneas del request.
func ToLineItems(in []LineItemRequest) []entity.LineItem {
	out := make([]entity.LineItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.LineItem{Name: it.Name, Price: it.Price, Duration: it.Duration})
	}
	return out
}

// LineItemResponse línea en respuestas.
type LineItemResponse struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Duration string          `json:"duration,omitempty"`
}

// ProposalResponse propuesta en respuestas. TotalValue se deriva de las líneas.
type ProposalResponse struct {
	ID         string             `json:"id"`
	DealID     string             `json:"deal_id"`
	Items      []LineItemResponse `json:"items"`
	TotalValue decimal.Decimal    `json:"total_value"`
	Status     string             `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}

// NewProposalResponse mapea la entidad.
func NewProposalResponse(p entity.Proposal) ProposalResponse {
	items := make([]LineItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, LineItemResponse{Name: it.Name, Price: it.Price, Duration: it.Duration})
	}
	return ProposalResponse{
		ID:         p.ID,
		DealID:     p.DealID,
		Items:      items,
		TotalValue: p.TotalValue(),
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
}
