package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// CreateDealRequest body para POST /api/deals (deal sin lead de origen).
type CreateDealRequest struct {
	Title      string          `json:"title" validate:"required,max=200"`
	ClientName string          `json:"client_name,omitempty"`
	Type       string          `json:"type,omitempty" validate:"omitempty,oneof=Retail Corporate"`
	Value      decimal.Decimal `json:"value"`
	AssignedTo string          `json:"assigned_to,omitempty"`
}

// AdvanceDealRequest body para POST /api/deals/:id/stage.
type AdvanceDealRequest struct {
	Stage string `json:"stage" validate:"required"`
}

// DealResponse deal en respuestas.
type DealResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	ClientName string          `json:"client_name"`
	Type       string          `json:"type,omitempty"`
	Value      decimal.Decimal `json:"value"`
	Stage      string          `json:"stage"`
	AssignedTo string          `json:"assigned_to,omitempty"`
	IsPaid     bool            `json:"is_paid"`
	LeadID     string          `json:"lead_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewDealResponse mapea la entidad.
func NewDealResponse(d entity.Deal) DealResponse {
	return DealResponse{
		ID:         d.ID,
		Title:      d.Title,
		ClientName: d.ClientName,
		Type:       d.Type,
		Value:      d.Value,
		Stage:      d.Stage,
		AssignedTo: d.AssignedTo,
		IsPaid:     d.IsPaid,
		LeadID:     d.LeadID,
		CreatedAt:  d.CreatedAt,
	}
}
