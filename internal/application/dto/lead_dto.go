package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// CreateLeadRequest body para POST /api/leads.
type CreateLeadRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	Company    string `json:"company,omitempty" validate:"max=120"`
	Email      string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty"`
	Source     string `json:"source,omitempty"`
	Type       string `json:"type" validate:"required,oneof=Retail Corporate"`
	AssignedTo string `json:"assigned_to,omitempty"`
}

// UpdateLeadContactRequest body para PUT /api/leads/:id.
type UpdateLeadContactRequest struct {
	Name    string `json:"name" validate:"required,max=120"`
	Company string `json:"company,omitempty" validate:"max=120"`
	Email   string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty"`
}

// AdvanceLeadRequest body para POST /api/leads/:id/status.
type AdvanceLeadRequest struct {
	Status string `json:"status" validate:"required"`
}

// ConvertLeadRequest body para POST /api/leads/:id/convert.
type ConvertLeadRequest struct {
	Value decimal.Decimal `json:"value"`
}

// LeadResponse lead en respuestas.
type LeadResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Company    string    `json:"company,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Source     string    `json:"source,omitempty"`
	Type       string    `json:"type"`
	Status     string    `json:"status"`
	AssignedTo string    `json:"assigned_to,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewLeadResponse mapea la entidad.
func NewLeadResponse(l entity.Lead) LeadResponse {
	return LeadResponse{
		ID:         l.ID,
		Name:       l.Name,
		Company:    l.Company,
		Email:      l.Email,
		Phone:      l.Phone,
		Source:     l.Source,
		Type:       l.Type,
		Status:     l.Status,
		AssignedTo: l.AssignedTo,
		CreatedAt:  l.CreatedAt,
	}
}
