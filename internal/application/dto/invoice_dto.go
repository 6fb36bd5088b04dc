package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// RaiseInvoiceRequest body para POST /api/deals/:id/invoices.
// DueDate es opcional (YYYY-MM-DD); vacío aplica el plazo por defecto.
type RaiseInvoiceRequest struct {
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// InvoiceResponse factura en respuestas.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	DealID        string          `json:"deal_id"`
	InvoiceNumber string          `json:"invoice_number"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	DueDate       string          `json:"due_date"`
	PaymentDate   *time.Time      `json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NewInvoiceResponse mapea la entidad.
func NewInvoiceResponse(i entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID,
		DealID:        i.DealID,
		InvoiceNumber: i.InvoiceNumber,
		Amount:        i.Amount,
		Status:        i.Status,
		DueDate:       i.DueDate.Format(DateLayout),
		PaymentDate:   i.PaymentDate,
		CreatedAt:     i.CreatedAt,
	}
}
