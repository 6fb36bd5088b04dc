package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de Invoice.
const (
	InvoiceStatusPending = "Pending"
	InvoiceStatusPaid    = "Paid"
)

// Invoice registro de cobro de un Deal (Pending → Paid).
// PaymentDate solo se informa al pasar a Paid.
type Invoice struct {
	ID            string
	DealID        string
	InvoiceNumber string
	Amount        decimal.Decimal
	Status        string
	DueDate       time.Time
	PaymentDate   *time.Time
	CreatedAt     time.Time
}

// IsPaid indica si la factura está pagada.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// FormatInvoiceNumber construye el consecutivo legible (INV-0001).
func FormatInvoiceNumber(seq int) string {
	return fmt.Sprintf("INV-%04d", seq)
}
