package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

const defaultPaymentTerm = 30 * 24 * time.Hour

// RaiseInvoice emite una factura Pending para el deal con el siguiente consecutivo.
// Si dueDate es cero se aplica el plazo por defecto (30 días).
func (s *Store) RaiseInvoice(ctx context.Context, dealID string, amount decimal.Decimal, dueDate time.Time) (*entity.Invoice, entity.Snapshot, error) {
	var out *entity.Invoice
	snap, err := s.run(ctx, "RaiseInvoice", func(r Repos) error {
		if amount.IsNegative() {
			return domain.ErrInvalidInput
		}
		if deal, _ := r.Deals.GetByID(dealID); deal == nil {
			return domain.ErrNotFound
		}
		number, err := r.Invoices.NextNumber()
		if err != nil {
			return err
		}
		now := s.nowFn()
		due := dueDate
		if due.IsZero() {
			due = now.Add(defaultPaymentTerm)
		}
		out = &entity.Invoice{
			ID:            s.newID(),
			DealID:        dealID,
			InvoiceNumber: number,
			Amount:        amount,
			Status:        entity.InvoiceStatusPending,
			DueDate:       due,
			CreatedAt:     now,
		}
		return r.Invoices.Create(out)
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}

// RecordPayment marca la factura como Paid con fecha de pago actual. Si el importe cubre
// el valor del deal, el deal queda pagado. Una factura ya pagada se rechaza (nunca se aplica dos veces).
func (s *Store) RecordPayment(ctx context.Context, invoiceID string) (*entity.Invoice, entity.Snapshot, error) {
	var out *entity.Invoice
	snap, err := s.run(ctx, "RecordPayment", func(r Repos) error {
		inv, _ := r.Invoices.GetByID(invoiceID)
		if inv == nil {
			return domain.ErrNotFound
		}
		if inv.IsPaid() {
			return domain.ErrInvalidTransition
		}
		deal, _ := r.Deals.GetByID(inv.DealID)
		if deal == nil {
			return domain.ErrNotFound
		}

		now := s.nowFn()
		inv.Status = entity.InvoiceStatusPaid
		inv.PaymentDate = &now
		if err := r.Invoices.Update(inv); err != nil {
			return err
		}
		out = inv

		if !deal.IsPaid && inv.Amount.GreaterThanOrEqual(deal.Value) {
			deal.IsPaid = true
			deal.UpdatedAt = now
			return r.Deals.Update(deal)
		}
		return nil
	})
	if err != nil {
		return nil, snap, err
	}
	return out, snap, nil
}
