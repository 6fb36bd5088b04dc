package http

import (
	"context"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/application/store"
	"github.com/jhoicas/TrainOps-api/internal/application/views"
	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/infrastructure/pdf"
)

// InvoicePDFGenerator genera la representación PDF de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, doc pdf.InvoiceDocument) ([]byte, error)
}

// InvoiceHandler cobros y exportaciones de facturas (protegido).
type InvoiceHandler struct {
	store  *store.Store
	pdf    InvoicePDFGenerator
	issuer string
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(s *store.Store, gen InvoicePDFGenerator, issuer string) *InvoiceHandler {
	return &InvoiceHandler{store: s, pdf: gen, issuer: issuer}
}

// RecordPayment godoc
// @Summary      Registrar el pago de una factura
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "invoice id"
// @Success      200  {object}  dto.MutationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse  "factura ya pagada"
// @Router       /api/invoices/{id}/payment [post]
func (h *InvoiceHandler) RecordPayment(c *fiber.Ctx) error {
	inv, snap, err := h.store.RecordPayment(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewInvoiceResponse(*inv))
}

// List lista facturas filtradas por status y deal_id.
// GET /api/invoices?status=Paid&deal_id=...
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	filter, err := invoiceFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	rows := views.FilterInvoices(h.store.Snapshot(), filter)
	out := make([]dto.InvoiceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewInvoiceResponse(r.Invoice))
	}
	return c.JSON(out)
}

// ExportCSV exporta la vista filtrada de facturas como CSV con cabecera.
// GET /api/invoices/export.csv?status=Pending
func (h *InvoiceHandler) ExportCSV(c *fiber.Ctx) error {
	filter, err := invoiceFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	rows := views.FilterInvoices(h.store.Snapshot(), filter)

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="invoices.csv"`)
	w := csv.NewWriter(c.Response().BodyWriter())
	if err := w.Write([]string{"invoice_number", "client", "deal", "amount", "status", "due_date", "payment_date"}); err != nil {
		return err
	}
	for _, r := range rows {
		paid := ""
		if r.PaymentDate != nil {
			paid = r.PaymentDate.Format(dto.DateLayout)
		}
		record := []string{
			r.InvoiceNumber,
			r.ClientName,
			r.DealTitle,
			r.Amount.StringFixed(2),
			r.Status,
			r.DueDate.Format(dto.DateLayout),
			paid,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// PDF descarga la factura en PDF.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	inv, ok := snap.FindInvoice(c.Params("id"))
	if !ok {
		return writeError(c, domain.ErrNotFound)
	}
	deal, _ := snap.FindDeal(inv.DealID)
	doc := pdf.InvoiceDocument{Issuer: h.issuer, Invoice: inv, Deal: deal, Proposal: acceptedProposal(snap, deal.ID)}

	out, err := h.pdf.GenerateInvoicePDF(c.Context(), doc)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s.pdf"`, inv.InvoiceNumber))
	return c.Send(out)
}

func invoiceFilter(c *fiber.Ctx) (views.InvoiceFilter, error) {
	status := c.Query("status")
	if status != "" && status != entity.InvoiceStatusPending && status != entity.InvoiceStatusPaid {
		return views.InvoiceFilter{}, &validationError{
			message: "status inválido",
			details: map[string]string{"status": "debe ser uno de: Pending Paid"},
		}
	}
	return views.InvoiceFilter{Status: status, DealID: c.Query("deal_id")}, nil
}

func acceptedProposal(snap entity.Snapshot, dealID string) *entity.Proposal {
	for i := range snap.Proposals {
		p := snap.Proposals[i]
		if p.DealID == dealID && p.Status == entity.ProposalStatusAccepted {
			return &p
		}
	}
	return nil
}
