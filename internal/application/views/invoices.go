package views

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// InvoiceFilter criterio de la vista de facturas. Campos vacíos no filtran.
type InvoiceFilter struct {
	Status string
	DealID string
}

// InvoiceRow fila exportable: la factura más los datos del deal para mostrar.
type InvoiceRow struct {
	entity.Invoice
	ClientName string
	DealTitle  string
}

// FilterInvoices devuelve las filas que cumplen el filtro, en orden de emisión.
// Es lo único que aporta el store a la exportación; el formato lo decide quien exporta.
func FilterInvoices(snap entity.Snapshot, f InvoiceFilter) []InvoiceRow {
	rows := []InvoiceRow{}
	for _, inv := range snap.Invoices {
		if f.Status != "" && inv.Status != f.Status {
			continue
		}
		if f.DealID != "" && inv.DealID != f.DealID {
			continue
		}
		row := InvoiceRow{Invoice: inv}
		if d, ok := snap.FindDeal(inv.DealID); ok {
			row.ClientName = d.ClientName
			row.DealTitle = d.Title
		}
		rows = append(rows, row)
	}
	return rows
}

// TotalAmount suma el importe de las filas.
func TotalAmount(rows []InvoiceRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}
	return total
}
