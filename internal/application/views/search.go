// Package views calcula las proyecciones de solo lectura que consumen las páginas:
// búsqueda global, feed de notificaciones, filtros de exportación y KPIs del dashboard.
//
// Todas son funciones puras sobre un entity.Snapshot: mismas entradas, misma salida.
package views

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// MaxSearchResults tope de resultados entre todos los tipos de entidad.
const MaxSearchResults = 6

// Tipos de resultado y pestaña destino.
const (
	KindLead    = "lead"
	KindDeal    = "deal"
	KindInvoice = "invoice"
	KindUser    = "user"

	TabLeads    = "leads"
	TabDeals    = "deals"
	TabInvoices = "invoices"
	TabUsers    = "users"
)

// SearchResult coincidencia de la búsqueda global.
type SearchResult struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Tab      string `json:"tab"`
}

// Search busca query como subcadena (sin distinguir mayúsculas) en leads, deals, facturas y
// usuarios, en ese orden, y corta en MaxSearchResults. Una consulta vacía no devuelve nada.
func Search(snap entity.Snapshot, query string) []SearchResult {
	out := []SearchResult{}
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return out
	}
	match := func(fields ...string) bool {
		for _, f := range fields {
			if f != "" && strings.Contains(fold.String(f), q) {
				return true
			}
		}
		return false
	}
	add := func(r SearchResult) bool {
		out = append(out, r)
		return len(out) >= MaxSearchResults
	}

	for _, l := range snap.Leads {
		if match(l.Name, l.Company) && add(SearchResult{Kind: KindLead, ID: l.ID, Title: l.Name, Subtitle: l.Company, Tab: TabLeads}) {
			return out
		}
	}
	for _, d := range snap.Deals {
		if match(d.Title, d.ClientName) && add(SearchResult{Kind: KindDeal, ID: d.ID, Title: d.Title, Subtitle: d.ClientName, Tab: TabDeals}) {
			return out
		}
	}
	for _, i := range snap.Invoices {
		if match(i.InvoiceNumber) && add(SearchResult{Kind: KindInvoice, ID: i.ID, Title: i.InvoiceNumber, Subtitle: i.Status, Tab: TabInvoices}) {
			return out
		}
	}
	for _, u := range snap.Users {
		if match(u.Name, u.Email) && add(SearchResult{Kind: KindUser, ID: u.ID, Title: u.Name, Subtitle: u.Email, Tab: TabUsers}) {
			return out
		}
	}
	return out
}
