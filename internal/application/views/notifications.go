package views

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// Severidades del feed.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
)

// KindTraining tipo de las notificaciones de clases.
const KindTraining = "training"

const feedWindow = 2 // últimos leads y últimas facturas pagadas del feed

// Notification entrada del feed. No es una entidad: se recalcula en cada snapshot.
type Notification struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RefID     string    `json:"ref_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Notifications arma el feed: los 2 últimos leads (info), las 2 últimas facturas pagadas
// (success) y todas las clases planificadas (warning), de más reciente a más antigua.
// Los empates se ordenan por ID para que el resultado sea estable.
func Notifications(snap entity.Snapshot) []Notification {
	feed := []Notification{}

	leads := snap.Leads
	if len(leads) > feedWindow {
		leads = leads[len(leads)-feedWindow:]
	}
	for _, l := range leads {
		feed = append(feed, Notification{
			ID:        "lead-" + l.ID,
			Kind:      KindLead,
			Severity:  SeverityInfo,
			Title:     "Nuevo lead",
			Message:   fmt.Sprintf("%s (%s)", l.Name, l.Type),
			RefID:     l.ID,
			Timestamp: l.CreatedAt,
		})
	}

	var paid []entity.Invoice
	for _, i := range snap.Invoices {
		if i.IsPaid() && i.PaymentDate != nil {
			paid = append(paid, i)
		}
	}
	sort.SliceStable(paid, func(a, b int) bool {
		pa, pb := *paid[a].PaymentDate, *paid[b].PaymentDate
		if !pa.Equal(pb) {
			return pa.After(pb)
		}
		return paid[a].ID > paid[b].ID
	})
	if len(paid) > feedWindow {
		paid = paid[:feedWindow]
	}
	for _, i := range paid {
		feed = append(feed, Notification{
			ID:        "invoice-" + i.ID,
			Kind:      KindInvoice,
			Severity:  SeveritySuccess,
			Title:     "Factura pagada",
			Message:   fmt.Sprintf("%s por %s", i.InvoiceNumber, i.Amount.StringFixed(2)),
			RefID:     i.ID,
			Timestamp: *i.PaymentDate,
		})
	}

	for _, c := range snap.Trainings {
		if !c.IsPlanned() {
			continue
		}
		feed = append(feed, Notification{
			ID:        "training-" + c.ID,
			Kind:      KindTraining,
			Severity:  SeverityWarning,
			Title:     "Clase planificada",
			Message:   fmt.Sprintf("%s en aula %s desde %s", c.CourseName, c.Classroom, c.StartDate.Format("2006-01-02")),
			RefID:     c.ID,
			Timestamp: c.StartDate,
		})
	}

	sort.SliceStable(feed, func(a, b int) bool {
		if !feed[a].Timestamp.Equal(feed[b].Timestamp) {
			return feed[a].Timestamp.After(feed[b].Timestamp)
		}
		return feed[a].ID < feed[b].ID
	})
	return feed
}

// ReadSet IDs de notificación ya vistos. "Leído" es propiedad del lector, no del registro.
type ReadSet map[string]struct{}

// MarkAllRead añade al set todos los IDs visibles en el feed.
func (s ReadSet) MarkAllRead(feed []Notification) {
	for _, n := range feed {
		s[n.ID] = struct{}{}
	}
}

// Has indica si el ID ya fue leído.
func (s ReadSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// UnreadCount = |feed| − |feed ∩ readSet|.
func UnreadCount(feed []Notification, read ReadSet) int {
	n := len(feed)
	for _, item := range feed {
		if read.Has(item.ID) {
			n--
		}
	}
	return n
}

// ReadTracker guarda un ReadSet por usuario, fuera del store.
type ReadTracker struct {
	mu   sync.Mutex
	sets map[string]ReadSet
}

// NewReadTracker construye un tracker vacío.
func NewReadTracker() *ReadTracker {
	return &ReadTracker{sets: map[string]ReadSet{}}
}

// MarkAllRead marca como leído todo el feed visible para viewerID.
func (t *ReadTracker) MarkAllRead(viewerID string, feed []Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()
	set, ok := t.sets[viewerID]
	if !ok {
		set = ReadSet{}
		t.sets[viewerID] = set
	}
	set.MarkAllRead(feed)
}

// ReadSet devuelve una copia del set de viewerID.
func (t *ReadTracker) ReadSet(viewerID string) ReadSet {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := ReadSet{}
	for id := range t.sets[viewerID] {
		out[id] = struct{}{}
	}
	return out
}

// UnreadCount cuenta los no leídos de feed para viewerID.
func (t *ReadTracker) UnreadCount(viewerID string, feed []Notification) int {
	return UnreadCount(feed, t.ReadSet(viewerID))
}
