package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/application/roles"
	"github.com/jhoicas/TrainOps-api/internal/application/store"
	"github.com/jhoicas/TrainOps-api/internal/application/views"
)

// ViewHandler expone las lecturas puras: snapshot y proyecciones derivadas.
type ViewHandler struct {
	store *store.Store
	reads *views.ReadTracker
}

// NewViewHandler construye el handler.
func NewViewHandler(s *store.Store, reads *views.ReadTracker) *ViewHandler {
	return &ViewHandler{store: s, reads: reads}
}

// Snapshot GET /api/snapshot
func (h *ViewHandler) Snapshot(c *fiber.Ctx) error {
	return c.JSON(dto.NewSnapshotResponse(h.store.Snapshot()))
}

// Search busca en leads, deals, facturas y usuarios (máx. 6 resultados).
// GET /api/search?q=acme
func (h *ViewHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	return c.JSON(dto.SearchResponse{Query: q, Results: views.Search(h.store.Snapshot(), q)})
}

// Notifications devuelve el feed con los no leídos del usuario de la sesión.
// GET /api/notifications
func (h *ViewHandler) Notifications(c *fiber.Ctx) error {
	feed := views.Notifications(h.store.Snapshot())
	return c.JSON(dto.NotificationsResponse{
		Items:       feed,
		UnreadCount: h.reads.UnreadCount(GetUserID(c), feed),
	})
}

// MarkAllRead marca como leído todo el feed visible.
// POST /api/notifications/read
func (h *ViewHandler) MarkAllRead(c *fiber.Ctx) error {
	feed := views.Notifications(h.store.Snapshot())
	h.reads.MarkAllRead(GetUserID(c), feed)
	return c.JSON(dto.NotificationsResponse{Items: feed, UnreadCount: 0})
}

// Navigation menú y dashboard del rol vigente.
// GET /api/navigation
func (h *ViewHandler) Navigation(c *fiber.Ctx) error {
	p, err := roles.Project(GetRole(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(p)
}

// Dashboard KPIs de inicio.
// GET /api/dashboard
func (h *ViewHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(views.Dashboard(h.store.Snapshot()))
}
