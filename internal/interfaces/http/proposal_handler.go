package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/application/store"
)

// ProposalHandler edita y resuelve propuestas.
type ProposalHandler struct {
	store *store.Store
}

// NewProposalHandler construye el handler.
func NewProposalHandler(s *store.Store) *ProposalHandler {
	return &ProposalHandler{store: s}
}

// UpdateItems reemplaza las líneas de una propuesta Sent.
// PUT /api/proposals/:id
func (h *ProposalHandler) UpdateItems(c *fiber.Ctx) error {
	var in dto.UpdateProposalRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	p, snap, err := h.store.UpdateProposalItems(c.Context(), c.Params("id"), dto.ToLineItems(in.Items))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewProposalResponse(*p))
}

// Accept acepta la propuesta. Repetir la llamada devuelve 200 sin cambios.
// POST /api/proposals/:id/accept
func (h *ProposalHandler) Accept(c *fiber.Ctx) error {
	p, snap, err := h.store.AcceptProposal(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewProposalResponse(*p))
}

// Reject rechaza la propuesta.
// POST /api/proposals/:id/reject
func (h *ProposalHandler) Reject(c *fiber.Ctx) error {
	p, snap, err := h.store.RejectProposal(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewProposalResponse(*p))
}
