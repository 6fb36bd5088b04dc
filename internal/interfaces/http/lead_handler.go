package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/application/store"
)

// LeadHandler maneja el ciclo de vida de los leads (protegido).
type LeadHandler struct {
	store *store.Store
}

// NewLeadHandler construye el handler.
func NewLeadHandler(s *store.Store) *LeadHandler {
	return &LeadHandler{store: s}
}

// Create registra un lead New.
// POST /api/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	lead, snap, err := h.store.CreateLead(c.Context(), store.LeadInput{
		Name:       in.Name,
		Company:    in.Company,
		Email:      in.Email,
		Phone:      in.Phone,
		Source:     in.Source,
		Type:       in.Type,
		AssignedTo: in.AssignedTo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusCreated, snap, dto.NewLeadResponse(*lead))
}

// UpdateContact edita los datos de contacto (permitido en cualquier estado).
// PUT /api/leads/:id
func (h *LeadHandler) UpdateContact(c *fiber.Ctx) error {
	var in dto.UpdateLeadContactRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	lead, snap, err := h.store.UpdateLeadContact(c.Context(), c.Params("id"), store.ContactInput{
		Name:    in.Name,
		Company: in.Company,
		Email:   in.Email,
		Phone:   in.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewLeadResponse(*lead))
}

// Advance mueve el lead a un estado posterior.
// POST /api/leads/:id/status
func (h *LeadHandler) Advance(c *fiber.Ctx) error {
	var in dto.AdvanceLeadRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	lead, snap, err := h.store.AdvanceLead(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewLeadResponse(*lead))
}

// MarkLost marca el lead como perdido.
// POST /api/leads/:id/lost
func (h *LeadHandler) MarkLost(c *fiber.Ctx) error {
	lead, snap, err := h.store.MarkLeadLost(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewLeadResponse(*lead))
}

// Convert godoc
// @Summary      Convertir un lead en deal
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "lead id"
// @Param        body  body  dto.ConvertLeadRequest  true  "valor del deal"
// @Success      201   {object}  dto.MutationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/leads/{id}/convert [post]
func (h *LeadHandler) Convert(c *fiber.Ctx) error {
	var in dto.ConvertLeadRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	deal, snap, err := h.store.ConvertLeadToDeal(c.Context(), c.Params("id"), in.Value)
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusCreated, snap, dto.NewDealResponse(*deal))
}
