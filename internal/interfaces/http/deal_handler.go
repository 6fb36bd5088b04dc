package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/application/store"
)

// DealHandler maneja deals y lo que cuelga de ellos: propuestas, facturas y clase.
type DealHandler struct {
	store *store.Store
}

// NewDealHandler construye el handler.
func NewDealHandler(s *store.Store) *DealHandler {
	return &DealHandler{store: s}
}

// Create crea un deal directo (sin lead).
// POST /api/deals
func (h *DealHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDealRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	deal, snap, err := h.store.CreateDeal(c.Context(), store.DealInput{
		Title:      in.Title,
		ClientName: in.ClientName,
		Type:       in.Type,
		Value:      in.Value,
		AssignedTo: in.AssignedTo,
	})
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusCreated, snap, dto.NewDealResponse(*deal))
}

// AdvanceStage mueve el deal de etapa.
// POST /api/deals/:id/stage
func (h *DealHandler) AdvanceStage(c *fiber.Ctx) error {
	var in dto.AdvanceDealRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	deal, snap, err := h.store.AdvanceDealStage(c.Context(), c.Params("id"), in.Stage)
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewDealResponse(*deal))
}

// CreateProposal envía una propuesta para el deal.
// POST /api/deals/:id/proposals
func (h *DealHandler) CreateProposal(c *fiber.Ctx) error {
	var in dto.CreateProposalRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	p, snap, err := h.store.CreateProposal(c.Context(), c.Params("id"), dto.ToLineItems(in.Items))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusCreated, snap, dto.NewProposalResponse(*p))
}

// RaiseInvoice emite una factura para el deal.
// POST /api/deals/:id/invoices
func (h *DealHandler) RaiseInvoice(c *fiber.Ctx) error {
	var in dto.RaiseInvoiceRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	due, err := parseDate(in.DueDate)
	if err != nil {
		return writeError(c, err)
	}
	inv, snap, err := h.store.RaiseInvoice(c.Context(), c.Params("id"), in.Amount, due)
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusCreated, snap, dto.NewInvoiceResponse(*inv))
}

// ScheduleTraining godoc
// @Summary      Programar la clase de un deal pagado
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "deal id"
// @Param        body  body  dto.ScheduleTrainingRequest  true  "aula, formador y fechas"
// @Success      201   {object}  dto.MutationResponse
// @Failure      409   {object}  dto.ErrorResponse  "INVALID_TRANSITION o SCHEDULING_CONFLICT (con conflicting_class_id)"
// @Router       /api/deals/{id}/training [post]
func (h *DealHandler) ScheduleTraining(c *fiber.Ctx) error {
	var in dto.ScheduleTrainingRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	start, err := parseDate(in.StartDate)
	if err != nil {
		return writeError(c, err)
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return writeError(c, err)
	}
	class, snap, err := h.store.ScheduleTraining(c.Context(), c.Params("id"), store.ScheduleRequest{
		CourseName: in.CourseName,
		TrainerID:  in.TrainerID,
		Classroom:  in.Classroom,
		Hours:      in.Hours,
		StartDate:  start,
		EndDate:    end,
	})
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusCreated, snap, dto.NewTrainingResponse(*class))
}
