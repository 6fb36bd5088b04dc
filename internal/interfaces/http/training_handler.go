package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/application/store"
)

// TrainingHandler avanza clases e inscribe alumnos.
type TrainingHandler struct {
	store *store.Store
}

// NewTrainingHandler construye el handler.
func NewTrainingHandler(s *store.Store) *TrainingHandler {
	return &TrainingHandler{store: s}
}

// Start POST /api/trainings/:id/start
func (h *TrainingHandler) Start(c *fiber.Ctx) error {
	class, snap, err := h.store.StartTraining(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewTrainingResponse(*class))
}

// Complete POST /api/trainings/:id/complete
func (h *TrainingHandler) Complete(c *fiber.Ctx) error {
	class, snap, err := h.store.CompleteTraining(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewTrainingResponse(*class))
}

// Enroll POST /api/trainings/:id/learners
func (h *TrainingHandler) Enroll(c *fiber.Ctx) error {
	var in dto.EnrollLearnerRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	learner, snap, err := h.store.EnrollLearner(c.Context(), c.Params("id"), in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusCreated, snap, dto.NewLearnerResponse(*learner))
}

// CompleteLearner POST /api/learners/:id/complete
func (h *TrainingHandler) CompleteLearner(c *fiber.Ctx) error {
	learner, snap, err := h.store.CompleteLearner(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return mutated(c, fiber.StatusOK, snap, dto.NewLearnerResponse(*learner))
}
