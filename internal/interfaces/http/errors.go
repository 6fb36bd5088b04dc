package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/domain"
)

// writeError traduce un error del store a su respuesta HTTP.
//
//	InvalidTransition / SchedulingConflict / Duplicate → 409
//	NotFound                                          → 404
//	SelfDeactivationForbidden                         → 403
//	InvalidInput / validación                         → 400
func writeError(c *fiber.Ctx, err error) error {
	var verr *validationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: verr.message, Details: verr.details,
		})
	}

	var conflict *domain.SchedulingConflictError
	switch {
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:               "SCHEDULING_CONFLICT",
			Message:            conflictMessage(conflict.Kind),
			ConflictingClassID: conflict.ClassID,
			ConflictKind:       conflict.Kind,
		})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "la operación no es válida en el estado actual"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el registro ya existe"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrSelfDeactivationForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SELF_DEACTIVATION", Message: "no puedes cambiar el estado de tu propio usuario"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func conflictMessage(kind string) string {
	if kind == domain.ConflictTrainer {
		return "el formador ya tiene una clase en esas fechas"
	}
	return "el aula ya está ocupada en esas fechas"
}
