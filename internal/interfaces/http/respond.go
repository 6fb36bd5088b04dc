package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/TrainOps-api/internal/application/dto"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
)

// mutated responde una escritura aplicada con la entidad y la versión del snapshot resultante.
func mutated(c *fiber.Ctx, status int, snap entity.Snapshot, data any) error {
	return c.Status(status).JSON(dto.MutationResponse{Version: snap.Version, Data: data})
}
