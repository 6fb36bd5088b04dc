package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SimulatedLatency retrasa la respuesta de las escrituras d después de que el handler terminó.
// La mutación ya está aplicada cuando empieza la espera; solo se demora lo que ve el cliente.
func SimulatedLatency(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if d <= 0 || c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
			return err
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-c.Context().Done():
		}
		return err
	}
}
