package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/inventario-app/inventario-api/internal/application/dto"
	"github.com/inventario-app/inventario-api/internal/infrastructure/redis"
)

// RateLimiter limita peticiones por IP usando un contador en Redis.
// Se aplica al login para frenar fuerza bruta de credenciales. Si Redis
// falla la petición pasa: el limitador no debe tumbar la autenticación.
func RateLimiter(client redis.Client, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "rate-limit:" + c.IP()
		count, err := client.Hit(c.Context(), key, window)
		if err != nil {
			return c.Next()
		}
		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code: "RATE_LIMITED", Message: "demasiados intentos, espera un momento",
			})
		}
		return c.Next()
	}
}
