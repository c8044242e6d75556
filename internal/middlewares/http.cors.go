package middlewares

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

func NewHTTPCORSMiddleware(allowOrigins []string) fiber.Handler {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	return cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", IdempotencyKeyHeader, RequestIDHeader},
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodDelete, fiber.MethodOptions},
		ExposeHeaders: []string{
			RequestIDHeader,
			"X-RateLimit-Limit",
			"X-RateLimit-Remaining",
			"X-RateLimit-Reset",
			fiber.HeaderRetryAfter,
		},
	})
}
