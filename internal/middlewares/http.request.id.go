package middlewares

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// NewHTTPRequestIDMiddleware tags each request with a random UUID unless the
// caller already sent one. Request ids never draw from the id generator's
// per-millisecond sequence.
func NewHTTPRequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:    RequestIDHeader,
		Generator: uuid.NewString,
	})
}

func RequestIDFromContext(c fiber.Ctx) string {
	if requestID := requestid.FromContext(c); requestID != "" {
		return requestID
	}
	return c.Get(RequestIDHeader)
}
