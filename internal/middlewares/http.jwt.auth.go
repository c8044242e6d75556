package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedjwt "github.com/joshuarp/idgen-api/internal/shared/jwt"
)

const (
	localsClientID = "client_id"
	localsClaims   = "jwt_claims"
)

func NewHTTPJWTMiddleware(verifier sharedjwt.Verifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Method() == fiber.MethodPost && strings.HasSuffix(c.Path(), "/auth/token") {
			return c.Next()
		}

		authorizationHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}

		claims, err := verifier.Verify(c.Context(), tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		c.Locals(localsClientID, claims.Subject)
		c.Locals(localsClaims, claims)
		c.SetContext(sharedjwt.SetClaims(c.Context(), claims))
		return c.Next()
	}
}

// RequireScope rejects callers whose token was not granted scope.
func RequireScope(scope string) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, _ := c.Locals(localsClaims).(*sharedjwt.Claims)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing authenticated client",
			})
		}
		if !claims.HasScope(scope) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "insufficient scope",
				"scope": scope,
			})
		}
		return c.Next()
	}
}

// ClientIDFromContext returns the authenticated client id, or "".
func ClientIDFromContext(c fiber.Ctx) string {
	clientID, _ := c.Locals(localsClientID).(string)
	return clientID
}
