package app

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/joshuarp/idgen-api/internal/domain"
	"github.com/joshuarp/idgen-api/internal/handlers"
	"github.com/joshuarp/idgen-api/internal/middlewares"
	"github.com/joshuarp/idgen-api/internal/shared/config"
	sharedidempotency "github.com/joshuarp/idgen-api/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/idgen-api/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/idgen-api/internal/shared/ratelimit"
)

type routerGroupsOut struct {
	fx.Out
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
}

func provideRouterGroups(
	app *fiber.App,
	cfg config.ConfigProvider,
	logger *slog.Logger,
	tokenManager sharedjwt.TokenManager,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRecoveryMiddleware(logger))
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware(cfg.GetStringSlice("cors.allow_origins")))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	protected := api.Group("", middlewares.NewHTTPJWTMiddleware(tokenManager))

	return routerGroupsOut{
		Public:    api,
		Protected: protected,
	}
}

type authRoutesIn struct {
	fx.In
	Public  fiber.Router `name:"api_public"`
	Handler *handlers.AuthTokenHandler
}

func registerAuthRoutes(in authRoutesIn) {
	in.Handler.Register(in.Public)
}

type idRoutesIn struct {
	fx.In
	Protected        fiber.Router            `name:"api_protected"`
	IdempotencyStore sharedidempotency.Store `name:"ids_idempotency_store"`
	RateLimiter      sharedratelimit.Limiter `name:"ids_rate_limiter"`
	Config           config.ConfigProvider
	Logger           *slog.Logger
	IssueHandler     *handlers.IDIssueHandler
	BatchHandler     *handlers.IDIssueBatchHandler
	DecodeHandler    *handlers.IDDecodeHandler
}

func registerIDRoutes(in idRoutesIn) {
	writeScope := middlewares.RequireScope(domain.ScopeIDsWrite)
	rateLimit := middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:      in.RateLimiter,
		Logger:       in.Logger,
		KeyExtractor: middlewares.PerClientKeyExtractor("ids"),
	})

	lockTTL := in.Config.GetDuration("idempotency.lock_ttl")
	if lockTTL <= 0 {
		lockTTL = 30 * time.Second
	}
	idempotency := middlewares.NewHTTPIdempotencyMiddleware(middlewares.IdempotencyConfig{
		Store:   in.IdempotencyStore,
		Scope:   "ids.batch",
		LockTTL: lockTTL,
		Logger:  in.Logger,
	})

	in.IssueHandler.Register(in.Protected, writeScope, rateLimit)
	in.BatchHandler.Register(in.Protected, writeScope, rateLimit, idempotency)
	in.DecodeHandler.Register(in.Protected, middlewares.RequireScope(domain.ScopeIDsRead))
}

type fileRoutesIn struct {
	fx.In
	Protected     fiber.Router `name:"api_protected"`
	UploadHandler *handlers.FileUploadHandler
	DeleteHandler *handlers.FileDeleteHandler
}

func registerFileRoutes(in fileRoutesIn) {
	writeScope := middlewares.RequireScope(domain.ScopeFilesWrite)
	in.UploadHandler.Register(in.Protected, writeScope)
	in.DeleteHandler.Register(in.Protected, writeScope)
}
