package app

import (
	"go.uber.org/fx"

	"github.com/jmoiron/sqlx"

	"github.com/joshuarp/idgen-api/internal/handlers"
	"github.com/joshuarp/idgen-api/internal/services"
	"github.com/joshuarp/idgen-api/internal/shared/config"
	sharedidempotency "github.com/joshuarp/idgen-api/internal/shared/idempotency"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

func IDModule() fx.Option {
	return fx.Module("id",
		fx.Provide(
			fx.Annotate(
				provideIDsPostgresSQLX,
				fx.ResultTags(`name:"db_ids"`),
			),
			fx.Annotate(
				provideIDRateLimiter,
				fx.ResultTags(`name:"ids_rate_limiter"`),
			),
			fx.Annotate(
				provideIdempotencyStore,
				fx.ParamTags(``, `name:"db_ids"`),
				fx.ResultTags(`name:"ids_idempotency_store"`),
				fx.As(new(sharedidempotency.Store)),
			),
			fx.Annotate(
				provideIDIssueService,
				fx.As(new(handlers.IDIssueService)),
			),
			fx.Annotate(
				provideIDDecodeService,
				fx.As(new(handlers.IDDecodeService)),
			),
			handlers.NewIDIssueHandler,
			handlers.NewIDIssueBatchHandler,
			handlers.NewIDDecodeHandler,
		),
		fx.Invoke(registerIDRoutes),
	)
}

func provideIdempotencyStore(cfg config.ConfigProvider, db *sqlx.DB) (*sharedidempotency.SQLXStore, error) {
	return sharedidempotency.NewSQLXStore(db, cfg.GetString("idempotency.table"))
}

func provideIDIssueService(cfg config.ConfigProvider, snowflake *shareduid.Snowflake) *services.IDIssueService {
	return services.NewIDIssueService(snowflake, cfg.GetInt("ids.max_batch"))
}

func provideIDDecodeService(snowflake *shareduid.Snowflake) *services.IDDecodeService {
	return services.NewIDDecodeService(snowflake)
}
