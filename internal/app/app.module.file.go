package app

import (
	"go.uber.org/fx"

	"github.com/joshuarp/idgen-api/internal/handlers"
	"github.com/joshuarp/idgen-api/internal/services"
	"github.com/joshuarp/idgen-api/internal/shared/config"
	sharedstorage "github.com/joshuarp/idgen-api/internal/shared/storage"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

func FileModule() fx.Option {
	return fx.Module("file",
		fx.Provide(
			provideObjectStorage,
			fx.Annotate(
				provideFileObjectService,
				fx.As(new(handlers.FileObjectService)),
			),
			handlers.NewFileUploadHandler,
			handlers.NewFileDeleteHandler,
		),
		fx.Invoke(registerStorageBootstrap),
		fx.Invoke(registerFileRoutes),
	)
}

func provideFileObjectService(cfg config.ConfigProvider, storage *sharedstorage.Storage, names shareduid.UIDGenerator) *services.FileObjectService {
	return services.NewFileObjectService(storage, names, maxUploadSize(cfg))
}
