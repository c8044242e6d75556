package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/idgen-api/internal/shared/config"
	sharedstorage "github.com/joshuarp/idgen-api/internal/shared/storage"
)

func storageOptions(cfg config.ConfigProvider) sharedstorage.Options {
	return sharedstorage.Options{
		Endpoint:      strings.TrimSpace(cfg.GetString("minio.endpoint")),
		AccessKey:     cfg.GetString("minio.access_key"),
		SecretKey:     cfg.GetString("minio.secret_key"),
		Region:        cfg.GetString("minio.region"),
		UseSSL:        cfg.GetBool("minio.use_ssl"),
		DefaultBucket: cfg.GetString("minio.default_bucket"),
		CustomDomain:  cfg.GetString("minio.custom_domain"),
	}
}

func provideObjectStorage(cfg config.ConfigProvider, logger *slog.Logger) (*sharedstorage.Storage, error) {
	opts := storageOptions(cfg)

	client, err := sharedstorage.NewMinioClient(opts)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	return sharedstorage.New(client, opts, logger)
}

type storageBootstrapIn struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.ConfigProvider
	Storage   *sharedstorage.Storage
	Logger    *slog.Logger
}

// registerStorageBootstrap creates the default bucket on start so the first
// upload does not pay for it.
func registerStorageBootstrap(in storageBootstrapIn) {
	in.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			bucket, err := in.Storage.Bucket("")
			if err != nil {
				in.Logger.Info("no default bucket configured, buckets are created on first upload")
				return nil
			}
			if err := in.Storage.EnsureBucket(ctx, bucket); err != nil {
				if in.Config.GetBool("minio.require_on_start") {
					return fmt.Errorf("app: %w", err)
				}
				in.Logger.Warn("object storage not reachable on start", "bucket", bucket, "error", err)
			}
			return nil
		},
	})
}
