package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/joshuarp/idgen-api/internal/shared/config"
	sharedjwt "github.com/joshuarp/idgen-api/internal/shared/jwt"
	sharedlog "github.com/joshuarp/idgen-api/internal/shared/log"
	sharedsecret "github.com/joshuarp/idgen-api/internal/shared/secret"
)

const (
	envPrefix = "IDGEN"

	defaultMaxUploadSize int64 = 10 << 20
)

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

func New(bin string, modules ...fx.Option) *fx.App {
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				NormalizeBin(bin),
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
	}
	opts = append(opts, modules...)
	opts = append(opts,
		fx.Invoke(registerResourceCleanup),
		fx.Invoke(registerConfigWatch),
		fx.Invoke(registerNodeLease),
		fx.Invoke(registerLifecycle),
	)
	return fx.New(opts...)
}

// NormalizeBin maps the -bin flag to "id", "file" or "all".
func NormalizeBin(bin string) string {
	switch normalized := strings.TrimSpace(strings.ToLower(bin)); normalized {
	case "id", "ids":
		return "id"
	case "file", "files":
		return "file"
	default:
		return "all"
	}
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewLogger,
			provideRedisClient,
			provideCacheStore,
			provideSnowflake,
			provideUIDGenerator,
			provideNodeLease,
			provideFiberApp,
			provideSecretHasher,
			provideJWTTokenManager,
			provideRouterGroups,
		),
	)
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	bin := NormalizeBin(in.Bin)

	loadOrder := make([]config.Options, 0, 4)
	if bin != "all" {
		loadOrder = append(loadOrder,
			config.Options{
				YAMLPath:  fmt.Sprintf("config.%s.yaml", bin),
				EnvPath:   fmt.Sprintf(".env.%s", bin),
				EnvPrefix: envPrefix,
			},
			config.Options{
				YAMLPath:  fmt.Sprintf("config.%s.yaml.example", bin),
				EnvPath:   fmt.Sprintf(".env.%s.example", bin),
				EnvPrefix: envPrefix,
			},
		)
	}

	loadOrder = append(loadOrder,
		config.Options{
			YAMLPath:  "config.yaml",
			EnvPath:   ".env",
			EnvPrefix: envPrefix,
		},
		config.Options{
			YAMLPath:  "config.yaml.example",
			EnvPath:   ".env.example",
			EnvPrefix: envPrefix,
		},
	)

	var lastErr error
	for _, opts := range loadOrder {
		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func provideFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	// multipart framing needs headroom above the largest accepted file
	bodyLimit := maxUploadSize(cfg) + 1<<20

	return fiber.New(fiber.Config{
		AppName:      cfg.GetString("app.name"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		BodyLimit:    int(bodyLimit),
	})
}

func maxUploadSize(cfg config.ConfigProvider) int64 {
	size := cfg.GetInt64("files.max_size")
	if size <= 0 {
		return defaultMaxUploadSize
	}
	return size
}

func provideSecretHasher(cfg config.ConfigProvider) (sharedsecret.Hasher, error) {
	return sharedsecret.New(sharedsecret.Options{
		Strategy: sharedsecret.StrategyBcrypt,
		Cost:     cfg.GetInt("security.bcrypt_cost"),
	})
}

func provideJWTTokenManager(cfg config.ConfigProvider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetString("security.jwt.secret")
	if secret == "" {
		secret = cfg.GetString("jwt.secret")
	}
	if secret == "" {
		secret = "change-me-please-use-strong-secret-in-production"
	}

	if len(secret) < 32 {
		secret = secret + strings.Repeat("x", 32-len(secret))
	}

	ttl := cfg.GetDuration("security.jwt.ttl")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(secret),
		Algorithm: "HS256",
		TTL:       ttl,
		Issuer:    cfg.GetString("security.jwt.issuer"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}
