package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.uber.org/fx"

	"github.com/joshuarp/idgen-api/internal/shared/cache"
	"github.com/joshuarp/idgen-api/internal/shared/config"
	"github.com/joshuarp/idgen-api/internal/shared/nodelease"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

// snowflakeOptions reads the node identity, epoch and layout. The layout
// section is optional; a partial one is rejected by the generator.
func snowflakeOptions(cfg config.ConfigProvider) (shareduid.SnowflakeOptions, error) {
	opts := shareduid.SnowflakeOptions{
		DatacenterID: cfg.GetInt64("snowflake.datacenter_id"),
		WorkerID:     cfg.GetInt64("snowflake.worker_id"),
	}

	if raw := strings.TrimSpace(cfg.GetString("snowflake.epoch")); raw != "" {
		epoch, err := parseEpoch(raw)
		if err != nil {
			return opts, err
		}
		opts.Epoch = epoch
	}

	if cfg.IsSet("snowflake.layout") {
		if err := cfg.UnmarshalKey("snowflake.layout", &opts.Layout); err != nil {
			return opts, fmt.Errorf("app: invalid snowflake.layout: %w", err)
		}
	}

	return opts, nil
}

func parseEpoch(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if epoch, err := time.Parse(layout, raw); err == nil {
			return epoch.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("app: snowflake.epoch %q is neither RFC3339 nor YYYY-MM-DD", raw)
}

func provideSnowflake(cfg config.ConfigProvider, logger *slog.Logger) (*shareduid.Snowflake, error) {
	opts, err := snowflakeOptions(cfg)
	if err != nil {
		return nil, err
	}

	generator, err := shareduid.NewSnowflake(opts)
	if err != nil {
		return nil, fmt.Errorf("app: failed to init snowflake: %w", err)
	}

	info := generator.Info()
	logger.Info("snowflake generator ready",
		"datacenter_id", info.DatacenterID,
		"worker_id", info.WorkerID,
		"epoch", info.Epoch.Format(time.RFC3339),
		"layout", fmt.Sprintf("%d/%d/%d/%d", info.Layout.TimestampBits, info.Layout.DatacenterBits, info.Layout.WorkerBits, info.Layout.SequenceBits),
	)
	return generator, nil
}

// provideUIDGenerator returns the generator used for token ids
// and object names. The snowflake strategy shares the node generator so one
// identity never drives two sequences.
func provideUIDGenerator(cfg config.ConfigProvider, snowflake *shareduid.Snowflake) (shareduid.UIDGenerator, error) {
	strategy, err := shareduid.ParseStrategy(strings.TrimSpace(strings.ToLower(cfg.GetString("uid.strategy"))))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	if strategy == shareduid.StrategySnowflake {
		return snowflake, nil
	}

	nodeID := cfg.GetInt64("uid.node_id")
	if !cfg.IsSet("uid.node_id") {
		info := snowflake.Info()
		nodeID = info.DatacenterID*(info.Layout.MaxWorkerID()+1) + info.WorkerID
	}

	generator, err := shareduid.New(shareduid.Options{
		Strategy: strategy,
		NodeID:   nodeID,
		Compact:  cfg.GetBool("uid.compact"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init uid generator: %w", err)
	}
	return generator, nil
}

// provideNodeLease returns nil when snowflake.lease.enabled is false.
func provideNodeLease(cfg config.ConfigProvider, snowflake *shareduid.Snowflake, store *cache.Store, logger *slog.Logger) (*nodelease.Lease, error) {
	if !cfg.GetBool("snowflake.lease.enabled") {
		return nil, nil
	}

	info := snowflake.Info()
	lease, err := nodelease.New(store, nodelease.Options{
		Prefix:       cfg.GetString("snowflake.lease.prefix"),
		DatacenterID: info.DatacenterID,
		WorkerID:     info.WorkerID,
		TTL:          cfg.GetDuration("snowflake.lease.ttl"),
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("app: failed to init node lease: %w", err)
	}
	return lease, nil
}

type nodeLeaseIn struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Lease      *nodelease.Lease `optional:"true"`
	Logger     *slog.Logger
}

func registerNodeLease(in nodeLeaseIn) {
	if in.Lease == nil {
		return
	}
	lease := in.Lease

	in.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := lease.Acquire(ctx); err != nil {
				return fmt.Errorf("app: %w", err)
			}
			lease.KeepAlive(context.Background(), func(err error) {
				in.Logger.Error("stopping: node identity no longer exclusive", "key", lease.Key(), "error", err)
				if shutdownErr := in.Shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
					in.Logger.Error("failed to request shutdown", "error", shutdownErr)
				}
			})
			in.Logger.Info("node lease acquired", "key", lease.Key())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return lease.Release(ctx)
		},
	})
}

type configWatchIn struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.ConfigProvider
	Snowflake *shareduid.Snowflake
	Logger    *slog.Logger
}

// registerConfigWatch reloads config in the background. The running generator
// keeps its identity; a changed one only takes effect after a restart.
func registerConfigWatch(in configWatchIn) {
	in.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if in.Config.Source() != "yaml" {
				return nil
			}
			in.Config.OnChange(func() {
				warnIdentityChange(in.Config, in.Snowflake.Info(), in.Logger)
			})
			in.Config.WatchChanges()
			return nil
		},
		OnStop: func(context.Context) error {
			in.Config.StopWatching()
			return nil
		},
	})
}

func warnIdentityChange(cfg config.ConfigProvider, running shareduid.NodeInfo, logger *slog.Logger) {
	opts, err := snowflakeOptions(cfg)
	if err != nil {
		logger.Warn("reloaded snowflake config is invalid, keeping running identity", "error", err)
		return
	}

	layout := opts.Layout
	if layout == (shareduid.Layout{}) {
		layout = shareduid.DefaultLayout
	}
	epoch := opts.Epoch
	if epoch.IsZero() {
		epoch = shareduid.DefaultEpoch
	}

	if opts.DatacenterID == running.DatacenterID &&
		opts.WorkerID == running.WorkerID &&
		layout == running.Layout &&
		epoch.Equal(running.Epoch) {
		logger.Info("config reloaded")
		return
	}

	logger.Warn("snowflake identity change ignored until restart",
		"running_datacenter_id", running.DatacenterID,
		"running_worker_id", running.WorkerID,
		"configured_datacenter_id", opts.DatacenterID,
		"configured_worker_id", opts.WorkerID,
	)
}
