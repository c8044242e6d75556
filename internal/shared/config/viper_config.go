package config

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var _ ConfigProvider = (*viperConfig)(nil)

type viperConfig struct {
	v         *viper.Viper
	source    string
	callbacks []func()
	mu        sync.RWMutex
	watchOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// Init loads configuration from a YAML file (primary) or .env file (exclusive fallback).
// Returns error if neither file exists or parsing fails.
func Init(opts Options) (ConfigProvider, error) {
	v := viper.New()
	cfg := &viperConfig{
		v:    v,
		done: make(chan struct{}),
	}

	switch {
	case fileExists(opts.YAMLPath):
		v.SetConfigFile(opts.YAMLPath)
		v.SetConfigType("yaml")
		cfg.source = "yaml"
	case fileExists(opts.EnvPath):
		v.SetConfigFile(opts.EnvPath)
		v.SetConfigType("env")
		cfg.source = "env"
	default:
		return nil, fmt.Errorf("config: no config file found (tried %q and %q)", opts.YAMLPath, opts.EnvPath)
	}

	if prefix := strings.TrimSpace(opts.EnvPrefix); prefix != "" {
		v.SetEnvPrefix(prefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read %s file: %w", cfg.source, err)
	}

	return cfg, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (c *viperConfig) GetString(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetString(key)
}

func (c *viperConfig) GetInt(key string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetInt(key)
}

func (c *viperConfig) GetInt64(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetInt64(key)
}

func (c *viperConfig) GetBool(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetBool(key)
}

func (c *viperConfig) GetDuration(key string) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetDuration(key)
}

func (c *viperConfig) GetStringSlice(key string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.GetStringSlice(key)
}

func (c *viperConfig) IsSet(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.v.IsSet(key)
}

func (c *viperConfig) UnmarshalKey(key string, out any) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if err := c.v.UnmarshalKey(key, out); err != nil {
		return fmt.Errorf("config: failed to decode %q: %w", key, err)
	}
	return nil
}

func (c *viperConfig) Source() string { return c.source }

func (c *viperConfig) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.callbacks = append(c.callbacks, fn)
}

func (c *viperConfig) WatchChanges() {
	if c.source != "yaml" {
		return
	}

	c.watchOnce.Do(func() {
		c.v.OnConfigChange(func(fsnotify.Event) {
			if c.stopped() {
				return
			}
			c.reload()
		})
		c.v.WatchConfig()
	})
}

func (c *viperConfig) reload() {
	c.mu.Lock()
	err := c.v.ReadInConfig()
	cbs := make([]func(), len(c.callbacks))
	copy(cbs, c.callbacks)
	c.mu.Unlock()

	// A half-written file fails to parse; the next write event retries.
	if err != nil {
		return
	}

	for _, fn := range cbs {
		if c.stopped() {
			return
		}
		fn()
	}
}

func (c *viperConfig) stopped() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *viperConfig) StopWatching() {
	c.stopOnce.Do(func() { close(c.done) })
}
