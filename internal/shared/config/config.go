package config

import "time"

// Options configures the config loader.
type Options struct {
	// YAMLPath is the path to the primary YAML config file.
	YAMLPath string

	// EnvPath is the path to the fallback .env file, used only when YAML is absent.
	EnvPath string

	// EnvPrefix enables environment overrides for every key: with prefix
	// "IDGEN", snowflake.worker_id is read from IDGEN_SNOWFLAKE_WORKER_ID.
	// Empty disables overrides.
	EnvPrefix string
}

// ConfigProvider is the interface consumers depend on for reading configuration.
// Implementations must be safe for concurrent use.
type ConfigProvider interface {
	GetString(key string) string
	GetInt(key string) int
	GetInt64(key string) int64
	GetBool(key string) bool
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string

	// IsSet checks whether the key is set in the config.
	IsSet(key string) bool

	// UnmarshalKey decodes the section under key into out, honoring
	// mapstructure tags.
	UnmarshalKey(key string, out any) error

	// WatchChanges starts watching the config file for changes (YAML only).
	// Non-blocking: spawns a background goroutine.
	WatchChanges()

	// OnChange registers a callback that fires after a successful config reload.
	// Callbacks run in registration order.
	OnChange(fn func())

	// StopWatching stops delivering reload callbacks.
	StopWatching()

	// Source returns which config source is active: "yaml" or "env".
	Source() string
}
