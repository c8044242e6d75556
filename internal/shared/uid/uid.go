package uid

import (
	"context"
	"fmt"
)

// Strategy defines which UID generation algorithm to use.
type Strategy string

const (
	// StrategySnowflake is the JSON-safe generator in this package.
	StrategySnowflake Strategy = "snowflake"
	// StrategyTwitter is the classic 63-bit layout (41/10/12).
	StrategyTwitter   Strategy = "twitter"
	StrategySonyflake Strategy = "sonyflake"
	StrategyULID      Strategy = "ulid"
	StrategyUUIDv7    Strategy = "uuidv7"
)

// Options configures the UID generator.
type Options struct {
	// Strategy selects the generation algorithm.
	Strategy Strategy

	// Snowflake configures StrategySnowflake.
	Snowflake SnowflakeOptions

	// NodeID identifies this process for StrategyTwitter (0–1023) and
	// StrategySonyflake (0–65535).
	NodeID int64

	// Compact drops the hyphens from UUIDv7 strings.
	Compact bool
}

// UIDGenerator is the interface consumers depend on for generating unique identifiers.
// Implementations must be safe for concurrent use.
type UIDGenerator interface {
	// Generate returns a new unique identifier as a string.
	Generate(ctx context.Context) (string, error)
}

// New creates a UIDGenerator based on the provided options.
// Returns an error if the strategy is unknown or configuration is invalid.
func New(opts Options) (UIDGenerator, error) {
	switch opts.Strategy {
	case StrategySnowflake, "":
		return NewSnowflake(opts.Snowflake)
	case StrategyTwitter:
		return NewTwitter(opts.NodeID)
	case StrategySonyflake:
		return NewSonyflake(opts.NodeID)
	case StrategyULID:
		return NewULID(), nil
	case StrategyUUIDv7:
		return NewUUIDv7(opts.Compact), nil
	default:
		return nil, fmt.Errorf("uid: unknown strategy %q", opts.Strategy)
	}
}

// ParseStrategy normalizes a configured strategy name, falling back to
// StrategySnowflake for empty input.
func ParseStrategy(value string) (Strategy, error) {
	switch s := Strategy(value); s {
	case "":
		return StrategySnowflake, nil
	case StrategySnowflake, StrategyTwitter, StrategySonyflake, StrategyULID, StrategyUUIDv7:
		return s, nil
	default:
		return "", fmt.Errorf("uid: unknown strategy %q", value)
	}
}
