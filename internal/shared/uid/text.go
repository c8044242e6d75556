package uid

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	_ UIDGenerator = (*ulidGenerator)(nil)
	_ UIDGenerator = (*uuidv7Generator)(nil)
)

type ulidGenerator struct{}

// NewULID creates a UIDGenerator producing 26-character ULIDs.
func NewULID() UIDGenerator {
	return ulidGenerator{}
}

func (ulidGenerator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return ulid.Make().String(), nil
}

type uuidv7Generator struct {
	compact bool
}

// NewUUIDv7 creates a UUID v7-based UIDGenerator. A compact generator
// returns the 32 hex digits without hyphens.
func NewUUIDv7(compact bool) UIDGenerator {
	return uuidv7Generator{compact: compact}
}

func (g uuidv7Generator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("uid: failed to generate uuid v7: %w", err)
	}
	if g.compact {
		return strings.ReplaceAll(id.String(), "-", ""), nil
	}
	return id.String(), nil
}
