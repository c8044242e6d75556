package uid

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var _ UIDGenerator = (*twitterGenerator)(nil)

type twitterGenerator struct {
	node *snowflake.Node
}

// NewTwitter creates a UIDGenerator on the classic 63-bit Snowflake layout.
// Its ids exceed MaxSafeInteger, so they are only handed out as strings.
// nodeID must be unique per node in a distributed setup (0–1023).
func NewTwitter(nodeID int64) (UIDGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("%w: twitter node: %v", ErrConfiguration, err)
	}
	return &twitterGenerator{node: node}, nil
}

func (g *twitterGenerator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return g.node.Generate().String(), nil
}
