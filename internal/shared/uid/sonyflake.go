package uid

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sony/sonyflake/v2"
)

var _ UIDGenerator = (*sonyflakeGenerator)(nil)

type sonyflakeGenerator struct {
	sf *sonyflake.Sonyflake
}

// NewSonyflake creates a Sonyflake-based UIDGenerator with an explicit
// machine id instead of the library's private-IP lookup.
func NewSonyflake(machineID int64) (UIDGenerator, error) {
	if machineID < 0 || machineID > 0xFFFF {
		return nil, configErrorf("sonyflake machine id %d out of range [0, 65535]", machineID)
	}

	sf, err := sonyflake.New(sonyflake.Settings{
		StartTime: DefaultEpoch,
		MachineID: func() (int, error) { return int(machineID), nil },
	})
	if err != nil {
		return nil, fmt.Errorf("%w: sonyflake: %v", ErrConfiguration, err)
	}
	return &sonyflakeGenerator{sf: sf}, nil
}

func (g *sonyflakeGenerator) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id, err := g.sf.NextID()
	if err != nil {
		return "", fmt.Errorf("uid: sonyflake: %w", err)
	}
	return strconv.FormatInt(id, 10), nil
}
