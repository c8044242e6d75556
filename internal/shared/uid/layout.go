package uid

import (
	"math"
	"time"
)

// MaxLayoutBits bounds the summed width of every field so a composed
// identifier stays below 2^52 and survives a round trip through an IEEE-754
// double (JavaScript numbers, most JSON decoders).
const MaxLayoutBits = 52

// MaxSafeInteger is the largest integer a double represents exactly.
const MaxSafeInteger = 1<<53 - 1

// DefaultEpoch is the reference instant timestamps are measured from.
var DefaultEpoch = time.Date(2022, time.May, 13, 0, 0, 0, 0, time.UTC)

// Layout describes how the bits of an identifier are split, most significant
// field first: timestamp, datacenter, worker, sequence.
type Layout struct {
	TimestampBits  uint8 `mapstructure:"timestamp_bits" json:"timestamp_bits"`
	DatacenterBits uint8 `mapstructure:"datacenter_bits" json:"datacenter_bits"`
	WorkerBits     uint8 `mapstructure:"worker_bits" json:"worker_bits"`
	SequenceBits   uint8 `mapstructure:"sequence_bits" json:"sequence_bits"`
}

// DefaultLayout gives ~69 years of milliseconds, 4 datacenters of 8 workers
// and 64 identifiers per millisecond per worker.
var DefaultLayout = Layout{
	TimestampBits:  41,
	DatacenterBits: 2,
	WorkerBits:     3,
	SequenceBits:   6,
}

// TotalBits returns the summed width of all fields.
func (l Layout) TotalBits() int {
	return int(l.TimestampBits) + int(l.DatacenterBits) + int(l.WorkerBits) + int(l.SequenceBits)
}

// Validate rejects layouts that cannot address time or sequence, or that
// would produce identifiers wider than MaxLayoutBits.
func (l Layout) Validate() error {
	if l.TimestampBits == 0 {
		return configErrorf("timestamp bits must be positive")
	}
	if l.SequenceBits == 0 {
		return configErrorf("sequence bits must be positive")
	}
	if total := l.TotalBits(); total > MaxLayoutBits {
		return configErrorf("layout uses %d bits, at most %d allowed", total, MaxLayoutBits)
	}
	return nil
}

// MaxDatacenterID is the largest datacenter id the layout can carry.
func (l Layout) MaxDatacenterID() int64 { return mask(l.DatacenterBits) }

// MaxWorkerID is the largest worker id the layout can carry.
func (l Layout) MaxWorkerID() int64 { return mask(l.WorkerBits) }

// MaxSequence is the last sequence value usable within one millisecond.
func (l Layout) MaxSequence() int64 { return mask(l.SequenceBits) }

// MaxTimestamp is the largest millisecond offset from the epoch.
func (l Layout) MaxTimestamp() int64 { return mask(l.TimestampBits) }

// Lifespan is how long after the epoch the layout keeps producing ids.
// Wide timestamp fields saturate at the largest time.Duration.
func (l Layout) Lifespan() time.Duration {
	ms := l.MaxTimestamp()
	if ms > math.MaxInt64/int64(time.Millisecond) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

func mask(bits uint8) int64 {
	return int64(1)<<bits - 1
}
