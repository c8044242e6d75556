package uid

import (
	"context"
	"fmt"
	"sync"
	"time"
)

var _ UIDGenerator = (*Snowflake)(nil)

// SnowflakeOptions identifies a generator within the fleet and fixes its bit
// layout. DatacenterID and WorkerID must be unique per running process; this
// package does not coordinate them (see the nodelease package for that).
type SnowflakeOptions struct {
	DatacenterID int64
	WorkerID     int64

	// Epoch defaults to DefaultEpoch when zero.
	Epoch time.Time

	// Layout defaults to DefaultLayout when zero.
	Layout Layout

	// Now defaults to time.Now. Tests inject a controllable clock.
	Now func() time.Time
}

// Parts is an identifier split back into its fields.
type Parts struct {
	Time         time.Time
	Elapsed      int64
	DatacenterID int64
	WorkerID     int64
	Sequence     int64
}

// NodeInfo describes the identity and layout of a generator.
type NodeInfo struct {
	DatacenterID int64
	WorkerID     int64
	Epoch        time.Time
	Layout       Layout
	MaxID        ID
}

// Snowflake produces time-ordered identifiers that stay below 2^53.
// A single instance is safe for concurrent use and must be the only generator
// running under its (datacenter, worker) pair.
type Snowflake struct {
	layout       Layout
	epoch        time.Time
	epochMillis  int64
	datacenterID int64
	workerID     int64
	now          func() time.Time

	workerShift     uint8
	datacenterShift uint8
	timestampShift  uint8

	mu            sync.Mutex
	lastTimestamp int64
	sequence      int64
}

// NewSnowflake validates opts and returns a ready generator.
func NewSnowflake(opts SnowflakeOptions) (*Snowflake, error) {
	layout := opts.Layout
	if layout == (Layout{}) {
		layout = DefaultLayout
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	if opts.DatacenterID < 0 || opts.DatacenterID > layout.MaxDatacenterID() {
		return nil, configErrorf("datacenter id %d out of range [0, %d]", opts.DatacenterID, layout.MaxDatacenterID())
	}
	if opts.WorkerID < 0 || opts.WorkerID > layout.MaxWorkerID() {
		return nil, configErrorf("worker id %d out of range [0, %d]", opts.WorkerID, layout.MaxWorkerID())
	}

	epoch := opts.Epoch
	if epoch.IsZero() {
		epoch = DefaultEpoch
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	if now().Before(epoch) {
		return nil, configErrorf("epoch %s is in the future", epoch.UTC().Format(time.RFC3339))
	}

	return &Snowflake{
		layout:          layout,
		epoch:           epoch.UTC(),
		epochMillis:     epoch.UnixMilli(),
		datacenterID:    opts.DatacenterID,
		workerID:        opts.WorkerID,
		now:             now,
		workerShift:     layout.SequenceBits,
		datacenterShift: layout.SequenceBits + layout.WorkerBits,
		timestampShift:  layout.SequenceBits + layout.WorkerBits + layout.DatacenterBits,
		lastTimestamp:   -1,
	}, nil
}

// NextID returns a new identifier. It fails with a *ClockRegressionError when
// the clock reads earlier than the previous call; when the sequence for the
// current millisecond is exhausted it waits for the next millisecond.
func (s *Snowflake) NextID() (ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.elapsed()
	if ts < s.lastTimestamp {
		return 0, &ClockRegressionError{Last: s.lastTimestamp, Current: ts}
	}

	sequence := int64(0)
	if ts == s.lastTimestamp {
		sequence = (s.sequence + 1) & s.layout.MaxSequence()
		if sequence == 0 {
			next, err := s.waitAfter(s.lastTimestamp)
			if err != nil {
				return 0, err
			}
			ts = next
		}
	}

	if ts < 0 || ts > s.layout.MaxTimestamp() {
		return 0, fmt.Errorf("%w: %dms since epoch", ErrTimestampOutOfRange, ts)
	}

	s.lastTimestamp = ts
	s.sequence = sequence

	return s.compose(ts, sequence), nil
}

// Generate implements UIDGenerator with the decimal form of NextID.
func (s *Snowflake) Generate(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id, err := s.NextID()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Decode splits id into its fields using this generator's epoch and layout.
func (s *Snowflake) Decode(id ID) Parts {
	v := int64(id)
	elapsed := v >> s.timestampShift
	return Parts{
		Time:         time.UnixMilli(s.epochMillis + elapsed).UTC(),
		Elapsed:      elapsed,
		DatacenterID: (v >> s.datacenterShift) & s.layout.MaxDatacenterID(),
		WorkerID:     (v >> s.workerShift) & s.layout.MaxWorkerID(),
		Sequence:     v & s.layout.MaxSequence(),
	}
}

// Info reports the generator identity and layout.
func (s *Snowflake) Info() NodeInfo {
	return NodeInfo{
		DatacenterID: s.datacenterID,
		WorkerID:     s.workerID,
		Epoch:        s.epoch,
		Layout:       s.layout,
		MaxID:        ID(int64(1)<<s.layout.TotalBits() - 1),
	}
}

func (s *Snowflake) compose(ts, sequence int64) ID {
	return ID(ts<<s.timestampShift |
		s.datacenterID<<s.datacenterShift |
		s.workerID<<s.workerShift |
		sequence)
}

func (s *Snowflake) elapsed() int64 {
	return s.now().UnixMilli() - s.epochMillis
}

// waitAfter spins until the clock passes last. Called with mu held; the wait
// is bounded by one millisecond on a healthy clock. A reading behind last
// ends the wait with a *ClockRegressionError.
func (s *Snowflake) waitAfter(last int64) (int64, error) {
	ts := s.elapsed()
	for ts <= last {
		if ts < last {
			return 0, &ClockRegressionError{Last: last, Current: ts}
		}
		ts = s.elapsed()
	}
	return ts, nil
}
