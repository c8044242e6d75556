package uid

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration reports an invalid node identity or bit layout.
	// A generator is never returned together with this error.
	ErrConfiguration = errors.New("uid: invalid configuration")

	// ErrClockRegression reports that the wall clock moved behind the last
	// timestamp used by a generator.
	ErrClockRegression = errors.New("uid: clock moved backwards")

	// ErrTimestampOutOfRange reports a clock reading before the epoch or past
	// the capacity of the timestamp field.
	ErrTimestampOutOfRange = errors.New("uid: timestamp out of range")
)

// ClockRegressionError carries the two millisecond offsets (relative to the
// generator epoch) that exposed a backwards clock.
type ClockRegressionError struct {
	Last    int64
	Current int64
}

func (e *ClockRegressionError) Error() string {
	return fmt.Sprintf("uid: clock moved backwards by %dms (last=%d current=%d)", e.Last-e.Current, e.Last, e.Current)
}

func (e *ClockRegressionError) Is(target error) bool {
	return target == ErrClockRegression
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrConfiguration}, args...)...)
}
