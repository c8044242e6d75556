package uid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type LayoutSuite struct{ suite.Suite }

func (s *LayoutSuite) TestValidate_TableDriven() {
	tests := []struct {
		name    string
		layout  Layout
		wantErr string
	}{
		{name: "default layout", layout: DefaultLayout},
		{name: "exactly 52 bits", layout: Layout{TimestampBits: 40, DatacenterBits: 3, WorkerBits: 3, SequenceBits: 6}},
		{name: "no node bits", layout: Layout{TimestampBits: 41, SequenceBits: 11}},
		{name: "missing timestamp bits", layout: Layout{DatacenterBits: 2, WorkerBits: 3, SequenceBits: 6}, wantErr: "timestamp bits"},
		{name: "missing sequence bits", layout: Layout{TimestampBits: 41, DatacenterBits: 2, WorkerBits: 3}, wantErr: "sequence bits"},
		{name: "twitter layout is too wide", layout: Layout{TimestampBits: 41, DatacenterBits: 5, WorkerBits: 5, SequenceBits: 12}, wantErr: "63 bits"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := tc.layout.Validate()
			if tc.wantErr == "" {
				assert.NoError(s.T(), err)
				return
			}
			assert.ErrorIs(s.T(), err, ErrConfiguration)
			assert.ErrorContains(s.T(), err, tc.wantErr)
		})
	}
}

func (s *LayoutSuite) TestCapacities() {
	assert.Equal(s.T(), 52, DefaultLayout.TotalBits())
	assert.Equal(s.T(), int64(3), DefaultLayout.MaxDatacenterID())
	assert.Equal(s.T(), int64(7), DefaultLayout.MaxWorkerID())
	assert.Equal(s.T(), int64(63), DefaultLayout.MaxSequence())
	assert.Equal(s.T(), int64(1)<<41-1, DefaultLayout.MaxTimestamp())
	assert.Greater(s.T(), DefaultLayout.Lifespan(), 69*365*24*time.Hour)

	wide := Layout{TimestampBits: 51, SequenceBits: 1}
	assert.Equal(s.T(), time.Duration(1<<63-1), wide.Lifespan())
}

func TestLayoutSuite(t *testing.T) {
	suite.Run(t, new(LayoutSuite))
}
