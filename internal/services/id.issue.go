package services

import (
	"context"
	"fmt"

	"github.com/joshuarp/idgen-api/internal/domain/vo"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

const DefaultMaxBatch = 1000

type IDGenerator interface {
	NextID() (shareduid.ID, error)
}

type IDIssueService struct {
	generator IDGenerator
	maxBatch  int
}

func NewIDIssueService(generator IDGenerator, maxBatch int) *IDIssueService {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}
	return &IDIssueService{generator: generator, maxBatch: maxBatch}
}

func (s *IDIssueService) MaxBatch() int { return s.maxBatch }

func (s *IDIssueService) Issue(ctx context.Context) (vo.IssuedID, error) {
	if err := ctx.Err(); err != nil {
		return vo.IssuedID{}, err
	}
	id, err := s.generator.NextID()
	if err != nil {
		return vo.IssuedID{}, fmt.Errorf("service: failed to issue id: %w", err)
	}
	return vo.NewIssuedID(id), nil
}

// IssueBatch returns count ids in generation order. A failure midway
// discards the partial batch.
func (s *IDIssueService) IssueBatch(ctx context.Context, count int) (vo.IssuedIDBatch, error) {
	if count < 1 || count > s.maxBatch {
		return vo.IssuedIDBatch{}, fmt.Errorf("%w: count must be between 1 and %d", vo.ErrInvalidBatchSize, s.maxBatch)
	}

	ids := make([]shareduid.ID, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return vo.IssuedIDBatch{}, err
		}
		id, err := s.generator.NextID()
		if err != nil {
			return vo.IssuedIDBatch{}, fmt.Errorf("service: failed to issue id %d of %d: %w", len(ids)+1, count, err)
		}
		ids = append(ids, id)
	}

	return vo.IssuedIDBatch{IDs: ids, Count: len(ids)}, nil
}
