package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/joshuarp/idgen-api/internal/domain/vo"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

type IDInspector interface {
	Decode(id shareduid.ID) shareduid.Parts
	Info() shareduid.NodeInfo
}

type IDDecodeService struct {
	inspector IDInspector
}

func NewIDDecodeService(inspector IDInspector) *IDDecodeService {
	return &IDDecodeService{inspector: inspector}
}

// Decode splits an id issued under this node's epoch and layout.
func (s *IDDecodeService) Decode(_ context.Context, raw string) (vo.DecodedID, error) {
	id, err := shareduid.ParseID(strings.TrimSpace(raw))
	if err != nil {
		return vo.DecodedID{}, fmt.Errorf("%w: %v", vo.ErrInvalidID, err)
	}
	if maxID := s.inspector.Info().MaxID; id > maxID {
		return vo.DecodedID{}, fmt.Errorf("%w: %d exceeds layout maximum %d", vo.ErrInvalidID, id, maxID)
	}

	parts := s.inspector.Decode(id)
	return vo.DecodedID{
		ID:           id,
		IDString:     id.String(),
		Timestamp:    parts.Time,
		ElapsedMs:    parts.Elapsed,
		DatacenterID: parts.DatacenterID,
		WorkerID:     parts.WorkerID,
		Sequence:     parts.Sequence,
	}, nil
}

func (s *IDDecodeService) Node(_ context.Context) vo.NodeInfo {
	info := s.inspector.Info()
	return vo.NodeInfo{
		DatacenterID: info.DatacenterID,
		WorkerID:     info.WorkerID,
		Epoch:        info.Epoch,
		Layout:       info.Layout,
		MaxID:        info.MaxID,
		ValidUntil:   info.Epoch.Add(info.Layout.Lifespan()),
		IDsPerMs:     info.Layout.MaxSequence() + 1,
	}
}
