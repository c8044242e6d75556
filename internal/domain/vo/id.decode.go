package vo

import (
	"time"

	"github.com/joshuarp/idgen-api/internal/shared/uid"
)

type DecodedID struct {
	ID           uid.ID    `json:"id"`
	IDString     string    `json:"id_str"`
	Timestamp    time.Time `json:"timestamp"`
	ElapsedMs    int64     `json:"elapsed_ms"`
	DatacenterID int64     `json:"datacenter_id"`
	WorkerID     int64     `json:"worker_id"`
	Sequence     int64     `json:"sequence"`
}

type NodeInfo struct {
	DatacenterID int64      `json:"datacenter_id"`
	WorkerID     int64      `json:"worker_id"`
	Epoch        time.Time  `json:"epoch"`
	Layout       uid.Layout `json:"layout"`
	MaxID        uid.ID     `json:"max_id"`
	ValidUntil   time.Time  `json:"valid_until"`
	IDsPerMs     int64      `json:"ids_per_ms"`
}
