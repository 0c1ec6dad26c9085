package reporting

import (
	"sync"
	"time"

	"github.com/medibill/revenue-dashboard-api/internal/domain"
	"github.com/medibill/revenue-dashboard-api/pkg/utils"
)

// Snapshot is one scheduler-built report kept in memory for the read-only
// dashboard endpoint. The on-demand report path never reads snapshots.
type Snapshot struct {
	ID          string              `json:"id"`
	Month       string              `json:"month"`
	MonthLabel  string              `json:"month_label"`
	GeneratedAt time.Time           `json:"generated_at"`
	Rows        []domain.RevenueRow `json:"rows"`
}

// SnapshotStore holds the latest snapshot. A newer snapshot simply replaces
// the previous one.
type SnapshotStore struct {
	mutex  sync.RWMutex
	latest *Snapshot
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Save stores a new snapshot for the given month and returns it
func (s *SnapshotStore) Save(month domain.Month, rows []domain.RevenueRow) *Snapshot {
	id, err := utils.GenerateID()
	if err != nil {
		id = time.Now().UTC().Format("20060102150405")
	}

	snapshot := &Snapshot{
		ID:          id,
		Month:       month.Token(),
		MonthLabel:  month.Label(),
		GeneratedAt: time.Now().UTC(),
		Rows:        rows,
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.latest = snapshot

	return snapshot
}

// Latest returns the most recent snapshot, or nil when none was built yet
func (s *SnapshotStore) Latest() *Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.latest
}
