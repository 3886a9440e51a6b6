package memory

import (
	"sync"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
)

// Store backs the in-memory repositories. Access runs under the
// TxManager lock, so the repositories themselves do not lock.
type Store struct {
	mu         sync.Mutex
	worlds     map[string]ports.WorldStateRecord
	items      map[string]ports.CustomItemRecord
	structures map[string]ports.CustomStructureRecord
}

func NewStore() *Store {
	return &Store{
		worlds:     make(map[string]ports.WorldStateRecord),
		items:      make(map[string]ports.CustomItemRecord),
		structures: make(map[string]ports.CustomStructureRecord),
	}
}

// SeedWorld installs a world state record, for tests and local runs.
func (s *Store) SeedWorld(record ports.WorldStateRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.worlds[record.WorldID] = record
}
