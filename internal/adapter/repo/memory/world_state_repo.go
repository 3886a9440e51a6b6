package memory

import (
	"context"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
)

type WorldStateRepo struct {
	store *Store
}

func NewWorldStateRepo(store *Store) WorldStateRepo {
	return WorldStateRepo{store: store}
}

func (r WorldStateRepo) GetByWorldID(_ context.Context, worldID string) (ports.WorldStateRecord, error) {
	record, ok := r.store.worlds[worldID]
	if !ok {
		return ports.WorldStateRecord{}, ports.ErrNotFound
	}
	// deep copy so callers cannot mutate the stored maps
	record.State = record.State.Clone()
	return record, nil
}

func (r WorldStateRepo) SaveWithVersion(_ context.Context, record ports.WorldStateRecord, expectedVersion int64) error {
	current, ok := r.store.worlds[record.WorldID]
	if !ok {
		if expectedVersion != 0 {
			return ports.ErrConflict
		}
	} else if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	record.State = record.State.Clone()
	record.UpdatedAt = time.Now().UTC()
	r.store.worlds[record.WorldID] = record
	return nil
}

var _ ports.WorldStateRepository = WorldStateRepo{}
