package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/adapter/repo/gorm/model"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"

	"gorm.io/gorm"
)

type WorldStateRepo struct {
	db *gorm.DB
}

func NewWorldStateRepo(db *gorm.DB) WorldStateRepo {
	return WorldStateRepo{db: db}
}

func (r WorldStateRepo) GetByWorldID(ctx context.Context, worldID string) (ports.WorldStateRecord, error) {
	var row model.WorldState
	if err := getDBFromCtx(ctx, r.db).Where("world_id = ?", worldID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.WorldStateRecord{}, ports.ErrNotFound
		}
		return ports.WorldStateRecord{}, err
	}
	state, err := decodeExpansionState(row.State)
	if err != nil {
		return ports.WorldStateRecord{}, err
	}
	return ports.WorldStateRecord{
		WorldID:   row.WorldID,
		State:     state,
		Version:   row.Version,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r WorldStateRepo) SaveWithVersion(ctx context.Context, record ports.WorldStateRecord, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	encoded, err := encodeExpansionState(record.State)
	if err != nil {
		return err
	}
	now := time.Now().UTC()

	if expectedVersion == 0 {
		row := model.WorldState{
			WorldID:   record.WorldID,
			State:     encoded,
			Version:   record.Version,
			UpdatedAt: now,
		}
		if err := db.Create(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ports.ErrConflict
			}
			return err
		}
		return nil
	}

	res := db.Model(&model.WorldState{}).
		Where("world_id = ? AND version = ?", record.WorldID, expectedVersion).
		Updates(map[string]any{
			"state":      encoded,
			"version":    record.Version,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func encodeExpansionState(st world.ExpansionState) ([]byte, error) {
	return json.Marshal(st)
}

func decodeExpansionState(data []byte) (world.ExpansionState, error) {
	out := world.NewExpansionState()
	if len(data) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return world.ExpansionState{}, err
	}
	if out.Chunks == nil {
		out.Chunks = map[string]world.ChunkContent{}
	}
	if out.Regions == nil {
		out.Regions = map[int]world.Region{}
	}
	return out, nil
}

var _ ports.WorldStateRepository = WorldStateRepo{}
