package ports

import (
	"context"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

// WorldStateRecord is the persisted expansion state of one world plus
// its optimistic-lock version.
type WorldStateRecord struct {
	WorldID   string
	State     world.ExpansionState
	Version   int64
	UpdatedAt time.Time
}

type WorldStateRepository interface {
	GetByWorldID(ctx context.Context, worldID string) (WorldStateRecord, error)
	SaveWithVersion(ctx context.Context, record WorldStateRecord, expectedVersion int64) error
}

type CustomItemRecord struct {
	Item      catalog.CustomItem `json:"item"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type CustomStructureRecord struct {
	Structure catalog.CustomStructure `json:"structure"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// CustomCatalogRepository stores runtime-registered catalog entries.
// Saves are upserts keyed by entry ID.
type CustomCatalogRepository interface {
	SaveItem(ctx context.Context, item catalog.CustomItem) error
	GetItem(ctx context.Context, id string) (CustomItemRecord, error)
	ListItems(ctx context.Context) ([]CustomItemRecord, error)
	SetItemEnabled(ctx context.Context, id string, enabled bool) error

	SaveStructure(ctx context.Context, structure catalog.CustomStructure) error
	ListStructures(ctx context.Context) ([]CustomStructureRecord, error)
	SetStructureEnabled(ctx context.Context, id string, enabled bool) error
}
