package memory

import (
	"context"
	"sort"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
)

type CustomCatalogRepo struct {
	store *Store
}

func NewCustomCatalogRepo(store *Store) CustomCatalogRepo {
	return CustomCatalogRepo{store: store}
}

func (r CustomCatalogRepo) SaveItem(_ context.Context, item catalog.CustomItem) error {
	now := time.Now().UTC()
	rec, ok := r.store.items[item.ID]
	if !ok {
		rec = ports.CustomItemRecord{CreatedAt: now}
	}
	rec.Item = item
	rec.UpdatedAt = now
	r.store.items[item.ID] = rec
	return nil
}

func (r CustomCatalogRepo) GetItem(_ context.Context, id string) (ports.CustomItemRecord, error) {
	rec, ok := r.store.items[id]
	if !ok {
		return ports.CustomItemRecord{}, ports.ErrNotFound
	}
	return rec, nil
}

func (r CustomCatalogRepo) ListItems(_ context.Context) ([]ports.CustomItemRecord, error) {
	out := make([]ports.CustomItemRecord, 0, len(r.store.items))
	for _, rec := range r.store.items {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out, nil
}

func (r CustomCatalogRepo) SetItemEnabled(_ context.Context, id string, enabled bool) error {
	rec, ok := r.store.items[id]
	if !ok {
		return ports.ErrNotFound
	}
	rec.Item.Enabled = &enabled
	rec.UpdatedAt = time.Now().UTC()
	r.store.items[id] = rec
	return nil
}

func (r CustomCatalogRepo) SaveStructure(_ context.Context, structure catalog.CustomStructure) error {
	now := time.Now().UTC()
	rec, ok := r.store.structures[structure.ID]
	if !ok {
		rec = ports.CustomStructureRecord{CreatedAt: now}
	}
	rec.Structure = structure
	rec.UpdatedAt = now
	r.store.structures[structure.ID] = rec
	return nil
}

func (r CustomCatalogRepo) ListStructures(_ context.Context) ([]ports.CustomStructureRecord, error) {
	out := make([]ports.CustomStructureRecord, 0, len(r.store.structures))
	for _, rec := range r.store.structures {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Structure.ID < out[j].Structure.ID })
	return out, nil
}

func (r CustomCatalogRepo) SetStructureEnabled(_ context.Context, id string, enabled bool) error {
	rec, ok := r.store.structures[id]
	if !ok {
		return ports.ErrNotFound
	}
	rec.Structure.Enabled = &enabled
	rec.UpdatedAt = time.Now().UTC()
	r.store.structures[id] = rec
	return nil
}

var _ ports.CustomCatalogRepository = CustomCatalogRepo{}
