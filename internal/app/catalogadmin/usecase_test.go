package catalogadmin

import (
	"context"
	"errors"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

func TestRegisterItem_Valid(t *testing.T) {
	repo := newFakeCatalog()
	uc := RegisterItemUseCase{Catalog: repo}
	resp, err := uc.Execute(context.Background(), RegisterItemRequest{Item: catalog.CustomItem{
		ID:     "glow_moss",
		Name:   " Glow Moss ",
		Biomes: []world.Terrain{world.TerrainSwamp},
	}})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.ID != "glow_moss" {
		t.Fatalf("resp.ID = %q", resp.ID)
	}
	if got := repo.items["glow_moss"].Item.Name; got != "Glow Moss" {
		t.Fatalf("stored name = %q, want trimmed", got)
	}
}

func TestRegisterItem_Rejections(t *testing.T) {
	bad := 1.5
	cases := map[string]catalog.CustomItem{
		"empty id":         {Name: "x"},
		"uppercase id":     {ID: "GlowMoss", Name: "x"},
		"spaced id":        {ID: "glow moss", Name: "x"},
		"empty name":       {ID: "glow_moss"},
		"inverted qty":     {ID: "glow_moss", Name: "x", Quantity: catalog.QuantityRange{Min: 3, Max: 1}},
		"chance above one": {ID: "glow_moss", Name: "x", NaturalSpawn: []catalog.NaturalSpawnRule{{Terrain: world.TerrainSwamp, Chance: &bad}}},
	}
	for name, item := range cases {
		uc := RegisterItemUseCase{Catalog: newFakeCatalog()}
		if _, err := uc.Execute(context.Background(), RegisterItemRequest{Item: item}); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("%s: expected ErrInvalidRequest, got %v", name, err)
		}
	}
}

func TestRegisterStructure_LootValidation(t *testing.T) {
	uc := RegisterStructureUseCase{Catalog: newFakeCatalog()}
	st := catalog.CustomStructure{
		ID:   "old_shrine",
		Name: "Old Shrine",
		Loot: []catalog.LootEntry{{Chance: 0.5}},
	}
	// loot entry without any item reference
	if _, err := uc.Execute(context.Background(), RegisterStructureRequest{Structure: st}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	st.Loot[0].ItemID = "herb"
	if _, err := uc.Execute(context.Background(), RegisterStructureRequest{Structure: st}); err != nil {
		t.Fatalf("valid structure rejected: %v", err)
	}
}

func TestList_ReturnsEmptySlices(t *testing.T) {
	uc := ListUseCase{Catalog: newFakeCatalog()}
	resp, err := uc.Execute(context.Background(), ListRequest{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Items == nil || resp.Structures == nil {
		t.Fatal("list response slices must be non-nil")
	}
}

func TestSetEnabled_Kinds(t *testing.T) {
	repo := newFakeCatalog()
	repo.items["herb"] = ports.CustomItemRecord{Item: catalog.CustomItem{ID: "herb", Name: "Herb"}}
	uc := SetEnabledUseCase{Catalog: repo}

	resp, err := uc.Execute(context.Background(), SetEnabledRequest{ID: "herb", Kind: "item", Enabled: false})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Enabled {
		t.Fatal("response must echo the new flag")
	}
	if rec := repo.items["herb"]; rec.Item.IsEnabled() {
		t.Fatal("item was not disabled in the repository")
	}

	if _, err := uc.Execute(context.Background(), SetEnabledRequest{ID: "herb", Kind: "potion"}); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), SetEnabledRequest{Kind: "item"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for empty id, got %v", err)
	}
}

func TestEnabledContent_ProjectsEnabledRecords(t *testing.T) {
	disabled := false
	repo := newFakeCatalog()
	repo.items["herb"] = ports.CustomItemRecord{Item: catalog.CustomItem{ID: "herb", Name: "Herb"}}
	repo.items["rot"] = ports.CustomItemRecord{Item: catalog.CustomItem{ID: "rot", Name: "Rot", Enabled: &disabled}}
	repo.structures["hut"] = ports.CustomStructureRecord{Structure: catalog.CustomStructure{ID: "hut", Name: "Hut"}}
	repo.structures["ruin"] = ports.CustomStructureRecord{Structure: catalog.CustomStructure{ID: "ruin", Name: "Ruin", Enabled: &disabled}}

	items, structures, err := EnabledContent(context.Background(), repo)
	if err != nil {
		t.Fatalf("EnabledContent error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "herb" {
		t.Fatalf("items = %v", items)
	}
	if len(structures) != 1 || structures[0].ID != "hut" {
		t.Fatalf("structures = %v", structures)
	}
}

type fakeCatalog struct {
	items      map[string]ports.CustomItemRecord
	structures map[string]ports.CustomStructureRecord
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		items:      map[string]ports.CustomItemRecord{},
		structures: map[string]ports.CustomStructureRecord{},
	}
}

func (f *fakeCatalog) SaveItem(_ context.Context, item catalog.CustomItem) error {
	f.items[item.ID] = ports.CustomItemRecord{Item: item}
	return nil
}

func (f *fakeCatalog) GetItem(_ context.Context, id string) (ports.CustomItemRecord, error) {
	rec, ok := f.items[id]
	if !ok {
		return ports.CustomItemRecord{}, ports.ErrNotFound
	}
	return rec, nil
}

func (f *fakeCatalog) ListItems(_ context.Context) ([]ports.CustomItemRecord, error) {
	out := make([]ports.CustomItemRecord, 0, len(f.items))
	for _, rec := range f.items {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeCatalog) SetItemEnabled(_ context.Context, id string, enabled bool) error {
	rec, ok := f.items[id]
	if !ok {
		return ports.ErrNotFound
	}
	rec.Item.Enabled = &enabled
	f.items[id] = rec
	return nil
}

func (f *fakeCatalog) SaveStructure(_ context.Context, structure catalog.CustomStructure) error {
	f.structures[structure.ID] = ports.CustomStructureRecord{Structure: structure}
	return nil
}

func (f *fakeCatalog) ListStructures(_ context.Context) ([]ports.CustomStructureRecord, error) {
	out := make([]ports.CustomStructureRecord, 0, len(f.structures))
	for _, rec := range f.structures {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeCatalog) SetStructureEnabled(_ context.Context, id string, enabled bool) error {
	rec, ok := f.structures[id]
	if !ok {
		return ports.ErrNotFound
	}
	rec.Structure.Enabled = &enabled
	f.structures[id] = rec
	return nil
}

var _ ports.CustomCatalogRepository = (*fakeCatalog)(nil)
