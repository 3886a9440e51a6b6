package staticcontent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

func TestDefaultPackIsSelfConsistent(t *testing.T) {
	p := NewProvider()
	items := p.Items()

	for terrain, tpl := range p.Templates() {
		if tpl.Terrain != terrain {
			t.Fatalf("%s: template terrain tag mismatch (%s)", terrain, tpl.Terrain)
		}
		if len(tpl.Descriptions) == 0 {
			t.Fatalf("%s: no descriptions", terrain)
		}
		for _, cand := range tpl.Items {
			if _, ok := items[cand.Name]; !ok {
				t.Fatalf("%s: item candidate %q not in the item registry", terrain, cand.Name)
			}
		}
		for _, cand := range tpl.Structures {
			for _, loot := range cand.Structure.Loot {
				if _, ok := items[loot.ItemID]; !ok {
					t.Fatalf("%s: loot %q not in the item registry", terrain, loot.ItemID)
				}
			}
		}
	}

	for id, creature := range p.Creatures() {
		if len(creature.NaturalSpawn) == 0 {
			t.Fatalf("creature %s has no spawn terrain", id)
		}
	}

	if _, ok := p.Terrains()[world.TerrainForest]; !ok {
		t.Fatal("terrain config must cover forest")
	}
}

func TestLoad_EmptyDirReturnsDefaults(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Items()) == 0 || len(p.Templates()) == 0 {
		t.Fatal("defaults missing")
	}
}

func TestLoad_OverlayMergesItems(t *testing.T) {
	dir := t.TempDir()
	overlay := `
moon_flower:
  names:
    en: Moon Flower
  tier: 4
  quantity: {min: 1, max: 1}
herb:
  id: herb
  names:
    en: Common Herb
  tier: 1
`
	if err := os.WriteFile(filepath.Join(dir, "items.yaml"), []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def, ok := p.Items()["moon_flower"]
	if !ok {
		t.Fatal("overlay item missing")
	}
	if def.ID != "moon_flower" {
		t.Fatalf("overlay item id = %q, want backfilled from key", def.ID)
	}
	if got := p.Items()["herb"].Name("en"); got != "Common Herb" {
		t.Fatalf("herb name = %q, want overlay to win", got)
	}
	if _, ok := p.Items()["flint"]; !ok {
		t.Fatal("untouched defaults must survive the overlay")
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "creatures.yaml"), []byte("{:::"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}
