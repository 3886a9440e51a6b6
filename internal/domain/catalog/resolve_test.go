package catalog

import "testing"

func testRegistry() ItemRegistry {
	return ItemRegistry{
		"iron_ore": {ID: "iron_ore", Names: map[string]string{"en": "Iron Ore", "es": "Mineral de Hierro"}, Tier: 2},
		"herb":     {ID: "herb", Names: map[string]string{"en": "Herb"}, Tier: 1},
		"gem":      {ID: "gem", Names: map[string]string{"en": "Gem"}, Tier: 5},
	}
}

func TestResolve_DirectID(t *testing.T) {
	def, ok := testRegistry().Resolve("iron_ore")
	if !ok || def.ID != "iron_ore" {
		t.Fatalf("Resolve(iron_ore) = (%v,%v), want direct hit", def.ID, ok)
	}
}

func TestResolve_DisplayNameAnyLanguage(t *testing.T) {
	r := testRegistry()
	for _, ref := range []string{"Iron Ore", "iron ore", "Mineral de Hierro", "  Herb "} {
		def, ok := r.Resolve(ref)
		if !ok {
			t.Fatalf("Resolve(%q) failed, want display-name match", ref)
		}
		if def.ID != "iron_ore" && def.ID != "herb" {
			t.Fatalf("Resolve(%q) = %q", ref, def.ID)
		}
	}
}

func TestResolve_NearMissWithinDistanceOne(t *testing.T) {
	def, ok := testRegistry().Resolve("Hreb")
	if ok {
		// a transposition costs 2 under plain Levenshtein
		t.Fatalf("Resolve(Hreb) = %q, want no match", def.ID)
	}
	def, ok = testRegistry().Resolve("Gems")
	if !ok || def.ID != "gem" {
		t.Fatalf("Resolve(Gems) = (%v,%v), want gem", def.ID, ok)
	}
}

func TestResolve_EmptyAndUnknown(t *testing.T) {
	r := testRegistry()
	if _, ok := r.Resolve(""); ok {
		t.Fatal("empty reference must not resolve")
	}
	if _, ok := r.Resolve("obsidian shard"); ok {
		t.Fatal("distant reference must not resolve")
	}
}

func TestItemDefinition_NameFallback(t *testing.T) {
	d := ItemDefinition{ID: "herb", Names: map[string]string{"en": "Herb"}}
	if got := d.Name("es"); got != "Herb" {
		t.Fatalf("Name(es) = %q, want English fallback", got)
	}
	bare := ItemDefinition{ID: "herb"}
	if got := bare.Name("en"); got != "herb" {
		t.Fatalf("Name on bare definition = %q, want id", got)
	}
}
