package httpadapter

import (
	"encoding/json"
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/explore"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/status"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	resp := explore.Response{
		WorldID:             "w1",
		Center:              world.Point{X: 1, Y: 2},
		Radius:              2,
		GeneratedChunks:     3,
		TotalChunks:         25,
		Regions:             3,
		Season:              world.SeasonSpring,
		SeasonEndsInSeconds: 120,
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"world_id", "center", "radius", "generated_chunks", "total_chunks", "regions", "season", "season_ends_in_seconds"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("explore response missing %q: %s", key, raw)
		}
	}

	sraw, err := json.Marshal(status.Response{WorldID: "w1", Season: world.SeasonWinter})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var sm map[string]json.RawMessage
	if err := json.Unmarshal(sraw, &sm); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"world_id", "chunks", "regions", "season", "season_ends_in_seconds", "catalog_items"} {
		if _, ok := sm[key]; !ok {
			t.Fatalf("status response missing %q: %s", key, sraw)
		}
	}
}

func TestChunkContentJSONShape(t *testing.T) {
	content := world.ChunkContent{
		Terrain:     world.TerrainForest,
		Description: "a quiet clearing",
		Items:       []world.SpawnedItem{{ID: "herb", Name: "Herb", Tier: 1, Quantity: 2}},
		Actions:     []world.Action{{ID: 1, Text: "Pick up Herb", Params: map[string]any{"item_id": "herb"}}},
	}
	raw, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"terrain", "description", "items", "actions"} {
		if _, ok := m[key]; !ok {
			t.Fatalf("chunk content missing %q: %s", key, raw)
		}
	}
}
