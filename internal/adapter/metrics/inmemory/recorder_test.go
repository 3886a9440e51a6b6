package inmemory

import (
	"testing"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

func TestRecorderSnapshot(t *testing.T) {
	r := NewRecorder()
	r.RecordChunkGenerated(world.TerrainForest)
	r.RecordChunkGenerated(world.TerrainForest)
	r.RecordChunkGenerated(world.TerrainDesert)
	r.RecordPlaceholder()
	r.RecordTemplateWarning()
	r.RecordConflict()

	s := r.Snapshot()
	if s.ChunksGenerated != 3 {
		t.Fatalf("expected 3 chunks, got %d", s.ChunksGenerated)
	}
	if s.ByTerrain["forest"] != 2 || s.ByTerrain["desert"] != 1 {
		t.Fatalf("by terrain = %v", s.ByTerrain)
	}
	if s.Placeholders != 1 || s.TemplateWarnings != 1 || s.SaveConflicts != 1 {
		t.Fatalf("snapshot = %+v", s)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	r := NewRecorder()
	r.RecordChunkGenerated(world.TerrainSwamp)
	s := r.Snapshot()
	s.ByTerrain["swamp"] = 99
	if r.Snapshot().ByTerrain["swamp"] != 1 {
		t.Fatal("snapshot must not alias internal state")
	}
}

var _ ports.GenerationMetrics = (*Recorder)(nil)
