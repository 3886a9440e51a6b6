package inmemory

import (
	"sync"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

type Snapshot struct {
	ChunksGenerated  uint64            `json:"chunks_generated"`
	Placeholders     uint64            `json:"placeholders"`
	TemplateWarnings uint64            `json:"template_warnings"`
	SaveConflicts    uint64            `json:"save_conflicts"`
	ByTerrain        map[string]uint64 `json:"by_terrain"`
}

type Recorder struct {
	mu           sync.Mutex
	chunks       uint64
	placeholders uint64
	warnings     uint64
	conflicts    uint64
	byTerrain    map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byTerrain: map[string]uint64{},
	}
}

func (r *Recorder) RecordChunkGenerated(terrain world.Terrain) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chunks++
	r.byTerrain[string(terrain)]++
}

func (r *Recorder) RecordPlaceholder() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.placeholders++
}

func (r *Recorder) RecordTemplateWarning() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflicts++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ChunksGenerated:  r.chunks,
		Placeholders:     r.placeholders,
		TemplateWarnings: r.warnings,
		SaveConflicts:    r.conflicts,
		ByTerrain:        make(map[string]uint64, len(r.byTerrain)),
	}
	for k, v := range r.byTerrain {
		out.ByTerrain[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
