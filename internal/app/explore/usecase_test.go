package explore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestUseCase_ExpandsRadius(t *testing.T) {
	states := &exploreStates{}
	uc := UseCase{States: states, World: gridWorld{}, Tx: exploreTx{}, Now: fixedNow}

	resp, err := uc.Execute(context.Background(), Request{WorldID: "w1", Radius: 1})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.GeneratedChunks != 9 || resp.TotalChunks != 9 {
		t.Fatalf("generated=%d total=%d, want 9/9", resp.GeneratedChunks, resp.TotalChunks)
	}
	if states.saved == nil {
		t.Fatal("expanded state was not persisted")
	}
	if resp.Season != world.SeasonWinter || resp.SeasonEndsInSeconds != 90 {
		t.Fatalf("season = %v/%d", resp.Season, resp.SeasonEndsInSeconds)
	}
}

func TestUseCase_NoWriteWhenFullyExplored(t *testing.T) {
	st := world.NewExpansionState()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			st.Chunks[world.Point{X: dx, Y: dy}.Key()] = world.ChunkContent{Terrain: world.TerrainPlains}
		}
	}
	states := &exploreStates{record: &ports.WorldStateRecord{WorldID: "w1", State: st, Version: 3}}
	uc := UseCase{States: states, World: gridWorld{}, Tx: exploreTx{}, Now: fixedNow}

	resp, err := uc.Execute(context.Background(), Request{WorldID: "w1", Radius: 1})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.GeneratedChunks != 0 {
		t.Fatalf("generated = %d, want 0", resp.GeneratedChunks)
	}
	if states.saved != nil {
		t.Fatal("no-op exploration must not write")
	}
}

func TestUseCase_RejectsBadRadius(t *testing.T) {
	uc := UseCase{}
	for _, radius := range []int{-1, maxExploreRadius + 1} {
		if _, err := uc.Execute(context.Background(), Request{WorldID: "w1", Radius: radius}); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("radius %d: expected ErrInvalidRequest, got %v", radius, err)
		}
	}
}

func TestUseCase_RejectsEmptyWorldID(t *testing.T) {
	uc := UseCase{}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUseCase_ConflictPropagates(t *testing.T) {
	states := &exploreStates{saveErr: ports.ErrConflict}
	metrics := &exploreMetrics{}
	uc := UseCase{States: states, World: gridWorld{}, Tx: exploreTx{}, Metrics: metrics, Now: fixedNow}
	if _, err := uc.Execute(context.Background(), Request{WorldID: "w1", Radius: 1}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if metrics.conflicts != 1 {
		t.Fatalf("conflicts = %d", metrics.conflicts)
	}
}

type exploreStates struct {
	record  *ports.WorldStateRecord
	saved   *ports.WorldStateRecord
	saveErr error
}

func (f *exploreStates) GetByWorldID(_ context.Context, _ string) (ports.WorldStateRecord, error) {
	if f.record == nil {
		return ports.WorldStateRecord{}, ports.ErrNotFound
	}
	return *f.record, nil
}

func (f *exploreStates) SaveWithVersion(_ context.Context, record ports.WorldStateRecord, _ int64) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &record
	return nil
}

type gridWorld struct{}

func (gridWorld) EnsureChunk(_ context.Context, st world.ExpansionState, pos world.Point) (world.ExpansionState, error) {
	if st.Has(pos) {
		return st, nil
	}
	next := st.Clone()
	next.Chunks[pos.Key()] = world.ChunkContent{Terrain: world.TerrainPlains}
	return next, nil
}

func (g gridWorld) EnsureRadius(ctx context.Context, st world.ExpansionState, center world.Point, radius int) (world.ExpansionState, error) {
	var err error
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			st, err = g.EnsureChunk(ctx, st, world.Point{X: center.X + dx, Y: center.Y + dy})
			if err != nil {
				return st, err
			}
		}
	}
	return st, nil
}

func (gridWorld) SeasonNow(_ time.Time) (world.Season, time.Duration) {
	return world.SeasonWinter, 90 * time.Second
}

type exploreTx struct{}

func (exploreTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type exploreMetrics struct {
	conflicts int
}

func (m *exploreMetrics) RecordChunkGenerated(world.Terrain) {}
func (m *exploreMetrics) RecordPlaceholder()                 {}
func (m *exploreMetrics) RecordTemplateWarning()             {}
func (m *exploreMetrics) RecordConflict()                    { m.conflicts++ }

var _ ports.WorldStateRepository = (*exploreStates)(nil)
var _ ports.WorldProvider = gridWorld{}
var _ ports.TxManager = exploreTx{}
var _ ports.GenerationMetrics = (*exploreMetrics)(nil)
