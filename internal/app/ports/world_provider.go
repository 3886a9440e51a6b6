package ports

import (
	"context"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

// WorldProvider materializes chunk content on demand. Implementations
// own terrain choice, environment derivation and the generation RNG;
// callers only thread expansion state through.
type WorldProvider interface {
	EnsureChunk(ctx context.Context, st world.ExpansionState, pos world.Point) (world.ExpansionState, error)
	EnsureRadius(ctx context.Context, st world.ExpansionState, center world.Point, radius int) (world.ExpansionState, error)
	SeasonNow(now time.Time) (world.Season, time.Duration)
}
