package gen

import (
	"math/rand"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

// RegionGenerator materializes the region containing pos, returning the
// merged expansion state. Its failures propagate unchanged.
type RegionGenerator interface {
	GenerateRegion(pos world.Point, terrain world.Terrain, st world.ExpansionState, profile world.WorldProfile, season world.Season) (world.ExpansionState, error)
}

// Expander lazily materializes chunks. A chunk is either absent or
// materialized; the only transition is absent -> materialized, and
// repeated requests for an existing coordinate are no-ops.
type Expander struct {
	Terrains  catalog.TerrainConfig
	Generator RegionGenerator
}

func (e Expander) EnsureChunkExists(rng *rand.Rand, pos world.Point, st world.ExpansionState, profile world.WorldProfile, season world.Season) (world.ExpansionState, error) {
	if st.Has(pos) {
		return st, nil
	}
	terrain := e.chooseTerrain(rng, pos, st)
	next, err := e.Generator.GenerateRegion(pos, terrain, st.Clone(), profile, season)
	if err != nil {
		return st, err
	}
	return next, nil
}

// GenerateChunksInRadius sweeps the square [-radius, radius] around
// center in row-major order, threading the returned state through each
// materialization.
func (e Expander) GenerateChunksInRadius(rng *rand.Rand, center world.Point, radius int, st world.ExpansionState, profile world.WorldProfile, season world.Season) (world.ExpansionState, error) {
	if radius < 0 {
		radius = 0
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			pos := world.Point{X: center.X + dx, Y: center.Y + dy}
			next, err := e.EnsureChunkExists(rng, pos, st, profile, season)
			if err != nil {
				return st, err
			}
			st = next
		}
	}
	return st, nil
}

// chooseTerrain weights the terrains compatible with every materialized
// neighbor by their spread weight. With no compatible terrain the whole
// configured set is used, so expansion never dead-ends.
func (e Expander) chooseTerrain(rng *rand.Rand, pos world.Point, st world.ExpansionState) world.Terrain {
	var neighbors []world.Terrain
	for _, n := range pos.Neighbors() {
		if c, ok := st.Chunks[n.Key()]; ok {
			neighbors = append(neighbors, c.Terrain)
		}
	}
	candidates := e.Terrains.CompatibleWith(neighbors)
	if len(candidates) == 0 {
		candidates = e.Terrains.Terrains()
	}
	if len(candidates) == 0 {
		return world.TerrainPlains
	}
	weights := make([]float64, len(candidates))
	for i, t := range candidates {
		weights[i] = e.Terrains.Weight(t)
	}
	return candidates[weightedPick(rng, weights)]
}
