package catalog

import (
	"sort"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

// TerrainRule configures how a terrain spreads during world expansion.
type TerrainRule struct {
	SpreadWeight     float64         `yaml:"spreadWeight"`
	AllowedNeighbors []world.Terrain `yaml:"allowedNeighbors"`
}

func (r TerrainRule) Allows(other world.Terrain) bool {
	for _, t := range r.AllowedNeighbors {
		if t == other {
			return true
		}
	}
	return false
}

type TerrainConfig map[world.Terrain]TerrainRule

// Terrains lists the configured terrains in stable order.
func (c TerrainConfig) Terrains() []world.Terrain {
	out := make([]world.Terrain, 0, len(c))
	for t := range c {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CompatibleWith returns the terrains whose adjacency rules admit every
// given neighbor. With no neighbors every terrain qualifies.
func (c TerrainConfig) CompatibleWith(neighbors []world.Terrain) []world.Terrain {
	out := make([]world.Terrain, 0, len(c))
	for _, t := range c.Terrains() {
		rule := c[t]
		ok := true
		for _, n := range neighbors {
			if n != t && !rule.Allows(n) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, t)
		}
	}
	return out
}

func (c TerrainConfig) Weight(t world.Terrain) float64 {
	if rule, ok := c[t]; ok && rule.SpreadWeight > 0 {
		return rule.SpreadWeight
	}
	return 1
}
