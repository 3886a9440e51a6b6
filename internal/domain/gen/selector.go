package gen

import (
	"math"
	"math/rand"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

// Selector draws a probabilistically filtered subset of eligible
// candidates up to a capacity. Consideration order is a fresh unbiased
// permutation so template authoring order carries no spawn bias.
type Selector struct {
	Items catalog.ItemRegistry
	Warn  WarnFunc
}

func (sel Selector) Select(rng *rand.Rand, candidates []catalog.SpawnCandidate, capacity int, snap world.EnvironmentalSnapshot, profile world.WorldProfile) []catalog.SpawnCandidate {
	if capacity <= 0 {
		return nil
	}

	eligible := make([]catalog.SpawnCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Ref() == "" {
			warnf(sel.Warn, "spawn candidate without name or type, skipping")
			continue
		}
		if Eligible(c.Conditions, snap, sel.Warn) {
			eligible = append(eligible, c)
		}
	}
	rng.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	score := ResourceScore(snap)
	density := densityScale(profile)
	chunkFactor := 0.6 + 0.8*score
	effective := Softcap(profile.SpawnMultiplier)

	var selected []catalog.SpawnCandidate
	for _, c := range eligible {
		chance := c.Conditions.BaseChance() * sel.tierFactor(c) * density * chunkFactor * effective
		chance = Clamp(0, MaxSpawnChance, chance)
		if rng.Float64() < chance {
			selected = append(selected, c)
			if len(selected) == capacity {
				break
			}
		}
	}
	return selected
}

// tierFactor decays spawn chance by item tier; entities without a
// registry entry keep factor 1.
func (sel Selector) tierFactor(c catalog.SpawnCandidate) float64 {
	def, ok := sel.Items.Resolve(c.Ref())
	if !ok || def.Tier <= 1 {
		return 1
	}
	return math.Pow(TierChanceDecay, float64(def.Tier-1))
}

func densityScale(profile world.WorldProfile) float64 {
	if profile.ResourceDensity <= 0 {
		return 1
	}
	return profile.ResourceDensity
}
