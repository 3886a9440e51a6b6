package catalog

import (
	"sort"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

// NaturalSpawnRule binds a creature or custom item to one terrain,
// optionally with its own chance and extra conditions.
type NaturalSpawnRule struct {
	Terrain    world.Terrain `yaml:"terrain"`
	Chance     *float64      `yaml:"chance,omitempty"`
	Conditions Conditions    `yaml:"conditions"`
}

// PlantProperties marks a creature definition as a plant. Its presence,
// not its contents, is what partitions the plant and animal pools.
type PlantProperties struct {
	MatureAge   int    `yaml:"matureAge"`
	Harvestable string `yaml:"harvestable,omitempty"`
}

type CreatureDefinition struct {
	Name         string             `yaml:"name"`
	Description  string             `yaml:"description"`
	Emoji        string             `yaml:"emoji"`
	HP           int                `yaml:"hp"`
	Damage       int                `yaml:"damage"`
	Behavior     string             `yaml:"behavior"`
	Size         string             `yaml:"size"`
	MaxSatiation int                `yaml:"maxSatiation"`
	Diet         []string           `yaml:"diet"`
	SenseRadius  float64            `yaml:"senseRadius"`
	Plant        *PlantProperties   `yaml:"plant,omitempty"`
	NaturalSpawn []NaturalSpawnRule `yaml:"naturalSpawn"`
}

func (d CreatureDefinition) IsPlant() bool {
	return d.Plant != nil
}

// SpawnRuleFor returns the first natural-spawn rule matching the terrain.
func (d CreatureDefinition) SpawnRuleFor(t world.Terrain) (NaturalSpawnRule, bool) {
	for _, rule := range d.NaturalSpawn {
		if rule.Terrain == t {
			return rule, true
		}
	}
	return NaturalSpawnRule{}, false
}

type CreatureRegistry map[string]CreatureDefinition

// PartitionForTerrain splits the registry into plant and animal
// definitions spawnable in the given terrain. Output order is stable
// (sorted by key) so that seeded generation is reproducible.
func (r CreatureRegistry) PartitionForTerrain(t world.Terrain) (plants, animals []CreatureDefinition) {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		def := r[k]
		if _, ok := def.SpawnRuleFor(t); !ok {
			continue
		}
		if def.IsPlant() {
			plants = append(plants, def)
		} else {
			animals = append(animals, def)
		}
	}
	return plants, animals
}
