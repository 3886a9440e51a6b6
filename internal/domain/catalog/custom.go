package catalog

import "github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"

// CustomItem is a dynamically registered catalog entry. Generated items
// share this shape with hand-authored extras; the engine treats both as
// opaque. Enabled nil means enabled: only an explicit false disables.
type CustomItem struct {
	ID           string             `json:"id" yaml:"id"`
	Name         string             `json:"name" yaml:"name"`
	Description  string             `json:"description" yaml:"description"`
	Tier         int                `json:"tier" yaml:"tier"`
	Emoji        string             `json:"emoji" yaml:"emoji"`
	Enabled      *bool              `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Biomes       []world.Terrain    `json:"biomes" yaml:"biomes"`
	NaturalSpawn []NaturalSpawnRule `json:"naturalSpawn" yaml:"naturalSpawn"`
	Quantity     QuantityRange      `json:"quantity" yaml:"quantity"`
}

func (c CustomItem) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c CustomItem) AllowsBiome(t world.Terrain) bool {
	for _, b := range c.Biomes {
		if b == t {
			return true
		}
	}
	return false
}

// Definition projects the custom item into canonical item metadata so
// the resolution and quantity paths treat it like a static definition.
func (c CustomItem) Definition() ItemDefinition {
	q := c.Quantity
	if q.Min == 0 && q.Max == 0 {
		q = QuantityRange{Min: 1, Max: 1}
	}
	tier := c.Tier
	if tier < 1 {
		tier = 1
	}
	return ItemDefinition{
		ID:          c.ID,
		Names:       map[string]string{"en": c.Name},
		Description: c.Description,
		Tier:        tier,
		Quantity:    q,
		Emoji:       c.Emoji,
	}
}

// CustomStructure mirrors a template structure candidate registered at
// runtime.
type CustomStructure struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Emoji       string          `json:"emoji" yaml:"emoji"`
	Enabled     *bool           `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Biomes      []world.Terrain `json:"biomes" yaml:"biomes"`
	Chance      *float64        `json:"chance,omitempty" yaml:"chance,omitempty"`
	Loot        []LootEntry     `json:"loot" yaml:"loot"`
}

func (c CustomStructure) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

func (c CustomStructure) AllowsBiome(t world.Terrain) bool {
	for _, b := range c.Biomes {
		if b == t {
			return true
		}
	}
	return false
}
