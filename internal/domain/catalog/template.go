package catalog

import "github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"

// FieldRange is a {min, max} bound on one numeric snapshot field. Nil
// ends are open.
type FieldRange struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Conditions is a candidate's spawn gate, resolved from content data at
// pool-construction time. Chance is the base spawn chance in [0,1];
// SoilTypes is an allow-list for the snapshot's soil tag; Ranges bound
// numeric snapshot fields by content key name.
type Conditions struct {
	Chance    *float64              `json:"chance,omitempty" yaml:"chance,omitempty"`
	SoilTypes []world.SoilType      `json:"soilType,omitempty" yaml:"soilType,omitempty"`
	Ranges    map[string]FieldRange `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

func (c Conditions) BaseChance() float64 {
	if c.Chance == nil {
		return 1
	}
	return *c.Chance
}

type NPCDefinition struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Emoji       string `yaml:"emoji"`
}

type EnemyDefinition struct {
	Name         string   `yaml:"name"`
	HP           int      `yaml:"hp"`
	Damage       int      `yaml:"damage"`
	Behavior     string   `yaml:"behavior"`
	Size         string   `yaml:"size"`
	MaxSatiation int      `yaml:"maxSatiation"`
	Diet         []string `yaml:"diet"`
	SenseRadius  float64  `yaml:"senseRadius"`
	Emoji        string   `yaml:"emoji"`
}

type LootEntry struct {
	ItemID   string        `yaml:"itemId"`
	Name     string        `yaml:"name"`
	Chance   float64       `yaml:"chance"`
	Quantity QuantityRange `yaml:"quantity"`
}

type StructureDefinition struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Emoji       string      `yaml:"emoji"`
	Loot        []LootEntry `yaml:"loot"`
}

// SpawnCandidate is one template reference to something that might
// spawn. Exactly one payload pointer is set for NPC/enemy/structure
// candidates; item candidates carry only the reference name.
type SpawnCandidate struct {
	Name       string               `yaml:"name"`
	Type       string               `yaml:"type"`
	Conditions Conditions           `yaml:"conditions"`
	NPC        *NPCDefinition       `yaml:"npc,omitempty"`
	Enemy      *EnemyDefinition     `yaml:"enemy,omitempty"`
	Structure  *StructureDefinition `yaml:"structure,omitempty"`
}

// Ref is the name a candidate resolves under: the explicit name when
// present, else the type tag. Empty means the candidate is malformed.
func (c SpawnCandidate) Ref() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Type
}

// TerrainTemplate is the static authoring data for one terrain tag.
// Creatures is a legacy enemy list kept for older content packs; it is
// merged into the enemy candidate pool at assembly time.
type TerrainTemplate struct {
	Terrain      world.Terrain    `yaml:"terrain"`
	Descriptions []string         `yaml:"descriptions"`
	Adjectives   []string         `yaml:"adjectives"`
	Features     []string         `yaml:"features"`
	Items        []SpawnCandidate `yaml:"items"`
	NPCs         []SpawnCandidate `yaml:"npcs"`
	Enemies      []SpawnCandidate `yaml:"enemies"`
	Creatures    []SpawnCandidate `yaml:"creatures"`
	Structures   []SpawnCandidate `yaml:"structures"`
}

type TemplateRegistry map[world.Terrain]TerrainTemplate

func (r TemplateRegistry) Get(t world.Terrain) (TerrainTemplate, bool) {
	tpl, ok := r[t]
	return tpl, ok
}
