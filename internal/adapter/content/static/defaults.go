package staticcontent

import (
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

func f64(v float64) *float64 { return &v }

func defaultItems() catalog.ItemRegistry {
	return catalog.ItemRegistry{
		"wild_berries": {
			ID:          "wild_berries",
			Names:       map[string]string{"en": "Wild Berries"},
			Description: "A handful of tart forest berries.",
			Tier:        1,
			Quantity:    catalog.QuantityRange{Min: 2, Max: 5},
			Emoji:       "🫐",
		},
		"herb": {
			ID:          "herb",
			Names:       map[string]string{"en": "Herb", "es": "Hierba"},
			Description: "A fragrant medicinal herb.",
			Tier:        1,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 3},
			Emoji:       "🌿",
		},
		"branch": {
			ID:          "branch",
			Names:       map[string]string{"en": "Branch"},
			Description: "A sturdy fallen branch.",
			Tier:        1,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 4},
			Emoji:       "🪵",
		},
		"flint": {
			ID:          "flint",
			Names:       map[string]string{"en": "Flint"},
			Description: "A sharp-edged piece of flint.",
			Tier:        2,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 2},
			Emoji:       "🪨",
		},
		"cattail_root": {
			ID:          "cattail_root",
			Names:       map[string]string{"en": "Cattail Root"},
			Description: "A starchy root pulled from shallow water.",
			Tier:        1,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 3},
			Emoji:       "🌾",
		},
		"iron_ore": {
			ID:          "iron_ore",
			Names:       map[string]string{"en": "Iron Ore"},
			Description: "A heavy chunk of ore veined with iron.",
			Tier:        3,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 2},
			Emoji:       "⛏️",
		},
		"cactus_fruit": {
			ID:          "cactus_fruit",
			Names:       map[string]string{"en": "Cactus Fruit"},
			Description: "A prickly fruit with sweet flesh.",
			Tier:        1,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 2},
			Emoji:       "🌵",
		},
		"bog_iron": {
			ID:          "bog_iron",
			Names:       map[string]string{"en": "Bog Iron"},
			Description: "Rust-colored nodules dredged from the marsh.",
			Tier:        2,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 2},
			Emoji:       "🟤",
		},
		"snow_lichen": {
			ID:          "snow_lichen",
			Names:       map[string]string{"en": "Snow Lichen"},
			Description: "A hardy lichen scraped from frozen rock.",
			Tier:        2,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 2},
			Emoji:       "❄️",
		},
		"ancient_relic": {
			ID:          "ancient_relic",
			Names:       map[string]string{"en": "Ancient Relic"},
			Description: "A worn artifact from a forgotten people.",
			Tier:        6,
			Rarity:      f64(0.08),
			Quantity:    catalog.QuantityRange{Min: 1, Max: 1},
			Emoji:       "🏺",
		},
		"mountain_crystal": {
			ID:          "mountain_crystal",
			Names:       map[string]string{"en": "Mountain Crystal"},
			Description: "A clear crystal that hums faintly.",
			Tier:        5,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 1},
			Emoji:       "💎",
		},
		"mushroom": {
			ID:          "mushroom",
			Names:       map[string]string{"en": "Mushroom"},
			Description: "A plump cap growing in the shade.",
			Tier:        1,
			Quantity:    catalog.QuantityRange{Min: 1, Max: 4},
			Emoji:       "🍄",
		},
	}
}

func defaultTemplates() catalog.TemplateRegistry {
	moist40 := catalog.Conditions{Ranges: map[string]catalog.FieldRange{
		"moisture": {Min: f64(40)},
	}}
	dry := catalog.Conditions{Ranges: map[string]catalog.FieldRange{
		"moisture": {Max: f64(30)},
	}}

	return catalog.TemplateRegistry{
		world.TerrainForest: {
			Terrain: world.TerrainForest,
			Descriptions: []string{
				"A {adjective} forest stretches around you, {feature} breaking the shade.",
				"Tall trunks crowd a {adjective} woodland floor near {feature}.",
			},
			Adjectives: []string{"dense", "quiet", "mossy", "sun-dappled"},
			Features:   []string{"a fallen log", "a trickling stream", "a ring of stones"},
			Items: []catalog.SpawnCandidate{
				{Name: "wild_berries", Type: "item"},
				{Name: "herb", Type: "item", Conditions: moist40},
				{Name: "branch", Type: "item"},
				{Name: "mushroom", Type: "item", Conditions: moist40},
				{Name: "ancient_relic", Type: "item"},
			},
			NPCs: []catalog.SpawnCandidate{
				{Name: "Wandering Herbalist", Type: "npc", NPC: &catalog.NPCDefinition{
					Name: "Wandering Herbalist", Description: "An old gatherer with a heavy satchel.", Emoji: "🧑‍🌾",
				}},
			},
			Enemies: []catalog.SpawnCandidate{
				{Name: "Feral Boar", Type: "enemy", Enemy: &catalog.EnemyDefinition{
					Name: "Feral Boar", HP: 60, Damage: 12, Behavior: "territorial", Size: "medium",
					MaxSatiation: 80, Diet: []string{"plants"}, SenseRadius: 6, Emoji: "🐗",
				}},
			},
			Structures: []catalog.SpawnCandidate{
				{Name: "Abandoned Camp", Type: "structure", Structure: &catalog.StructureDefinition{
					Name: "Abandoned Camp", Description: "A cold fire pit and a collapsed lean-to.", Emoji: "⛺",
					Loot: []catalog.LootEntry{
						{ItemID: "flint", Chance: 0.6, Quantity: catalog.QuantityRange{Min: 1, Max: 2}},
						{ItemID: "branch", Chance: 0.8, Quantity: catalog.QuantityRange{Min: 1, Max: 3}},
					},
				}},
			},
		},
		world.TerrainPlains: {
			Terrain: world.TerrainPlains,
			Descriptions: []string{
				"A {adjective} grassland rolls toward the horizon, broken by {feature}.",
			},
			Adjectives: []string{"windswept", "golden", "open"},
			Features:   []string{"a lone oak", "a shallow gully", "grazing tracks"},
			Items: []catalog.SpawnCandidate{
				{Name: "herb", Type: "item"},
				{Name: "branch", Type: "item"},
				{Name: "flint", Type: "item", Conditions: dry},
			},
			Enemies: []catalog.SpawnCandidate{
				{Name: "Plains Wolf", Type: "enemy", Enemy: &catalog.EnemyDefinition{
					Name: "Plains Wolf", HP: 45, Damage: 10, Behavior: "aggressive", Size: "medium",
					MaxSatiation: 70, Diet: []string{"meat"}, SenseRadius: 8, Emoji: "🐺",
				}},
			},
			Structures: []catalog.SpawnCandidate{
				{Name: "Standing Stone", Type: "structure", Structure: &catalog.StructureDefinition{
					Name: "Standing Stone", Description: "A weathered monolith carved with spirals.", Emoji: "🗿",
					Loot: []catalog.LootEntry{
						{ItemID: "ancient_relic", Chance: 0.1, Quantity: catalog.QuantityRange{Min: 1, Max: 1}},
					},
				}},
			},
		},
		world.TerrainDesert: {
			Terrain: world.TerrainDesert,
			Descriptions: []string{
				"A {adjective} expanse of sand shimmers with heat around {feature}.",
			},
			Adjectives: []string{"scorched", "endless", "silent"},
			Features:   []string{"a bleached skeleton", "a dried wadi", "wind-carved dunes"},
			Items: []catalog.SpawnCandidate{
				{Name: "cactus_fruit", Type: "item"},
				{Name: "flint", Type: "item"},
			},
			Enemies: []catalog.SpawnCandidate{
				{Name: "Dust Scorpion", Type: "enemy", Enemy: &catalog.EnemyDefinition{
					Name: "Dust Scorpion", HP: 30, Damage: 15, Behavior: "ambush", Size: "small",
					MaxSatiation: 40, Diet: []string{"meat"}, SenseRadius: 4, Emoji: "🦂",
				}},
			},
			Structures: []catalog.SpawnCandidate{
				{Name: "Buried Ruin", Type: "structure", Structure: &catalog.StructureDefinition{
					Name: "Buried Ruin", Description: "Sandstone walls half-swallowed by the dunes.", Emoji: "🏛️",
					Loot: []catalog.LootEntry{
						{ItemID: "ancient_relic", Chance: 0.15, Quantity: catalog.QuantityRange{Min: 1, Max: 1}},
					},
				}},
			},
		},
		world.TerrainSwamp: {
			Terrain: world.TerrainSwamp,
			Descriptions: []string{
				"A {adjective} marsh sucks at your boots, {feature} rising from the murk.",
			},
			Adjectives: []string{"fetid", "misty", "droning"},
			Features:   []string{"twisted mangroves", "a sunken fence line", "bubbling pools"},
			Items: []catalog.SpawnCandidate{
				{Name: "cattail_root", Type: "item"},
				{Name: "bog_iron", Type: "item", Conditions: moist40},
				{Name: "mushroom", Type: "item"},
			},
			Enemies: []catalog.SpawnCandidate{
				{Name: "Marsh Lurker", Type: "enemy", Enemy: &catalog.EnemyDefinition{
					Name: "Marsh Lurker", HP: 70, Damage: 14, Behavior: "ambush", Size: "large",
					MaxSatiation: 90, Diet: []string{"meat", "fish"}, SenseRadius: 5, Emoji: "🐊",
				}},
			},
		},
		world.TerrainMountain: {
			Terrain: world.TerrainMountain,
			Descriptions: []string{
				"A {adjective} slope of scree climbs toward {feature}.",
			},
			Adjectives: []string{"jagged", "windblasted", "sheer"},
			Features:   []string{"a knife-edge ridge", "an old cairn", "a dark cave mouth"},
			Items: []catalog.SpawnCandidate{
				{Name: "iron_ore", Type: "item"},
				{Name: "flint", Type: "item"},
				{Name: "mountain_crystal", Type: "item"},
			},
			Enemies: []catalog.SpawnCandidate{
				{Name: "Cliff Raptor", Type: "enemy", Enemy: &catalog.EnemyDefinition{
					Name: "Cliff Raptor", HP: 50, Damage: 18, Behavior: "aggressive", Size: "medium",
					MaxSatiation: 60, Diet: []string{"meat"}, SenseRadius: 10, Emoji: "🦅",
				}},
			},
		},
		world.TerrainTundra: {
			Terrain: world.TerrainTundra,
			Descriptions: []string{
				"A {adjective} plain of frost crunches underfoot near {feature}.",
			},
			Adjectives: []string{"frozen", "pale", "howling"},
			Features:   []string{"a frozen tarn", "snow-buried boulders", "a lone antler"},
			Items: []catalog.SpawnCandidate{
				{Name: "snow_lichen", Type: "item"},
				{Name: "flint", Type: "item"},
			},
			Enemies: []catalog.SpawnCandidate{
				{Name: "White Stalker", Type: "enemy", Enemy: &catalog.EnemyDefinition{
					Name: "White Stalker", HP: 65, Damage: 16, Behavior: "stalking", Size: "large",
					MaxSatiation: 85, Diet: []string{"meat"}, SenseRadius: 9, Emoji: "🐆",
				}},
			},
		},
	}
}

func defaultCreatures() catalog.CreatureRegistry {
	return catalog.CreatureRegistry{
		"fern": {
			Name: "Fern", Emoji: "🌿", HP: 10,
			Plant: &catalog.PlantProperties{MatureAge: 3},
			NaturalSpawn: []catalog.NaturalSpawnRule{
				{Terrain: world.TerrainForest},
				{Terrain: world.TerrainSwamp},
			},
		},
		"berry_bush": {
			Name: "Berry Bush", Emoji: "🫐", HP: 15,
			Plant: &catalog.PlantProperties{MatureAge: 5, Harvestable: "wild_berries"},
			NaturalSpawn: []catalog.NaturalSpawnRule{
				{Terrain: world.TerrainForest},
				{Terrain: world.TerrainPlains},
			},
		},
		"tall_grass": {
			Name: "Tall Grass", Emoji: "🌾", HP: 5,
			Plant: &catalog.PlantProperties{MatureAge: 2},
			NaturalSpawn: []catalog.NaturalSpawnRule{
				{Terrain: world.TerrainPlains},
			},
		},
		"barrel_cactus": {
			Name: "Barrel Cactus", Emoji: "🌵", HP: 20,
			Plant: &catalog.PlantProperties{MatureAge: 8, Harvestable: "cactus_fruit"},
			NaturalSpawn: []catalog.NaturalSpawnRule{
				{Terrain: world.TerrainDesert},
			},
		},
		"reed": {
			Name: "Reed", Emoji: "🪴", HP: 8,
			Plant: &catalog.PlantProperties{MatureAge: 3},
			NaturalSpawn: []catalog.NaturalSpawnRule{
				{Terrain: world.TerrainSwamp},
			},
		},
		"hare": {
			Name: "Hare", Emoji: "🐇", HP: 15, Damage: 2, Behavior: "skittish", Size: "small",
			MaxSatiation: 30, Diet: []string{"plants"}, SenseRadius: 7,
			NaturalSpawn: []catalog.NaturalSpawnRule{
				{Terrain: world.TerrainForest},
				{Terrain: world.TerrainPlains},
			},
		},
		"marsh_toad": {
			Name: "Marsh Toad", Emoji: "🐸", HP: 12, Damage: 3, Behavior: "passive", Size: "small",
			MaxSatiation: 25, Diet: []string{"insects"}, SenseRadius: 3,
			NaturalSpawn: []catalog.NaturalSpawnRule{
				{Terrain: world.TerrainSwamp},
			},
		},
		"mountain_goat": {
			Name: "Mountain Goat", Emoji: "🐐", HP: 35, Damage: 8, Behavior: "territorial", Size: "medium",
			MaxSatiation: 55, Diet: []string{"plants"}, SenseRadius: 6,
			NaturalSpawn: []catalog.NaturalSpawnRule{
				{Terrain: world.TerrainMountain},
				{Terrain: world.TerrainTundra},
			},
		},
	}
}

func defaultTerrains() catalog.TerrainConfig {
	return catalog.TerrainConfig{
		world.TerrainForest: {
			SpreadWeight:     3,
			AllowedNeighbors: []world.Terrain{world.TerrainPlains, world.TerrainSwamp, world.TerrainMountain},
		},
		world.TerrainPlains: {
			SpreadWeight:     4,
			AllowedNeighbors: []world.Terrain{world.TerrainForest, world.TerrainDesert, world.TerrainSwamp, world.TerrainMountain, world.TerrainTundra},
		},
		world.TerrainDesert: {
			SpreadWeight:     2,
			AllowedNeighbors: []world.Terrain{world.TerrainPlains, world.TerrainMountain},
		},
		world.TerrainSwamp: {
			SpreadWeight:     2,
			AllowedNeighbors: []world.Terrain{world.TerrainForest, world.TerrainPlains},
		},
		world.TerrainMountain: {
			SpreadWeight:     2,
			AllowedNeighbors: []world.Terrain{world.TerrainForest, world.TerrainPlains, world.TerrainDesert, world.TerrainTundra},
		},
		world.TerrainTundra: {
			SpreadWeight:     1,
			AllowedNeighbors: []world.Terrain{world.TerrainMountain, world.TerrainPlains},
		},
	}
}
