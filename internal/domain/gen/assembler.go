package gen

import (
	"math"
	"math/rand"
	"strings"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"
)

const placeholderDescription = "An unremarkable stretch of land. Nothing here invites a closer look."
const genericDescription = "A {adjective} expanse broken by a {feature}."

// CustomContent is the mutable catalog slice handed to one assembly
// call: runtime-registered items and structures.
type CustomContent struct {
	Items      []catalog.CustomItem
	Structures []catalog.CustomStructure
}

// Assembler produces the full content of one chunk from its
// environmental snapshot. Every path returns a valid ChunkContent;
// missing or defective content data degrades the output instead of
// failing the call.
type Assembler struct {
	Templates catalog.TemplateRegistry
	Items     catalog.ItemRegistry
	Creatures catalog.CreatureRegistry
	Language  string
	Warn      WarnFunc
}

func (a Assembler) Assemble(rng *rand.Rand, snap world.EnvironmentalSnapshot, profile world.WorldProfile, custom CustomContent) world.ChunkContent {
	tpl, ok := a.Templates.Get(snap.Terrain)
	if !ok {
		warnf(a.Warn, "no terrain template for %q, producing placeholder chunk", snap.Terrain)
		return world.ChunkContent{
			Terrain:     snap.Terrain,
			Description: placeholderDescription,
			NPCs:        []world.SpawnedNPC{},
			Items:       []world.SpawnedItem{},
			Structures:  []world.SpawnedStructure{},
			Plants:      []world.PlantInstance{},
			Actions:     []world.Action{},
		}
	}

	items := a.itemRegistryWith(custom.Items)
	sel := Selector{Items: items, Warn: a.Warn}

	score := ResourceScore(snap)
	density := densityScale(profile)
	effective := Softcap(profile.SpawnMultiplier)
	dangerFactor := 0.5 + 0.8*Clamp01(snap.DangerLevel/100)

	content := world.ChunkContent{
		Terrain:     snap.Terrain,
		Description: a.describe(rng, tpl),
		NPCs:        []world.SpawnedNPC{},
		Items:       []world.SpawnedItem{},
		Structures:  []world.SpawnedStructure{},
		Plants:      []world.PlantInstance{},
	}

	itemPool := a.itemCandidates(tpl, snap, custom.Items)
	plantPool, animalPool := a.creaturePools(snap)

	content.Items = a.generateItems(rng, items, itemPool, score, density, effective)

	npcChance := Clamp(NPCGateMin, NPCGateMax, NPCGateBase*density*(0.5+0.5*score)*effective)
	if rng.Float64() < npcChance {
		if picked := sel.Select(rng, tpl.NPCs, 1, snap, profile); len(picked) == 1 {
			content.NPCs = append(content.NPCs, npcFrom(picked[0]))
		}
	}

	enemyPool := make([]catalog.SpawnCandidate, 0, len(tpl.Enemies)+len(tpl.Creatures)+len(animalPool))
	enemyPool = append(enemyPool, tpl.Enemies...)
	enemyPool = append(enemyPool, tpl.Creatures...)
	enemyPool = append(enemyPool, animalCandidates(animalPool, snap.Terrain)...)
	enemyChance := Clamp(EnemyGateMin, EnemyGateMax, EnemyGateBase*density*dangerFactor*effective)
	if rng.Float64() < enemyChance {
		if picked := sel.Select(rng, enemyPool, 1, snap, profile); len(picked) == 1 {
			content.Enemy = enemyFrom(picked[0], a.Warn)
		}
	}

	structPool := a.structureCandidates(tpl, snap.Terrain, custom.Structures)
	for _, c := range sel.Select(rng, structPool, MaxStructuresPerChunk, snap, profile) {
		if c.Structure == nil {
			warnf(a.Warn, "structure candidate %q has no structure payload, skipping", c.Ref())
			continue
		}
		def := *c.Structure
		content.Structures = append(content.Structures, world.SpawnedStructure{
			Name:        def.Name,
			Description: def.Description,
			Emoji:       def.Emoji,
		})
		content.Items = a.mergeLoot(rng, items, content.Items, def.Loot)
	}

	plantChance := Clamp(PlantGateMin, PlantGateMax, PlantGateBase*density*(1+score)*effective)
	if rng.Float64() < plantChance && len(plantPool) > 0 {
		k := rng.Intn(MaxPlantsPerChunk) + 1
		shuffled := append([]catalog.CreatureDefinition{}, plantPool...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if k > len(shuffled) {
			k = len(shuffled)
		}
		for _, def := range shuffled[:k] {
			content.Plants = append(content.Plants, world.PlantInstance{
				Name:     def.Name,
				Emoji:    def.Emoji,
				HP:       def.HP,
				Maturity: 0,
				Age:      0,
			})
		}
	}

	animalChance := Clamp(EnemyGateMin, EnemyGateMax, AnimalGateBase*density*dangerFactor*effective)
	if rng.Float64() < animalChance && len(animalPool) > 0 {
		def := animalPool[rng.Intn(len(animalPool))]
		if content.Enemy == nil {
			content.Enemy = enemyFromCreature(def)
		}
	}

	content.Actions = buildActions(content)
	return content
}

// describe renders one short description from the terrain vocabulary.
func (a Assembler) describe(rng *rand.Rand, tpl catalog.TerrainTemplate) string {
	desc := genericDescription
	if len(tpl.Descriptions) > 0 {
		desc = tpl.Descriptions[rng.Intn(len(tpl.Descriptions))]
	}
	desc = strings.ReplaceAll(desc, "{adjective}", pickWord(rng, tpl.Adjectives, "quiet"))
	return strings.ReplaceAll(desc, "{feature}", pickWord(rng, tpl.Features, "clearing"))
}

func pickWord(rng *rand.Rand, words []string, fallback string) string {
	if len(words) == 0 {
		return fallback
	}
	return words[rng.Intn(len(words))]
}

// generateItems runs the multi-stage item pipeline: one find gate for
// the whole chunk, a bounded random sample, a rarity-cost budget pass,
// a diminishing-scale final roll, and a rare-item fallback.
func (a Assembler) generateItems(rng *rand.Rand, items catalog.ItemRegistry, pool []catalog.SpawnCandidate, score, density, effective float64) []world.SpawnedItem {
	maxItems := int(math.Floor(BaseMaxItems * effective * (0.2 + 0.5*score*density)))
	if maxItems < 1 {
		maxItems = 1
	}

	var accepted []catalog.SpawnCandidate
	findChance := Clamp(FindChanceMin, FindChanceMax, BaseFindChance*density*(0.6+0.6*score)*effective)
	if rng.Float64() < findChance && len(pool) > 0 {
		m := SampleBaseCount + int(math.Floor(math.Log(math.Max(1, float64(len(pool))))))
		if m > len(pool) {
			m = len(pool)
		}
		sample := samplePool(rng, pool, m)

		budget := ItemBudget * density
		var preBudget []catalog.SpawnCandidate
		for _, c := range sample {
			cost := ItemCostScale / math.Max(MinRarity, a.rarityOf(items, c.Ref()))
			if budget-cost >= 0 {
				preBudget = append(preBudget, c)
				budget -= cost
			}
		}

		scaleFactor := 1 / (0.5 + math.Pow(float64(len(preBudget)), 0.6))
		for _, c := range preBudget {
			rarity := a.rarityOf(items, c.Ref())
			final := Clamp(0, MaxSpawnChance, c.Conditions.BaseChance()*rarity*density*effective*scaleFactor)
			if rng.Float64() < final {
				accepted = append(accepted, c)
				if len(accepted) >= maxItems {
					break
				}
			}
		}

		// Top-tier finds stay discoverable even when the budget pass
		// priced everything out.
		if len(accepted) == 0 {
			best, bestTier := -1, 0
			for i, c := range sample {
				if def, ok := items.Resolve(c.Ref()); ok && def.Tier > bestTier {
					best, bestTier = i, def.Tier
				}
			}
			if best >= 0 && bestTier >= RareFallbackMinTier {
				if rng.Float64() < RareFallbackChance*density*effective {
					accepted = append(accepted, sample[best])
				}
			}
		}
	}

	out := []world.SpawnedItem{}
	for _, c := range accepted {
		def, ok := items.Resolve(c.Ref())
		if !ok {
			warnf(a.Warn, "spawned item %q has no catalog definition, dropping", c.Ref())
			continue
		}
		qty := drawQuantity(rng, def.Quantity)
		if qty == 0 {
			continue
		}
		out = append(out, spawnedFromDef(def, qty, a.lang()))
	}
	return out
}

// samplePool draws m candidates without replacement in random order.
func samplePool(rng *rand.Rand, pool []catalog.SpawnCandidate, m int) []catalog.SpawnCandidate {
	perm := rng.Perm(len(pool))
	out := make([]catalog.SpawnCandidate, 0, m)
	for _, idx := range perm[:m] {
		out = append(out, pool[idx])
	}
	return out
}

// rarityOf derives a rarity in [0.05, 1]: explicit field, else the tier
// proxy, else the unresolved default.
func (a Assembler) rarityOf(items catalog.ItemRegistry, ref string) float64 {
	def, ok := items.Resolve(ref)
	if !ok {
		return DefaultRarity
	}
	if def.Rarity != nil {
		return Clamp(MinRarity, 1, *def.Rarity)
	}
	if def.Tier >= 1 {
		return math.Max(MinRarity, 1-float64(def.Tier-1)*RarityTierStep)
	}
	return DefaultRarity
}

func (a Assembler) itemRegistryWith(customItems []catalog.CustomItem) catalog.ItemRegistry {
	if len(customItems) == 0 {
		return a.Items
	}
	merged := make(catalog.ItemRegistry, len(a.Items)+len(customItems))
	for id, def := range a.Items {
		merged[id] = def
	}
	for _, ci := range customItems {
		if ci.ID == "" {
			warnf(a.Warn, "custom item without id, skipping")
			continue
		}
		merged[ci.ID] = ci.Definition()
	}
	return merged
}

// itemCandidates merges the static template items with the enabled
// custom-catalog entries allowed in this biome. Eligibility is resolved
// here, once, so the pipeline samples only admissible candidates.
func (a Assembler) itemCandidates(tpl catalog.TerrainTemplate, snap world.EnvironmentalSnapshot, customItems []catalog.CustomItem) []catalog.SpawnCandidate {
	pool := make([]catalog.SpawnCandidate, 0, len(tpl.Items)+len(customItems))
	for _, c := range tpl.Items {
		if c.Ref() == "" {
			warnf(a.Warn, "item candidate without name or type, skipping")
			continue
		}
		if Eligible(c.Conditions, snap, a.Warn) {
			pool = append(pool, c)
		}
	}
	for _, ci := range customItems {
		if !ci.IsEnabled() || !ci.AllowsBiome(snap.Terrain) {
			continue
		}
		if ci.ID == "" {
			continue
		}
		chance := DefaultCatalogSpawnChance
		cond := catalog.Conditions{}
		for _, rule := range ci.NaturalSpawn {
			if rule.Terrain != snap.Terrain {
				continue
			}
			cond = rule.Conditions
			if rule.Chance != nil {
				chance = *rule.Chance
			} else if rule.Conditions.Chance != nil {
				chance = *rule.Conditions.Chance
			}
			break
		}
		cond.Chance = &chance
		if Eligible(cond, snap, a.Warn) {
			pool = append(pool, catalog.SpawnCandidate{Name: ci.ID, Conditions: cond})
		}
	}
	return pool
}

// creaturePools partitions terrain-spawnable creatures into plants and
// animals, honoring each natural-spawn rule's extra conditions.
func (a Assembler) creaturePools(snap world.EnvironmentalSnapshot) (plants, animals []catalog.CreatureDefinition) {
	rawPlants, rawAnimals := a.Creatures.PartitionForTerrain(snap.Terrain)
	for _, def := range rawPlants {
		if rule, ok := def.SpawnRuleFor(snap.Terrain); ok && Eligible(rule.Conditions, snap, a.Warn) {
			plants = append(plants, def)
		}
	}
	for _, def := range rawAnimals {
		if rule, ok := def.SpawnRuleFor(snap.Terrain); ok && Eligible(rule.Conditions, snap, a.Warn) {
			animals = append(animals, def)
		}
	}
	return plants, animals
}

func (a Assembler) structureCandidates(tpl catalog.TerrainTemplate, terrain world.Terrain, customStructures []catalog.CustomStructure) []catalog.SpawnCandidate {
	pool := append([]catalog.SpawnCandidate{}, tpl.Structures...)
	for _, cs := range customStructures {
		if !cs.IsEnabled() || !cs.AllowsBiome(terrain) {
			continue
		}
		def := catalog.StructureDefinition{
			Name:        cs.Name,
			Description: cs.Description,
			Emoji:       cs.Emoji,
			Loot:        cs.Loot,
		}
		pool = append(pool, catalog.SpawnCandidate{
			Name:       cs.ID,
			Conditions: catalog.Conditions{Chance: cs.Chance},
			Structure:  &def,
		})
	}
	return pool
}

// mergeLoot rolls each loot entry independently and folds successful
// draws into the item list, incrementing an existing matching item
// instead of duplicating it.
func (a Assembler) mergeLoot(rng *rand.Rand, items catalog.ItemRegistry, list []world.SpawnedItem, loot []catalog.LootEntry) []world.SpawnedItem {
	for _, entry := range loot {
		if rng.Float64() >= entry.Chance {
			continue
		}
		qty := drawQuantity(rng, entry.Quantity)
		if qty == 0 {
			continue
		}
		ref := entry.ItemID
		if ref == "" {
			ref = entry.Name
		}
		def, resolved := items.Resolve(ref)

		idx := -1
		if entry.ItemID != "" {
			idx = findItemByID(list, entry.ItemID)
		}
		if idx < 0 && resolved {
			idx = findItemByID(list, def.ID)
		}
		if idx < 0 && entry.Name != "" {
			idx = findItemByName(list, entry.Name)
		}
		if idx >= 0 {
			list[idx].Quantity += qty
			continue
		}

		switch {
		case resolved:
			list = append(list, spawnedFromDef(def, qty, a.lang()))
		case entry.Name != "":
			list = append(list, world.SpawnedItem{Name: entry.Name, Tier: 1, Quantity: qty})
		default:
			warnf(a.Warn, "loot entry without id or name, dropping")
		}
	}
	return list
}

func findItemByID(list []world.SpawnedItem, id string) int {
	for i, it := range list {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func findItemByName(list []world.SpawnedItem, name string) int {
	for i, it := range list {
		if strings.EqualFold(it.Name, name) {
			return i
		}
	}
	return -1
}

func spawnedFromDef(def catalog.ItemDefinition, qty int, lang string) world.SpawnedItem {
	tier := def.Tier
	if tier < 1 {
		tier = 1
	}
	return world.SpawnedItem{
		ID:          def.ID,
		Name:        def.Name(lang),
		Description: def.Description,
		Tier:        tier,
		Quantity:    qty,
		Emoji:       def.Emoji,
	}
}

func drawQuantity(rng *rand.Rand, q catalog.QuantityRange) int {
	lo, hi := q.Min, q.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo < 0 {
		lo = 0
	}
	if hi < 0 {
		hi = 0
	}
	if hi == lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// animalCandidates wraps animal creature definitions as enemy-payload
// candidates so the enemy gate can draw from them.
func animalCandidates(animals []catalog.CreatureDefinition, terrain world.Terrain) []catalog.SpawnCandidate {
	out := make([]catalog.SpawnCandidate, 0, len(animals))
	for _, def := range animals {
		cond := catalog.Conditions{}
		if rule, ok := def.SpawnRuleFor(terrain); ok {
			cond = rule.Conditions
			if rule.Chance != nil {
				cond.Chance = rule.Chance
			}
		}
		enemy := catalog.EnemyDefinition{
			Name:         def.Name,
			HP:           def.HP,
			Damage:       def.Damage,
			Behavior:     def.Behavior,
			Size:         def.Size,
			MaxSatiation: def.MaxSatiation,
			Diet:         def.Diet,
			SenseRadius:  def.SenseRadius,
			Emoji:        def.Emoji,
		}
		out = append(out, catalog.SpawnCandidate{Name: def.Name, Conditions: cond, Enemy: &enemy})
	}
	return out
}

func npcFrom(c catalog.SpawnCandidate) world.SpawnedNPC {
	if c.NPC != nil {
		return world.SpawnedNPC{Name: c.NPC.Name, Description: c.NPC.Description, Emoji: c.NPC.Emoji}
	}
	return world.SpawnedNPC{Name: c.Ref()}
}

func enemyFrom(c catalog.SpawnCandidate, warn WarnFunc) *world.SpawnedEnemy {
	if c.Enemy == nil {
		warnf(warn, "enemy candidate %q has no combat payload, using defaults", c.Ref())
		return defaultEnemy(c.Ref())
	}
	def := *c.Enemy
	e := defaultEnemy(def.Name)
	if e.Name == "" {
		e.Name = c.Ref()
	}
	if def.HP > 0 {
		e.HP = def.HP
	}
	if def.Damage > 0 {
		e.Damage = def.Damage
	}
	if def.Behavior != "" {
		e.Behavior = def.Behavior
	}
	if def.Size != "" {
		e.Size = def.Size
	}
	if def.MaxSatiation > 0 {
		e.MaxSatiation = def.MaxSatiation
	}
	e.Satiation = e.MaxSatiation
	if len(def.Diet) > 0 {
		e.Diet = def.Diet
	}
	if def.SenseRadius > 0 {
		e.Sense = &world.SenseEffect{Radius: def.SenseRadius, Description: "Something is aware of you."}
	}
	e.Emoji = def.Emoji
	return e
}

func enemyFromCreature(def catalog.CreatureDefinition) *world.SpawnedEnemy {
	e := defaultEnemy(def.Name)
	if def.HP > 0 {
		e.HP = def.HP
	}
	if def.Damage > 0 {
		e.Damage = def.Damage
	}
	if def.Behavior != "" {
		e.Behavior = def.Behavior
	}
	if def.Size != "" {
		e.Size = def.Size
	}
	if def.MaxSatiation > 0 {
		e.MaxSatiation = def.MaxSatiation
	}
	e.Satiation = e.MaxSatiation
	if len(def.Diet) > 0 {
		e.Diet = def.Diet
	}
	if def.SenseRadius > 0 {
		e.Sense = &world.SenseEffect{Radius: def.SenseRadius, Description: "Something is aware of you."}
	}
	e.Emoji = def.Emoji
	return e
}

func defaultEnemy(name string) *world.SpawnedEnemy {
	return &world.SpawnedEnemy{
		Name:         name,
		HP:           DefaultEnemyHP,
		Damage:       DefaultEnemyDamage,
		Behavior:     DefaultEnemyBehavior,
		Size:         DefaultEnemySize,
		Satiation:    DefaultEnemyMaxSatiation,
		MaxSatiation: DefaultEnemyMaxSatiation,
		Diet:         DefaultEnemyDiet(),
	}
}

// buildActions synthesizes the ordered interaction list. The order is a
// UI contract: observe enemy, one talk affordance, one pickup per item
// in item order, then explore and listen.
func buildActions(c world.ChunkContent) []world.Action {
	actions := []world.Action{}
	id := 0
	add := func(kind world.ActionKind, params map[string]any) {
		id++
		actions = append(actions, world.Action{ID: id, Text: kind, Params: params})
	}
	if c.Enemy != nil {
		add(world.ActionObserveEnemy, map[string]any{"enemy": c.Enemy.Name})
	}
	for _, npc := range c.NPCs {
		if npc.Name != "" {
			add(world.ActionTalkNPC, map[string]any{"npc": npc.Name})
			break
		}
	}
	for i, it := range c.Items {
		add(world.ActionPickupItem, map[string]any{"item": it.Name, "index": i})
	}
	add(world.ActionExplore, nil)
	add(world.ActionListen, nil)
	return actions
}

func (a Assembler) lang() string {
	if a.Language == "" {
		return "en"
	}
	return a.Language
}
