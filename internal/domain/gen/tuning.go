package gen

// Generation tuning. The item count pipeline uses baseMaxItems 1.4 with
// the 0.2+0.5*S*density count multiplier.
const (
	SoftcapK = 0.4

	MaxSpawnChance  = 0.95
	TierChanceDecay = 0.9

	BaseMaxItems   = 1.4
	BaseFindChance = 0.035
	FindChanceMin  = 0.01
	FindChanceMax  = 0.9

	ItemBudget    = 1.0
	ItemCostScale = 0.6

	MinRarity      = 0.05
	DefaultRarity  = 0.2
	RarityTierStep = 0.15

	RareFallbackMinTier = 5
	RareFallbackChance  = 0.02

	SampleBaseCount = 6

	NPCGateBase = 0.01
	NPCGateMin  = 0.01
	NPCGateMax  = 0.6

	EnemyGateBase = 0.006
	EnemyGateMin  = 0.005
	EnemyGateMax  = 0.5

	AnimalGateBase = 0.08

	PlantGateBase = 0.95
	PlantGateMin  = 0.01
	PlantGateMax  = 0.99

	MaxStructuresPerChunk = 2
	MaxPlantsPerChunk     = 18

	DefaultCatalogSpawnChance = 0.5

	DefaultEnemyHP           = 100
	DefaultEnemyDamage       = 10
	DefaultEnemyBehavior     = "aggressive"
	DefaultEnemySize         = "medium"
	DefaultEnemyMaxSatiation = 100
)

// DefaultEnemyDiet is the single-entry diet applied when a creature
// definition does not declare one.
func DefaultEnemyDiet() []string {
	return []string{"meat"}
}
