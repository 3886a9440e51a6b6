package world

import "fmt"

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Key is the canonical chunk-map key for a coordinate.
func (p Point) Key() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func (p Point) Neighbors() [4]Point {
	return [4]Point{
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
	}
}

type Terrain string

const (
	TerrainForest   Terrain = "forest"
	TerrainPlains   Terrain = "plains"
	TerrainDesert   Terrain = "desert"
	TerrainSwamp    Terrain = "swamp"
	TerrainMountain Terrain = "mountain"
	TerrainTundra   Terrain = "tundra"
)

type SoilType string

const (
	SoilLoam  SoilType = "loam"
	SoilClay  SoilType = "clay"
	SoilSand  SoilType = "sand"
	SoilPeat  SoilType = "peat"
	SoilRocky SoilType = "rocky"
	SoilFrost SoilType = "frost"
)

// EnvironmentalSnapshot is the per-chunk scalar profile generation reads.
// Scalars use a 0-100 scale. The generator never mutates a snapshot.
type EnvironmentalSnapshot struct {
	Terrain  Terrain  `json:"terrain"`
	SoilType SoilType `json:"soil_type"`

	VegetationDensity float64 `json:"vegetation_density"`
	Moisture          float64 `json:"moisture"`
	Elevation         float64 `json:"elevation"`
	DangerLevel       float64 `json:"danger_level"`
	MagicAffinity     float64 `json:"magic_affinity"`
	HumanPresence     float64 `json:"human_presence"`
	PredatorPresence  float64 `json:"predator_presence"`
	Temperature       float64 `json:"temperature"`
	Explorability     float64 `json:"explorability"`
	TravelCost        float64 `json:"travel_cost"`
	LightLevel        float64 `json:"light_level"`
	WindLevel         float64 `json:"wind_level"`
}

// Field resolves a condition key to its numeric snapshot value. The key
// names match the content files, not the Go field names.
func (s EnvironmentalSnapshot) Field(name string) (float64, bool) {
	switch name {
	case "vegetationDensity":
		return s.VegetationDensity, true
	case "moisture":
		return s.Moisture, true
	case "elevation":
		return s.Elevation, true
	case "dangerLevel":
		return s.DangerLevel, true
	case "magicAffinity":
		return s.MagicAffinity, true
	case "humanPresence":
		return s.HumanPresence, true
	case "predatorPresence":
		return s.PredatorPresence, true
	case "temperature":
		return s.Temperature, true
	case "explorability":
		return s.Explorability, true
	case "travelCost":
		return s.TravelCost, true
	case "lightLevel":
		return s.LightLevel, true
	case "windLevel":
		return s.WindLevel, true
	default:
		return 0, false
	}
}

// WorldProfile is the world-wide tuning profile. SpawnMultiplier is
// softcapped before use; ResourceDensity is applied as-is.
type WorldProfile struct {
	SpawnMultiplier float64 `json:"spawn_multiplier"`
	ResourceDensity float64 `json:"resource_density"`
}

func DefaultProfile() WorldProfile {
	return WorldProfile{SpawnMultiplier: 1, ResourceDensity: 1}
}
