package world

type SpawnedItem struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Tier        int    `json:"tier"`
	Quantity    int    `json:"quantity"`
	Emoji       string `json:"emoji,omitempty"`
}

type SpawnedNPC struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
}

type SpawnedStructure struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
}

type SenseEffect struct {
	Radius      float64 `json:"radius"`
	Description string  `json:"description,omitempty"`
}

type SpawnedEnemy struct {
	Name         string       `json:"name"`
	HP           int          `json:"hp"`
	Damage       int          `json:"damage"`
	Behavior     string       `json:"behavior"`
	Size         string       `json:"size"`
	Satiation    int          `json:"satiation"`
	MaxSatiation int          `json:"max_satiation"`
	Diet         []string     `json:"diet"`
	Sense        *SenseEffect `json:"sense,omitempty"`
	Emoji        string       `json:"emoji,omitempty"`
}

type PlantInstance struct {
	Name     string `json:"name"`
	Emoji    string `json:"emoji,omitempty"`
	HP       int    `json:"hp"`
	Maturity int    `json:"maturity"`
	Age      int    `json:"age"`
}

type ActionKind string

const (
	ActionObserveEnemy ActionKind = "observe_enemy"
	ActionTalkNPC      ActionKind = "talk_npc"
	ActionPickupItem   ActionKind = "pickup_item"
	ActionExplore      ActionKind = "explore"
	ActionListen       ActionKind = "listen"
)

// Action is one player-facing affordance. IDs start at 1 and increment
// in list order within a single assembly; the UI relies on that order.
type Action struct {
	ID     int            `json:"id"`
	Text   ActionKind     `json:"text"`
	Params map[string]any `json:"params,omitempty"`
}

// ChunkContent is the assembled content of one materialized chunk.
type ChunkContent struct {
	Terrain     Terrain            `json:"terrain"`
	Description string             `json:"description"`
	NPCs        []SpawnedNPC       `json:"npcs"`
	Items       []SpawnedItem      `json:"items"`
	Structures  []SpawnedStructure `json:"structures"`
	Enemy       *SpawnedEnemy      `json:"enemy,omitempty"`
	Plants      []PlantInstance    `json:"plants"`
	Actions     []Action           `json:"actions"`
}
