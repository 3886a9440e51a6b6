package world

// Region groups the chunks materialized together by one region-generator
// call. IDs come from the expansion state's incrementing counter.
type Region struct {
	ID      int      `json:"id"`
	Terrain Terrain  `json:"terrain"`
	Origin  Point    `json:"origin"`
	Chunks  []string `json:"chunks"`
}

// ExpansionState is the value snapshot of the world map threaded through
// expansion calls. Controllers clone before merging; a materialized chunk
// key is never regenerated or removed.
type ExpansionState struct {
	Chunks        map[string]ChunkContent
	Regions       map[int]Region
	RegionCounter int
}

func NewExpansionState() ExpansionState {
	return ExpansionState{
		Chunks:  map[string]ChunkContent{},
		Regions: map[int]Region{},
	}
}

func (s ExpansionState) Has(p Point) bool {
	_, ok := s.Chunks[p.Key()]
	return ok
}

func (s ExpansionState) Clone() ExpansionState {
	out := ExpansionState{
		Chunks:        make(map[string]ChunkContent, len(s.Chunks)),
		Regions:       make(map[int]Region, len(s.Regions)),
		RegionCounter: s.RegionCounter,
	}
	for k, v := range s.Chunks {
		out.Chunks[k] = v
	}
	for k, v := range s.Regions {
		out.Regions[k] = v
	}
	return out
}
