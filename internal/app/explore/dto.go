package explore

import "github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"

type Request struct {
	WorldID string
	X       int
	Y       int
	Radius  int
}

type Response struct {
	WorldID             string       `json:"world_id"`
	Center              world.Point  `json:"center"`
	Radius              int          `json:"radius"`
	GeneratedChunks     int          `json:"generated_chunks"`
	TotalChunks         int          `json:"total_chunks"`
	Regions             int          `json:"regions"`
	Season              world.Season `json:"season"`
	SeasonEndsInSeconds int          `json:"season_ends_in_seconds"`
}
