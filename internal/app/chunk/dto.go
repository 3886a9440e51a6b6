package chunk

import "github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"

type Request struct {
	WorldID string
	X       int
	Y       int
}

type Response struct {
	WorldID   string             `json:"world_id"`
	Pos       world.Point        `json:"pos"`
	Generated bool               `json:"generated"`
	Chunk     world.ChunkContent `json:"chunk"`
}
