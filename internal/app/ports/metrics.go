package ports

import "github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"

type GenerationMetrics interface {
	RecordChunkGenerated(terrain world.Terrain)
	RecordPlaceholder()
	RecordTemplateWarning()
	RecordConflict()
}
