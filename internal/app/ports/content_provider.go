package ports

import "github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"

// ContentProvider exposes the static generation dataset: item and
// creature registries, terrain templates and adjacency rules.
type ContentProvider interface {
	Items() catalog.ItemRegistry
	Templates() catalog.TemplateRegistry
	Creatures() catalog.CreatureRegistry
	Terrains() catalog.TerrainConfig
}
