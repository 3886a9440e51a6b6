package status

import "github.com/ngoccc0/dreamland-engine-sub005/internal/domain/world"

type Request struct {
	WorldID string
}

type Response struct {
	WorldID             string       `json:"world_id"`
	Chunks              int          `json:"chunks"`
	Regions             int          `json:"regions"`
	Season              world.Season `json:"season"`
	SeasonEndsInSeconds int          `json:"season_ends_in_seconds"`
	CatalogItems        int          `json:"catalog_items"`
	CatalogTemplates    int          `json:"catalog_templates"`
	CatalogCreatures    int          `json:"catalog_creatures"`
}
