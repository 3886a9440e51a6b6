package catalogadmin

import (
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
)

type RegisterItemRequest struct {
	Item catalog.CustomItem
}

type RegisterItemResponse struct {
	ID string `json:"id"`
}

type RegisterStructureRequest struct {
	Structure catalog.CustomStructure
}

type RegisterStructureResponse struct {
	ID string `json:"id"`
}

type ListRequest struct{}

type ListResponse struct {
	Items      []ports.CustomItemRecord      `json:"items"`
	Structures []ports.CustomStructureRecord `json:"structures"`
}

type SetEnabledRequest struct {
	ID      string
	Kind    string // "item" or "structure"
	Enabled bool
}

type SetEnabledResponse struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}
