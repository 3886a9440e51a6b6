package catalogadmin

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"
)

var (
	ErrInvalidRequest = errors.New("invalid catalog request")
	ErrUnknownKind    = errors.New("unknown catalog entry kind")
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type RegisterItemUseCase struct {
	Catalog ports.CustomCatalogRepository
}

func (u RegisterItemUseCase) Execute(ctx context.Context, req RegisterItemRequest) (RegisterItemResponse, error) {
	item := req.Item
	item.ID = strings.TrimSpace(item.ID)
	item.Name = strings.TrimSpace(item.Name)
	if !idPattern.MatchString(item.ID) || item.Name == "" {
		return RegisterItemResponse{}, ErrInvalidRequest
	}
	if item.Quantity.Min < 0 || item.Quantity.Max < item.Quantity.Min {
		return RegisterItemResponse{}, ErrInvalidRequest
	}
	for _, rule := range item.NaturalSpawn {
		if rule.Chance != nil && (*rule.Chance < 0 || *rule.Chance > 1) {
			return RegisterItemResponse{}, ErrInvalidRequest
		}
	}
	if err := u.Catalog.SaveItem(ctx, item); err != nil {
		return RegisterItemResponse{}, err
	}
	return RegisterItemResponse{ID: item.ID}, nil
}

type RegisterStructureUseCase struct {
	Catalog ports.CustomCatalogRepository
}

func (u RegisterStructureUseCase) Execute(ctx context.Context, req RegisterStructureRequest) (RegisterStructureResponse, error) {
	st := req.Structure
	st.ID = strings.TrimSpace(st.ID)
	st.Name = strings.TrimSpace(st.Name)
	if !idPattern.MatchString(st.ID) || st.Name == "" {
		return RegisterStructureResponse{}, ErrInvalidRequest
	}
	if st.Chance != nil && (*st.Chance < 0 || *st.Chance > 1) {
		return RegisterStructureResponse{}, ErrInvalidRequest
	}
	for _, loot := range st.Loot {
		if loot.ItemID == "" && loot.Name == "" {
			return RegisterStructureResponse{}, ErrInvalidRequest
		}
		if loot.Chance < 0 || loot.Chance > 1 {
			return RegisterStructureResponse{}, ErrInvalidRequest
		}
	}
	if err := u.Catalog.SaveStructure(ctx, st); err != nil {
		return RegisterStructureResponse{}, err
	}
	return RegisterStructureResponse{ID: st.ID}, nil
}

type ListUseCase struct {
	Catalog ports.CustomCatalogRepository
}

func (u ListUseCase) Execute(ctx context.Context, _ ListRequest) (ListResponse, error) {
	items, err := u.Catalog.ListItems(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	structures, err := u.Catalog.ListStructures(ctx)
	if err != nil {
		return ListResponse{}, err
	}
	if items == nil {
		items = []ports.CustomItemRecord{}
	}
	if structures == nil {
		structures = []ports.CustomStructureRecord{}
	}
	return ListResponse{Items: items, Structures: structures}, nil
}

type SetEnabledUseCase struct {
	Catalog ports.CustomCatalogRepository
}

func (u SetEnabledUseCase) Execute(ctx context.Context, req SetEnabledRequest) (SetEnabledResponse, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return SetEnabledResponse{}, ErrInvalidRequest
	}
	switch req.Kind {
	case "item":
		if err := u.Catalog.SetItemEnabled(ctx, id, req.Enabled); err != nil {
			return SetEnabledResponse{}, err
		}
	case "structure":
		if err := u.Catalog.SetStructureEnabled(ctx, id, req.Enabled); err != nil {
			return SetEnabledResponse{}, err
		}
	default:
		return SetEnabledResponse{}, ErrUnknownKind
	}
	return SetEnabledResponse{ID: id, Enabled: req.Enabled}, nil
}

// EnabledContent loads the currently enabled runtime entries in the
// shape the generation pipeline consumes. Disabled entries never reach
// the world provider.
func EnabledContent(ctx context.Context, repo ports.CustomCatalogRepository) ([]catalog.CustomItem, []catalog.CustomStructure, error) {
	items, err := repo.ListItems(ctx)
	if err != nil {
		return nil, nil, err
	}
	structures, err := repo.ListStructures(ctx)
	if err != nil {
		return nil, nil, err
	}
	outItems := make([]catalog.CustomItem, 0, len(items))
	for _, rec := range items {
		if rec.Item.IsEnabled() {
			outItems = append(outItems, rec.Item)
		}
	}
	outStructures := make([]catalog.CustomStructure, 0, len(structures))
	for _, rec := range structures {
		if rec.Structure.IsEnabled() {
			outStructures = append(outStructures, rec.Structure)
		}
	}
	return outItems, outStructures, nil
}
