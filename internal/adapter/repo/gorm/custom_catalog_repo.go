package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ngoccc0/dreamland-engine-sub005/internal/adapter/repo/gorm/model"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/app/ports"
	"github.com/ngoccc0/dreamland-engine-sub005/internal/domain/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomCatalogRepo struct {
	db *gorm.DB
}

func NewCustomCatalogRepo(db *gorm.DB) CustomCatalogRepo {
	return CustomCatalogRepo{db: db}
}

func (r CustomCatalogRepo) SaveItem(ctx context.Context, item catalog.CustomItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	row := model.CustomItem{
		ID:        item.ID,
		Data:      data,
		Enabled:   item.IsEnabled(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "enabled", "updated_at"}),
	}).Create(&row).Error
}

func (r CustomCatalogRepo) GetItem(ctx context.Context, id string) (ports.CustomItemRecord, error) {
	var row model.CustomItem
	if err := getDBFromCtx(ctx, r.db).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CustomItemRecord{}, ports.ErrNotFound
		}
		return ports.CustomItemRecord{}, err
	}
	return decodeItemRow(row)
}

func (r CustomCatalogRepo) ListItems(ctx context.Context) ([]ports.CustomItemRecord, error) {
	var rows []model.CustomItem
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.CustomItemRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeItemRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func (r CustomCatalogRepo) SetItemEnabled(ctx context.Context, id string, enabled bool) error {
	rec, err := r.GetItem(ctx, id)
	if err != nil {
		return err
	}
	rec.Item.Enabled = &enabled
	data, err := json.Marshal(rec.Item)
	if err != nil {
		return err
	}
	res := getDBFromCtx(ctx, r.db).Model(&model.CustomItem{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"data":       data,
			"enabled":    enabled,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r CustomCatalogRepo) SaveStructure(ctx context.Context, structure catalog.CustomStructure) error {
	data, err := json.Marshal(structure)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	row := model.CustomStructure{
		ID:        structure.ID,
		Data:      data,
		Enabled:   structure.IsEnabled(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "enabled", "updated_at"}),
	}).Create(&row).Error
}

func (r CustomCatalogRepo) ListStructures(ctx context.Context) ([]ports.CustomStructureRecord, error) {
	var rows []model.CustomStructure
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.CustomStructureRecord, 0, len(rows))
	for _, row := range rows {
		var structure catalog.CustomStructure
		if err := json.Unmarshal(row.Data, &structure); err != nil {
			return nil, err
		}
		out = append(out, ports.CustomStructureRecord{
			Structure: structure,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return out, nil
}

func (r CustomCatalogRepo) SetStructureEnabled(ctx context.Context, id string, enabled bool) error {
	var row model.CustomStructure
	db := getDBFromCtx(ctx, r.db)
	if err := db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ErrNotFound
		}
		return err
	}
	var structure catalog.CustomStructure
	if err := json.Unmarshal(row.Data, &structure); err != nil {
		return err
	}
	structure.Enabled = &enabled
	data, err := json.Marshal(structure)
	if err != nil {
		return err
	}
	return db.Model(&model.CustomStructure{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"data":       data,
			"enabled":    enabled,
			"updated_at": time.Now().UTC(),
		}).Error
}

func decodeItemRow(row model.CustomItem) (ports.CustomItemRecord, error) {
	var item catalog.CustomItem
	if err := json.Unmarshal(row.Data, &item); err != nil {
		return ports.CustomItemRecord{}, err
	}
	return ports.CustomItemRecord{
		Item:      item,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

var _ ports.CustomCatalogRepository = CustomCatalogRepo{}
