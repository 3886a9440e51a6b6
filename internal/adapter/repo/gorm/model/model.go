// Package model holds the persistence row types. Regenerate with
// tools/modelgen after a schema change, or keep edits in sync with the
// migrations by hand.
package model

import "time"

type WorldState struct {
	WorldID   string    `gorm:"column:world_id;primaryKey"`
	State     []byte    `gorm:"column:state"`
	Version   int64     `gorm:"column:version"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (WorldState) TableName() string { return "world_states" }

type CustomItem struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Data      []byte    `gorm:"column:data"`
	Enabled   bool      `gorm:"column:enabled"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (CustomItem) TableName() string { return "custom_items" }

type CustomStructure struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Data      []byte    `gorm:"column:data"`
	Enabled   bool      `gorm:"column:enabled"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (CustomStructure) TableName() string { return "custom_structures" }
