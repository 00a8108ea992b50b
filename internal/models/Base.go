package models

import (
	"time"
)

// Base replaces gorm.Model for uploaded tables so the id is exposed under the
// same key clients send for upserts.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// All lists every table for AutoMigrate. Link comes first so the foreign key
// constraints of its dependants can be created.
func All() []any {
	return []any{
		&Link{},
		&Alignment{},
		&DRP{},
		&RoadCondition{},
		&BridgeInventory{},
		&RoadHazard{},
		&TrafficVolume{},
		&TrafficWeightingFactors{},
		&UnitCostsPERUnpaved{},
		&UnitCostsREH{},
		&UnitCostsRIGID{},
		&UnitCostsWidening{},
		&WidthStandards{},
	}
}

// PrimaryKey returns the row id once it has been inserted.
func (b Base) PrimaryKey() uint { return b.ID }
