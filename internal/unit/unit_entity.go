package unit

import (
	"time"

	"github.com/google/uuid"
)

const UniqueUnitNumberIndex = "idx_units_property_unit_number"

type Unit struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	PropertyGroupID uuid.UUID  `gorm:"column:property_group_id;type:uuid;not null;uniqueIndex:idx_units_property_unit_number,priority:1"`
	UnitNumber      string     `gorm:"column:unit_number;type:varchar(50);not null;uniqueIndex:idx_units_property_unit_number,priority:2"`
	Floor           int        `gorm:"column:floor;not null;default:0"`
	Beds            int        `gorm:"column:beds;not null"`
	PricePerNight   float64    `gorm:"column:price_per_night;type:numeric(12,2);not null"`
	LastCleaned     *time.Time `gorm:"column:last_cleaned"`
	LastMaintenance *time.Time `gorm:"column:last_maintenance"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
