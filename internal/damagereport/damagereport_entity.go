package damagereport

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

type DamageReport struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	PropertyGroupID *uuid.UUID `gorm:"column:property_group_id;type:uuid;index"`
	UnitNumber      string     `gorm:"column:unit_number;type:varchar(50);not null"`
	Owner           string     `gorm:"column:owner;type:varchar(255)"`
	Description     string     `gorm:"column:description;type:text;not null"`
	Date            time.Time  `gorm:"column:date;not null"`
	ImagePath       string     `gorm:"column:image_path;type:varchar(500)"`
	ImageURL        string     `gorm:"column:image_url;type:varchar(1000)"`
	ReportedBy      uuid.UUID  `gorm:"column:reported_by;type:uuid;not null"`
	Status          string     `gorm:"column:status;type:varchar(20);not null;default:open"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
