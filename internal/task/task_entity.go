package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeCleaning    = "cleaning"
	TypeMaintenance = "maintenance"

	StatusPending = "pending"
	StatusDone    = "done"

	CleaningRegular = "regular"
	CleaningDeep    = "deep"
)

type Task struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	PropertyGroupID uuid.UUID  `gorm:"column:property_group_id;type:uuid;not null;index"`
	UnitID          uuid.UUID  `gorm:"column:unit_id;type:uuid;not null;index"`
	AssignedTo      uuid.UUID  `gorm:"column:assigned_to;type:uuid;not null;index"`
	Type            string     `gorm:"column:type;type:varchar(20);not null"`
	Date            time.Time  `gorm:"column:date;not null;index"`
	Status          string     `gorm:"column:status;type:varchar(20);not null;default:pending"`
	CleaningType    *string    `gorm:"column:cleaning_type;type:varchar(20)"`
	CompletedAt     *time.Time `gorm:"column:completed_at"`
	CreatedBy       uuid.UUID  `gorm:"column:created_by;type:uuid"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
