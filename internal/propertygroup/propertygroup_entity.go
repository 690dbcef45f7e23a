package propertygroup

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeHotel     = "hotel"
	TypeApartment = "apartment"
)

type PropertyGroup struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	Location     string    `gorm:"column:location;type:varchar(255);not null"`
	Address      string    `gorm:"column:address;type:text"`
	Type         string    `gorm:"column:type;type:varchar(20);not null"`
	CompanyShare float64   `gorm:"column:company_share;type:numeric(5,2);not null"`
	OwnerShare   float64   `gorm:"column:owner_share;type:numeric(5,2);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
