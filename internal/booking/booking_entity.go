package booking

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BookingNote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Booking struct {
	ID              uuid.UUID                        `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID                        `gorm:"column:company_id;type:uuid;not null;index"`
	PropertyGroupID uuid.UUID                        `gorm:"column:property_group_id;type:uuid;not null;index"`
	UnitID          uuid.UUID                        `gorm:"column:unit_id;type:uuid;not null;index:idx_bookings_unit_stay,priority:1"`
	ReferenceCode   string                           `gorm:"column:reference_code;type:varchar(32);not null"`
	GuestName       string                           `gorm:"column:guest_name;type:varchar(255);not null"`
	GuestEmail      string                           `gorm:"column:guest_email;type:varchar(255);not null"`
	GuestID         string                           `gorm:"column:guest_id;type:varchar(100)"`
	GuestPhone      string                           `gorm:"column:guest_phone;type:varchar(50)"`
	NumGuests       int                              `gorm:"column:num_guests;not null"`
	CheckIn         time.Time                        `gorm:"column:check_in;not null;index:idx_bookings_unit_stay,priority:2"`
	CheckOut        time.Time                        `gorm:"column:check_out;not null;index:idx_bookings_unit_stay,priority:3"`
	FullPrice       float64                          `gorm:"column:full_price;type:numeric(12,2);not null"`
	Notes           datatypes.JSONSlice[BookingNote] `gorm:"column:notes;type:jsonb"`
	CreatedBy       uuid.UUID                        `gorm:"column:created_by;type:uuid"`
	CreatedAt       time.Time                        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time                        `gorm:"column:updated_at;autoUpdateTime"`
}
