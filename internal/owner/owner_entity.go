package owner

import (
	"time"

	"github.com/google/uuid"
)

type OwnerNote struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	OwnerID   uuid.UUID `gorm:"column:owner_id;type:uuid;not null;index"`
	Content   string    `gorm:"column:content;type:text;not null"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
