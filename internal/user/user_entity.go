package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID  `gorm:"column:company_id;type:uuid;not null;index"`
	PropertyGroupID *uuid.UUID `gorm:"column:property_group_id;type:uuid;index"`
	Name            string     `gorm:"column:name;type:varchar(255);not null"`
	Email           string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Password        string     `gorm:"column:password;type:text;not null"`
	Role            string     `gorm:"column:role;type:varchar(20);not null"`
	FirstLogin      bool       `gorm:"column:first_login;not null;default:true"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
