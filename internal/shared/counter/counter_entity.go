package counter

import "time"

// CompanyCounter holds the last issued value per company and counter type.
type CompanyCounter struct {
	CompanyID   string    `gorm:"column:company_id;type:uuid;primaryKey"`
	CounterType string    `gorm:"column:counter_type;type:varchar(50);primaryKey"`
	LastValue   int64     `gorm:"column:last_value;not null;default:0"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (CompanyCounter) TableName() string {
	return "company_counters"
}
