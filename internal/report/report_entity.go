package report

import (
	"time"

	"github.com/google/uuid"
)

const UniqueFinancialPeriodIndex = "idx_financial_reports_period"

type FinancialReport struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID       uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	PropertyGroupID uuid.UUID `gorm:"column:property_group_id;type:uuid;not null;uniqueIndex:idx_financial_reports_period,priority:1"`
	Month           int       `gorm:"column:month;not null;uniqueIndex:idx_financial_reports_period,priority:2"`
	Year            int       `gorm:"column:year;not null;uniqueIndex:idx_financial_reports_period,priority:3"`
	RentalIncome    float64   `gorm:"column:rental_income;type:numeric(14,2);not null"`
	TotalExpenses   float64   `gorm:"column:total_expenses;type:numeric(14,2);not null"`
	NetIncome       float64   `gorm:"column:net_income;type:numeric(14,2);not null"`
	CompanyShare    float64   `gorm:"column:company_share;type:numeric(14,2);not null"`
	OwnerShare      float64   `gorm:"column:owner_share;type:numeric(14,2);not null"`
	BookingCount    int       `gorm:"column:booking_count;not null;default:0"`
	DateGenerated   time.Time `gorm:"column:date_generated;not null"`
	CreatedBy       uuid.UUID `gorm:"column:created_by;type:uuid"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
}
