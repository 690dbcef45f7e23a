package app

import (
	"aparthotel/internal/auth"
	"aparthotel/internal/booking"
	"aparthotel/internal/damagereport"
	"aparthotel/internal/messaging/kafka"
	"aparthotel/internal/owner"
	"aparthotel/internal/propertygroup"
	"aparthotel/internal/report"
	"aparthotel/internal/shared/counter"
	"aparthotel/internal/task"
	"aparthotel/internal/unit"
	"aparthotel/internal/user"

	"gorm.io/gorm"
)

// Models lists every table owned by the service, in dependency order.
func Models() []any {
	return []any{
		&user.User{},
		&auth.PasswordReset{},
		&propertygroup.PropertyGroup{},
		&unit.Unit{},
		&booking.Booking{},
		&task.Task{},
		&report.FinancialReport{},
		&damagereport.DamageReport{},
		&owner.OwnerNote{},
		&counter.CompanyCounter{},
		&kafka.OutboxEvent{},
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
