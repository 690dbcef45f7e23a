package counter

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const TypeBooking = "booking"

var prefixes = map[string]string{
	TypeBooking: "BK",
}

// Reference renders a sequence value as a human-facing code, e.g. BK-000042.
func Reference(counterType string, seq int64) string {
	prefix, ok := prefixes[counterType]
	if !ok {
		prefix = "REF"
	}
	return fmt.Sprintf("%s-%06d", prefix, seq)
}

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// GetNextValue upserts the (company, type) row and returns the incremented
// value. The row lock taken by the upsert serializes concurrent callers.
func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	row := CompanyCounter{
		CompanyID:   companyID,
		CounterType: counterType,
		LastValue:   1,
	}

	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "company_id"}, {Name: "counter_type"}},
				DoUpdates: clause.Assignments(map[string]any{
					"last_value": gorm.Expr("company_counters.last_value + 1"),
					"updated_at": gorm.Expr("now()"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "last_value"}}},
		).
		Create(&row).Error
	if err != nil {
		return 0, err
	}

	return row.LastValue, nil
}
