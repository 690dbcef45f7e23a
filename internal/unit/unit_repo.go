package unit

import (
	"context"
	"time"

	"aparthotel/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=unit_repo.go -destination=mock/unit_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *Unit) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Unit, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Unit, error)
	LockByIDAndCompany(ctx context.Context, companyID string, id string) (*Unit, error)
	UnitNumberExists(ctx context.Context, propertyGroupID, unitNumber, excludeID string) (bool, error)
	PropertyGroupBelongsToCompany(ctx context.Context, companyID, propertyGroupID string) (bool, error)
	Update(ctx context.Context, u *Unit) error
	SetLastCleaned(ctx context.Context, id string, at time.Time) error
	SetLastMaintenance(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, companyID string, id string) error
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

func (r *repository) Create(ctx context.Context, u *Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Unit, error) {
	var units []Unit
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("property_group_id, unit_number").
		Find(&units).Error
	return units, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Unit, error) {
	var u Unit
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// LockByIDAndCompany loads the unit with SELECT ... FOR UPDATE. Only
// meaningful inside a transaction; concurrent lockers on the same unit wait
// until the holder commits.
func (r *repository) LockByIDAndCompany(ctx context.Context, companyID string, id string) (*Unit, error) {
	var u Unit
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) UnitNumberExists(ctx context.Context, propertyGroupID, unitNumber, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Unit{}).
		Where("property_group_id = ? AND unit_number = ?", propertyGroupID, unitNumber)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) PropertyGroupBelongsToCompany(ctx context.Context, companyID, propertyGroupID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("property_groups").
		Where("id = ? AND company_id = ?", propertyGroupID, companyID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, u *Unit) error {
	return r.db.WithContext(ctx).
		Model(&Unit{}).
		Where("id = ? AND company_id = ?", u.ID, u.CompanyID).
		Updates(map[string]any{
			"unit_number":     u.UnitNumber,
			"floor":           u.Floor,
			"beds":            u.Beds,
			"price_per_night": u.PricePerNight,
			"updated_at":      time.Now().UTC(),
		}).Error
}

func (r *repository) SetLastCleaned(ctx context.Context, id string, at time.Time) error {
	return r.touch(ctx, id, "last_cleaned", at)
}

func (r *repository) SetLastMaintenance(ctx context.Context, id string, at time.Time) error {
	return r.touch(ctx, id, "last_maintenance", at)
}

func (r *repository) touch(ctx context.Context, id, column string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Unit{}).
		Where("id = ?", id).
		Update(column, at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Unit{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
