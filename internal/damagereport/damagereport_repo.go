package damagereport

import (
	"context"
	"time"

	"aparthotel/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=damagereport_repo.go -destination=mock/damagereport_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, d *DamageReport) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*DamageReport, error)
	FindByCompany(ctx context.Context, companyID, propertyGroupID string) ([]DamageReport, error)
	UpdateStatus(ctx context.Context, companyID, id, status string) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, d *DamageReport) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*DamageReport, error) {
	var d DamageReport
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindByCompany(ctx context.Context, companyID, propertyGroupID string) ([]DamageReport, error) {
	var reports []DamageReport
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID), tenant.PropertyScope(propertyGroupID)).
		Order("date DESC, created_at DESC").Find(&reports).Error
	return reports, err
}

func (r *repository) UpdateStatus(ctx context.Context, companyID, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&DamageReport{}).
		Where("id = ? AND company_id = ?", id, companyID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&DamageReport{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
