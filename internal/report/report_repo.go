package report

import (
	"context"

	"aparthotel/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *FinancialReport) error
	PeriodExists(ctx context.Context, propertyGroupID string, month, year int) (bool, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*FinancialReport, error)
	FindAllByCompany(ctx context.Context, companyID string, query ListFinancialReportsQuery) ([]FinancialReport, error)
	FindLatestByPropertyGroup(ctx context.Context, companyID, propertyGroupID string) (*FinancialReport, error)
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

func (r *repository) Create(ctx context.Context, fr *FinancialReport) error {
	return r.db.WithContext(ctx).Create(fr).Error
}

func (r *repository) PeriodExists(ctx context.Context, propertyGroupID string, month, year int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FinancialReport{}).
		Where("property_group_id = ? AND month = ? AND year = ?", propertyGroupID, month, year).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*FinancialReport, error) {
	var fr FinancialReport
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&fr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, query ListFinancialReportsQuery) ([]FinancialReport, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID), tenant.PropertyScope(query.PropertyGroupID))
	if query.Year != 0 {
		q = q.Where("year = ?", query.Year)
	}

	var reports []FinancialReport
	err := q.Order("year DESC, month DESC").Find(&reports).Error
	return reports, err
}

func (r *repository) FindLatestByPropertyGroup(ctx context.Context, companyID, propertyGroupID string) (*FinancialReport, error) {
	var fr FinancialReport
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("property_group_id = ?", propertyGroupID).
		Order("year DESC, month DESC").
		First(&fr).Error
	if err != nil {
		return nil, err
	}
	return &fr, nil
}
