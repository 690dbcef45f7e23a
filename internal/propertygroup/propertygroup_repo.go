package propertygroup

import (
	"context"

	"aparthotel/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=propertygroup_repo.go -destination=mock/propertygroup_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, pg *PropertyGroup) error
	FindAllByCompany(ctx context.Context, companyID string) ([]PropertyGroup, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*PropertyGroup, error)
	FindByIDs(ctx context.Context, companyID string, ids []string) ([]PropertyGroup, error)
	Update(ctx context.Context, pg *PropertyGroup) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, pg *PropertyGroup) error {
	return r.db.WithContext(ctx).Create(pg).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]PropertyGroup, error) {
	var groups []PropertyGroup
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*PropertyGroup, error) {
	var pg PropertyGroup
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&pg, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pg, nil
}

func (r *repository) FindByIDs(ctx context.Context, companyID string, ids []string) ([]PropertyGroup, error) {
	var groups []PropertyGroup
	if len(ids) == 0 {
		return groups, nil
	}
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ?", ids).
		Find(&groups).Error
	return groups, err
}

func (r *repository) Update(ctx context.Context, pg *PropertyGroup) error {
	return r.db.WithContext(ctx).Save(pg).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&PropertyGroup{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
