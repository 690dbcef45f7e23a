package user

import (
	"context"
	"strings"

	"aparthotel/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, companyID string, id string) (*User, error)
	FindByIDAnyCompany(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAllByCompany(ctx context.Context, companyID string, filter ListUsersFilter) ([]User, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, companyID string, id string) error
	PropertyGroupBelongsToCompany(ctx context.Context, companyID, propertyGroupID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, companyID string, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByIDAnyCompany is for flows that run before a tenant is known.
func (r *repository) FindByIDAnyCompany(ctx context.Context, id string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "email = ?", strings.ToLower(strings.TrimSpace(email))).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter ListUsersFilter) ([]User, error) {
	var users []User

	db := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID), tenant.PropertyScope(filter.PropertyGroupID))
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}

	err := db.Order("name ASC").Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&User{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) PropertyGroupBelongsToCompany(ctx context.Context, companyID, propertyGroupID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("property_groups").
		Where("id = ?", propertyGroupID).
		Where("company_id = ?", companyID).
		Count(&count).Error
	return count > 0, err
}
