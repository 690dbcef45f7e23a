package owner

import (
	"context"

	"aparthotel/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=owner_repo.go -destination=mock/owner_repo_mock.go -package=mock
type Repository interface {
	CreateNote(ctx context.Context, n *OwnerNote) error
	FindNotes(ctx context.Context, companyID, ownerID string) ([]OwnerNote, error)
	DeleteNote(ctx context.Context, companyID, ownerID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateNote(ctx context.Context, n *OwnerNote) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *repository) FindNotes(ctx context.Context, companyID, ownerID string) ([]OwnerNote, error) {
	var notes []OwnerNote
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&notes).Error
	return notes, err
}

func (r *repository) DeleteNote(ctx context.Context, companyID, ownerID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("owner_id = ?", ownerID).
		Delete(&OwnerNote{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
