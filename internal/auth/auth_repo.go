package auth

import (
	"context"
	"strings"
	"time"

	"aparthotel/internal/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, hash string) error
	SaveReset(ctx context.Context, reset *PasswordReset) error
	FindResetByHash(ctx context.Context, tokenHash string) (*PasswordReset, error)
	DeleteReset(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredResets(ctx context.Context, now time.Time) (int64, error)
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

func (r *repository) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) GetUserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdatePassword also clears first_login, which forces a change on first use.
func (r *repository) UpdatePassword(ctx context.Context, userID uuid.UUID, hash string) error {
	res := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password":    hash,
			"first_login": false,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SaveReset replaces any earlier reset of the same user.
func (r *repository) SaveReset(ctx context.Context, reset *PasswordReset) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"token_hash", "expires_at", "created_at"}),
		}).
		Create(reset).Error
}

func (r *repository) FindResetByHash(ctx context.Context, tokenHash string) (*PasswordReset, error) {
	var reset PasswordReset
	if err := r.db.WithContext(ctx).First(&reset, "token_hash = ?", tokenHash).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *repository) DeleteReset(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&PasswordReset{}, "user_id = ?", userID).Error
}

func (r *repository) DeleteExpiredResets(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&PasswordReset{})
	return res.RowsAffected, res.Error
}
