package task

import (
	"context"
	"time"

	"aparthotel/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter narrows company-wide listings. From/To bound the task date as [From, To).
type Filter struct {
	PropertyGroupID string
	AssignedTo      string
	Status          string
	From            *time.Time
	To              *time.Time
}

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, t *Task) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Task, error)
	LockByIDAndCompany(ctx context.Context, companyID, id string) (*Task, error)
	FindByCompany(ctx context.Context, companyID string, filter Filter) ([]Task, error)
	UpdateStatus(ctx context.Context, t *Task) error
	Delete(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// LockByIDAndCompany holds the task row until the transaction ends so two
// completions of the same task cannot both pass the status check.
func (r *repository) LockByIDAndCompany(ctx context.Context, companyID, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindByCompany(ctx context.Context, companyID string, filter Filter) ([]Task, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID), tenant.PropertyScope(filter.PropertyGroupID))

	if filter.AssignedTo != "" {
		q = q.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date < ?", *filter.To)
	}

	var tasks []Task
	err := q.Order("date ASC, created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *repository) UpdateStatus(ctx context.Context, t *Task) error {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id = ? AND company_id = ?", t.ID, t.CompanyID).
		Updates(map[string]any{
			"status":        t.Status,
			"cleaning_type": t.CleaningType,
			"completed_at":  t.CompletedAt,
			"updated_at":    time.Now().UTC(),
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
		Delete(&Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
