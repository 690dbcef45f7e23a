package booking

import (
	"context"
	"time"

	"aparthotel/internal/tenant"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filter narrows company-wide listings. From/To bound checkIn as [From, To).
type Filter struct {
	PropertyGroupID string
	UnitID          string
	From            *time.Time
	To              *time.Time
}

//go:generate mockgen -source=booking_repo.go -destination=mock/booking_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
	UpdateNotes(ctx context.Context, id string, notes []BookingNote) error
	Delete(ctx context.Context, companyID, id string) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Booking, error)
	LockByIDAndCompany(ctx context.Context, companyID, id string) (*Booking, error)
	HasOverlap(ctx context.Context, unitID string, checkIn, checkOut time.Time, excludeID string) (bool, error)
	FindByCompany(ctx context.Context, companyID string, filter Filter) ([]Booking, error)
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

func (r *repository) Create(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) Update(ctx context.Context, b *Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) UpdateNotes(ctx context.Context, id string, notes []BookingNote) error {
	return r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ?", id).
		Update("notes", datatypes.JSONSlice[BookingNote](notes)).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Booking{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// LockByIDAndCompany loads the booking with SELECT ... FOR UPDATE so note
// edits on the same booking apply one after another.
func (r *repository) LockByIDAndCompany(ctx context.Context, companyID, id string) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// HasOverlap reports whether another stay on the unit intersects
// [checkIn, checkOut). excludeID skips the booking being edited.
func (r *repository) HasOverlap(
	ctx context.Context,
	unitID string,
	checkIn, checkOut time.Time,
	excludeID string,
) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("unit_id = ?", unitID).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) FindByCompany(ctx context.Context, companyID string, filter Filter) ([]Booking, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID), tenant.PropertyScope(filter.PropertyGroupID))

	if filter.UnitID != "" {
		q = q.Where("unit_id = ?", filter.UnitID)
	}
	if filter.From != nil {
		q = q.Where("check_in >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("check_in < ?", *filter.To)
	}

	var bookings []Booking
	err := q.Order("check_in ASC").Find(&bookings).Error
	return bookings, err
}
