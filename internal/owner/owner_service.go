package owner

import (
	"context"
	"errors"
	"time"

	"aparthotel/internal/booking"
	ownererrors "aparthotel/internal/owner/errors"
	"aparthotel/internal/propertygroup"
	"aparthotel/internal/rbac"
	"aparthotel/internal/report"
	"aparthotel/internal/shared/contextutil"
	"aparthotel/internal/shared/dateutil"
	"aparthotel/internal/unit"
	"aparthotel/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=owner_service.go -destination=mock/owner_service_mock.go -package=mock
type Service interface {
	Dashboard(ctx context.Context, actor Actor, ownerID string) (Dashboard, error)
	Apartments(ctx context.Context, actor Actor, ownerID string) ([]unit.UnitResponse, error)
	Reports(ctx context.Context, actor Actor, ownerID string) ([]report.FinancialReportResponse, error)
	Bookings(ctx context.Context, actor Actor, ownerID string) ([]OwnerBooking, error)
	ListNotes(ctx context.Context, actor Actor, ownerID string) ([]NoteResponse, error)
	AddNote(ctx context.Context, actor Actor, ownerID string, req AddNoteRequest) (NoteResponse, error)
	DeleteNote(ctx context.Context, actor Actor, ownerID, noteID string) error
}

type service struct {
	repo        Repository
	userRepo    user.Repository
	pgRepo      propertygroup.Repository
	unitService unit.Service
	bookingRepo booking.Repository
	reportRepo  report.Repository
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	repo Repository,
	userRepo user.Repository,
	pgRepo propertygroup.Repository,
	unitService unit.Service,
	bookingRepo booking.Repository,
	reportRepo report.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("owner.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("owner.service")
	}
	return &service{
		repo:        repo,
		userRepo:    userRepo,
		pgRepo:      pgRepo,
		unitService: unitService,
		bookingRepo: bookingRepo,
		reportRepo:  reportRepo,
		now:         time.Now,
		logger:      l,
	}
}

// resolve checks that actor may read ownerID and returns the owner's
// property group id. Owners may only read themselves; other roles reach
// this only through their capability check and may read any owner of the
// company.
func (s *service) resolve(ctx context.Context, actor Actor, ownerID string) (string, error) {
	if _, err := uuid.Parse(ownerID); err != nil {
		return "", ownererrors.ErrInvalidOwnerID
	}
	if rbac.Role(actor.Role) == rbac.RoleOwner && actor.UserID != ownerID {
		contextutil.GetLogger(ctx, s.logger).Warn("owner read rejected",
			zap.String("owner_id", ownerID),
			zap.String("user_id", actor.UserID),
		)
		return "", ownererrors.ErrForbidden
	}

	u, err := s.userRepo.FindByID(ctx, actor.CompanyID, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ownererrors.ErrOwnerNotFound
		}
		return "", err
	}
	if rbac.Role(u.Role) != rbac.RoleOwner {
		return "", ownererrors.ErrOwnerNotFound
	}
	if u.PropertyGroupID == nil {
		return "", ownererrors.ErrNoProperty
	}
	return u.PropertyGroupID.String(), nil
}

func (s *service) Dashboard(ctx context.Context, actor Actor, ownerID string) (Dashboard, error) {
	pgID, err := s.resolve(ctx, actor, ownerID)
	if err != nil {
		return Dashboard{}, err
	}

	pg, err := s.pgRepo.FindByIDAndCompany(ctx, actor.CompanyID, pgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Dashboard{}, ownererrors.ErrNoProperty
		}
		return Dashboard{}, err
	}

	units, err := s.unitService.GetAll(ctx, actor.CompanyID, pgID)
	if err != nil {
		return Dashboard{}, err
	}

	now := s.now().UTC()
	window, _, err := dateutil.PeriodWindow(0, int(now.Month()), now.Year())
	if err != nil {
		return Dashboard{}, err
	}

	// Stays that started before the month can still occupy nights in it.
	bookings, err := s.bookingRepo.FindByCompany(ctx, actor.CompanyID, booking.Filter{
		PropertyGroupID: pgID,
		To:              &window.To,
	})
	if err != nil {
		return Dashboard{}, err
	}
	stats := ComputeMonthStats(bookings, window, len(units))

	dash := Dashboard{
		PropertyGroup:          propertygroup.ToResponse(*pg),
		UnitCount:              len(units),
		BookingsThisMonth:      stats.Bookings,
		IncomeThisMonth:        stats.Income,
		OccupancyRateThisMonth: stats.OccupancyRate,
	}

	latest, err := s.reportRepo.FindLatestByPropertyGroup(ctx, actor.CompanyID, pgID)
	switch {
	case err == nil:
		resp := report.ToResponse(*latest)
		resp.PropertyGroupName = pg.Name
		dash.LatestReport = &resp
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return Dashboard{}, err
	}

	return dash, nil
}

func (s *service) Apartments(ctx context.Context, actor Actor, ownerID string) ([]unit.UnitResponse, error) {
	pgID, err := s.resolve(ctx, actor, ownerID)
	if err != nil {
		return nil, err
	}
	return s.unitService.GetAll(ctx, actor.CompanyID, pgID)
}

func (s *service) Reports(ctx context.Context, actor Actor, ownerID string) ([]report.FinancialReportResponse, error) {
	pgID, err := s.resolve(ctx, actor, ownerID)
	if err != nil {
		return nil, err
	}

	reports, err := s.reportRepo.FindAllByCompany(ctx, actor.CompanyID, report.ListFinancialReportsQuery{PropertyGroupID: pgID})
	if err != nil {
		return nil, err
	}

	resp := make([]report.FinancialReportResponse, len(reports))
	for i, r := range reports {
		resp[i] = report.ToResponse(r)
	}
	return resp, nil
}

func (s *service) Bookings(ctx context.Context, actor Actor, ownerID string) ([]OwnerBooking, error) {
	pgID, err := s.resolve(ctx, actor, ownerID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.FindByCompany(ctx, actor.CompanyID, booking.Filter{PropertyGroupID: pgID})
	if err != nil {
		return nil, err
	}

	resp := make([]OwnerBooking, len(bookings))
	for i, b := range bookings {
		resp[i] = OwnerBooking{
			ID:              b.ID.String(),
			PropertyGroupID: b.PropertyGroupID.String(),
			UnitID:          b.UnitID.String(),
			NumGuests:       b.NumGuests,
			CheckIn:         b.CheckIn.Format(dateutil.DateLayout),
			CheckOut:        b.CheckOut.Format(dateutil.DateLayout),
			Nights:          booking.Nights(b.CheckIn, b.CheckOut),
			FullPrice:       b.FullPrice,
		}
	}
	return resp, nil
}

func (s *service) ListNotes(ctx context.Context, actor Actor, ownerID string) ([]NoteResponse, error) {
	if _, err := s.resolve(ctx, actor, ownerID); err != nil && !errors.Is(err, ownererrors.ErrNoProperty) {
		return nil, err
	}

	notes, err := s.repo.FindNotes(ctx, actor.CompanyID, ownerID)
	if err != nil {
		return nil, err
	}

	resp := make([]NoteResponse, len(notes))
	for i, n := range notes {
		resp[i] = mapNote(n)
	}
	return resp, nil
}

func (s *service) AddNote(ctx context.Context, actor Actor, ownerID string, req AddNoteRequest) (NoteResponse, error) {
	if _, err := s.resolve(ctx, actor, ownerID); err != nil && !errors.Is(err, ownererrors.ErrNoProperty) {
		return NoteResponse{}, err
	}

	n := &OwnerNote{
		ID:        uuid.New(),
		CompanyID: parseUUID(actor.CompanyID),
		OwnerID:   uuid.MustParse(ownerID),
		Content:   req.Content,
		CreatedBy: parseUUID(actor.UserID),
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateNote(ctx, n); err != nil {
		return NoteResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("owner note added",
		zap.String("owner_id", ownerID),
		zap.String("note_id", n.ID.String()),
	)
	return mapNote(*n), nil
}

func (s *service) DeleteNote(ctx context.Context, actor Actor, ownerID, noteID string) error {
	if _, err := uuid.Parse(ownerID); err != nil {
		return ownererrors.ErrInvalidOwnerID
	}
	if _, err := uuid.Parse(noteID); err != nil {
		return ownererrors.ErrInvalidNoteID
	}

	if err := s.repo.DeleteNote(ctx, actor.CompanyID, ownerID, noteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ownererrors.ErrNoteNotFound
		}
		return err
	}
	return nil
}

func parseUUID(v string) uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func mapNote(n OwnerNote) NoteResponse {
	resp := NoteResponse{
		ID:        n.ID.String(),
		OwnerID:   n.OwnerID.String(),
		Content:   n.Content,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.CreatedBy != uuid.Nil {
		resp.CreatedBy = n.CreatedBy.String()
	}
	return resp
}
