package booking

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	bookingerrors "aparthotel/internal/booking/errors"
	"aparthotel/internal/events"
	"aparthotel/internal/messaging/kafka"
	"aparthotel/internal/shared/apperror"
	"aparthotel/internal/shared/contextutil"
	"aparthotel/internal/shared/counter"
	"aparthotel/internal/shared/dateutil"
	"aparthotel/internal/unit"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const aggregateType = "booking"

//go:generate mockgen -source=booking_service.go -destination=mock/booking_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor Actor, req BookingRequest) (BookingResponse, error)
	Update(ctx context.Context, actor Actor, id string, req BookingRequest) (BookingResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	GetByID(ctx context.Context, actor Actor, id string) (BookingResponse, error)
	ListByUnit(ctx context.Context, actor Actor, unitID string) ([]BookingResponse, error)
	ListByPropertyGroup(ctx context.Context, actor Actor, propertyGroupID string) ([]BookingResponse, error)
	List(ctx context.Context, actor Actor, query ListBookingsQuery) ([]BookingResponse, error)
	AddNote(ctx context.Context, actor Actor, id string, req AddNoteRequest) (BookingResponse, error)
	DeleteNote(ctx context.Context, actor Actor, id, noteID string) (BookingResponse, error)
	General(ctx context.Context, query GeneralBookingsQuery) ([]GeneralBookingResponse, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	unitRepo    unit.Repository
	counterRepo counter.Repository
	outboxRepo  kafka.OutboxRepository
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	unitRepo unit.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("booking.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("booking.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		unitRepo:    unitRepo,
		counterRepo: counterRepo,
		outboxRepo:  outboxRepo,
		now:         time.Now,
		logger:      l,
	}
}

type stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func parseStay(req BookingRequest) (stay, error) {
	in, err := dateutil.Parse(req.CheckIn)
	if err != nil {
		return stay{}, bookingerrors.ErrInvalidDate
	}
	out, err := dateutil.Parse(req.CheckOut)
	if err != nil {
		return stay{}, bookingerrors.ErrInvalidDate
	}
	if err := ValidateStay(in, out); err != nil {
		return stay{}, err
	}
	return stay{checkIn: in, checkOut: out}, nil
}

// reserve locks the unit row and runs the capacity and overlap rules against
// it. The lock is held until the surrounding transaction ends, so two
// reservations for the same unit cannot interleave between check and write.
func (s *service) reserve(
	ctx context.Context,
	tx *gorm.DB,
	actor Actor,
	req BookingRequest,
	st stay,
	excludeID string,
) (*unit.Unit, error) {
	u, err := s.unitRepo.WithTx(tx).LockByIDAndCompany(ctx, actor.CompanyID, req.UnitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingerrors.ErrUnitNotFound
		}
		return nil, err
	}
	if actor.PropertyGroupID != "" && u.PropertyGroupID.String() != actor.PropertyGroupID {
		return nil, bookingerrors.ErrUnitNotFound
	}

	if err := CheckCapacity(req.NumGuests, u.Beds); err != nil {
		return nil, err
	}

	taken, err := s.repo.WithTx(tx).HasOverlap(ctx, req.UnitID, st.checkIn, st.checkOut, excludeID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, bookingerrors.ErrUnitAlreadyBooked
	}

	return u, nil
}

func (s *service) Create(ctx context.Context, actor Actor, req BookingRequest) (BookingResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("create booking requested",
		zap.String("unit_id", req.UnitID),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut),
	)

	st, err := parseStay(req)
	if err != nil {
		l.Warn("create booking rejected", zap.Error(err))
		return BookingResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return BookingResponse{}, tx.Error
	}
	defer tx.Rollback()

	u, err := s.reserve(ctx, tx, actor, req, st, "")
	if err != nil {
		l.Warn("create booking rejected", zap.String("unit_id", req.UnitID), zap.Error(err))
		return BookingResponse{}, err
	}

	seq, err := s.counterRepo.WithTx(tx).GetNextValue(ctx, actor.CompanyID, counter.TypeBooking)
	if err != nil {
		l.Error("create booking counter failed", zap.Error(err))
		return BookingResponse{}, err
	}

	now := s.now().UTC()
	b := &Booking{
		ID:              uuid.New(),
		CompanyID:       u.CompanyID,
		PropertyGroupID: u.PropertyGroupID,
		UnitID:          u.ID,
		ReferenceCode:   counter.Reference(counter.TypeBooking, seq),
		CheckIn:         st.checkIn,
		CheckOut:        st.checkOut,
		FullPrice:       FullPrice(st.checkIn, st.checkOut, u.PricePerNight),
		CreatedBy:       parseUUID(actor.UserID),
		CreatedAt:       now,
	}
	applyGuest(b, req)
	if note := strings.TrimSpace(req.Notes); note != "" {
		b.Notes = append(b.Notes, newNote(note, actor.UserID, now))
	}

	if err := s.repo.WithTx(tx).Create(ctx, b); err != nil {
		l.Error("create booking persist failed", zap.Error(err))
		return BookingResponse{}, err
	}

	if err := s.writeEvent(ctx, tx, events.BookingCreated, actor, b); err != nil {
		return BookingResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return BookingResponse{}, err
	}

	l.Info("create booking success",
		zap.String("booking_id", b.ID.String()),
		zap.String("reference_code", b.ReferenceCode),
		zap.Float64("full_price", b.FullPrice),
	)
	return mapToResponse(*b), nil
}

func (s *service) Update(ctx context.Context, actor Actor, id string, req BookingRequest) (BookingResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidBookingID
	}

	st, err := parseStay(req)
	if err != nil {
		return BookingResponse{}, err
	}
	if st.checkIn.Before(dateutil.StartOfDay(s.now())) {
		return BookingResponse{}, bookingerrors.ErrCheckInInPast
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return BookingResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := s.findScoped(ctx, qtx, actor, id)
	if err != nil {
		return BookingResponse{}, err
	}

	u, err := s.reserve(ctx, tx, actor, req, st, id)
	if err != nil {
		l.Warn("update booking rejected", zap.String("booking_id", id), zap.Error(err))
		return BookingResponse{}, err
	}

	b.UnitID = u.ID
	b.PropertyGroupID = u.PropertyGroupID
	b.CheckIn = st.checkIn
	b.CheckOut = st.checkOut
	b.FullPrice = FullPrice(st.checkIn, st.checkOut, u.PricePerNight)
	applyGuest(b, req)

	if err := qtx.Update(ctx, b); err != nil {
		l.Error("update booking persist failed", zap.String("booking_id", id), zap.Error(err))
		return BookingResponse{}, err
	}

	if err := s.writeEvent(ctx, tx, events.BookingUpdated, actor, b); err != nil {
		return BookingResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return BookingResponse{}, err
	}

	l.Info("update booking success", zap.String("booking_id", id))
	return mapToResponse(*b), nil
}

func (s *service) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return bookingerrors.ErrInvalidBookingID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := s.findScoped(ctx, qtx, actor, id)
	if err != nil {
		return err
	}

	if err := qtx.Delete(ctx, actor.CompanyID, id); err != nil {
		return mapNotFound(err)
	}

	if err := s.writeEvent(ctx, tx, events.BookingDeleted, actor, b); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("delete booking success", zap.String("booking_id", id))
	return nil
}

func (s *service) GetByID(ctx context.Context, actor Actor, id string) (BookingResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidBookingID
	}

	b, err := s.findScoped(ctx, s.repo, actor, id)
	if err != nil {
		return BookingResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) ListByUnit(ctx context.Context, actor Actor, unitID string) ([]BookingResponse, error) {
	if _, err := uuid.Parse(unitID); err != nil {
		return nil, bookingerrors.ErrInvalidUnitID
	}

	u, err := s.unitRepo.FindByIDAndCompany(ctx, actor.CompanyID, unitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bookingerrors.ErrUnitNotFound
		}
		return nil, err
	}
	if actor.PropertyGroupID != "" && u.PropertyGroupID.String() != actor.PropertyGroupID {
		return nil, bookingerrors.ErrUnitNotFound
	}

	bookings, err := s.repo.FindByCompany(ctx, actor.CompanyID, Filter{UnitID: unitID})
	if err != nil {
		return nil, err
	}
	return mapToListResponse(bookings), nil
}

func (s *service) ListByPropertyGroup(ctx context.Context, actor Actor, propertyGroupID string) ([]BookingResponse, error) {
	if _, err := uuid.Parse(propertyGroupID); err != nil {
		return nil, bookingerrors.ErrInvalidPropertyGroupID
	}
	if actor.PropertyGroupID != "" && propertyGroupID != actor.PropertyGroupID {
		return nil, bookingerrors.ErrPropertyForbidden
	}

	bookings, err := s.repo.FindByCompany(ctx, actor.CompanyID, Filter{PropertyGroupID: propertyGroupID})
	if err != nil {
		return nil, err
	}
	return mapToListResponse(bookings), nil
}

func (s *service) List(ctx context.Context, actor Actor, query ListBookingsQuery) ([]BookingResponse, error) {
	filter := Filter{PropertyGroupID: query.PropertyGroupID}
	if actor.PropertyGroupID != "" {
		filter.PropertyGroupID = actor.PropertyGroupID
	}

	if query.From != "" {
		from, err := dateutil.Parse(query.From)
		if err != nil {
			return nil, bookingerrors.ErrInvalidDate
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := dateutil.Parse(query.To)
		if err != nil {
			return nil, bookingerrors.ErrInvalidDate
		}
		filter.To = &to
	}

	bookings, err := s.repo.FindByCompany(ctx, actor.CompanyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(bookings), nil
}

func (s *service) AddNote(ctx context.Context, actor Actor, id string, req AddNoteRequest) (BookingResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidBookingID
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return BookingResponse{}, bookingerrors.ErrEmptyNote
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return BookingResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := s.lockScoped(ctx, qtx, actor, id)
	if err != nil {
		return BookingResponse{}, err
	}

	b.Notes = append(b.Notes, newNote(content, actor.UserID, s.now().UTC()))
	if err := qtx.UpdateNotes(ctx, id, b.Notes); err != nil {
		return BookingResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return BookingResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) DeleteNote(ctx context.Context, actor Actor, id, noteID string) (BookingResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return BookingResponse{}, bookingerrors.ErrInvalidBookingID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return BookingResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	b, err := s.lockScoped(ctx, qtx, actor, id)
	if err != nil {
		return BookingResponse{}, err
	}

	kept := make([]BookingNote, 0, len(b.Notes))
	for _, n := range b.Notes {
		if n.ID != noteID {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(b.Notes) {
		return BookingResponse{}, bookingerrors.ErrNoteNotFound
	}

	if err := qtx.UpdateNotes(ctx, id, kept); err != nil {
		return BookingResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return BookingResponse{}, err
	}

	b.Notes = kept
	return mapToResponse(*b), nil
}

// General backs the unauthenticated listing. The company must be named
// explicitly; an optional day/month/year narrows by check-in.
func (s *service) General(ctx context.Context, query GeneralBookingsQuery) ([]GeneralBookingResponse, error) {
	if _, err := uuid.Parse(query.CompanyID); err != nil {
		return nil, bookingerrors.ErrCompanyRequired
	}

	filter := Filter{PropertyGroupID: query.PropertyGroupID}
	window, ok, err := dateutil.PeriodWindow(query.Day, query.Month, query.Year)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeInvalidInput, err.Error(), http.StatusBadRequest)
	}
	if ok {
		filter.From = &window.From
		filter.To = &window.To
	}

	bookings, err := s.repo.FindByCompany(ctx, query.CompanyID, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]GeneralBookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = GeneralBookingResponse{
			ID:              b.ID.String(),
			PropertyGroupID: b.PropertyGroupID.String(),
			UnitID:          b.UnitID.String(),
			NumGuests:       b.NumGuests,
			CheckIn:         b.CheckIn.Format(dateutil.DateLayout),
			CheckOut:        b.CheckOut.Format(dateutil.DateLayout),
			Nights:          Nights(b.CheckIn, b.CheckOut),
			FullPrice:       b.FullPrice,
		}
	}
	return resp, nil
}

func (s *service) findScoped(ctx context.Context, repo Repository, actor Actor, id string) (*Booking, error) {
	b, err := repo.FindByIDAndCompany(ctx, actor.CompanyID, id)
	return scoped(actor, b, err)
}

func (s *service) lockScoped(ctx context.Context, repo Repository, actor Actor, id string) (*Booking, error) {
	b, err := repo.LockByIDAndCompany(ctx, actor.CompanyID, id)
	return scoped(actor, b, err)
}

func scoped(actor Actor, b *Booking, err error) (*Booking, error) {
	if err != nil {
		return nil, mapNotFound(err)
	}
	if actor.PropertyGroupID != "" && b.PropertyGroupID.String() != actor.PropertyGroupID {
		return nil, bookingerrors.ErrBookingNotFound
	}
	return b, nil
}

func (s *service) writeEvent(ctx context.Context, tx *gorm.DB, eventType string, actor Actor, b *Booking) error {
	event, err := kafka.NewOutboxEvent(ctx, aggregateType, b.ID.String(), eventType, events.BookingLifecycleTopic,
		events.BookingEvent{
			EventType:       eventType,
			BookingID:       b.ID.String(),
			CompanyID:       b.CompanyID.String(),
			PropertyGroupID: b.PropertyGroupID.String(),
			UnitID:          b.UnitID.String(),
			CheckIn:         b.CheckIn.Format(dateutil.DateLayout),
			CheckOut:        b.CheckOut.Format(dateutil.DateLayout),
			FullPrice:       b.FullPrice,
			ActorID:         actor.UserID,
			OccurredAt:      s.now().UTC(),
		})
	if err != nil {
		return err
	}

	if err := s.outboxRepo.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("write booking outbox event failed",
			zap.String("booking_id", b.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func applyGuest(b *Booking, req BookingRequest) {
	b.GuestName = strings.TrimSpace(req.GuestName)
	b.GuestEmail = strings.ToLower(strings.TrimSpace(req.GuestEmail))
	b.GuestID = strings.TrimSpace(req.GuestID)
	b.GuestPhone = strings.TrimSpace(req.GuestPhone)
	b.NumGuests = req.NumGuests
}

func newNote(content, userID string, at time.Time) BookingNote {
	return BookingNote{
		ID:        uuid.NewString(),
		Content:   content,
		CreatedBy: userID,
		CreatedAt: at,
	}
}

func parseUUID(v string) uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bookingerrors.ErrBookingNotFound
	}
	return err
}

func mapToResponse(b Booking) BookingResponse {
	notes := make([]NoteResponse, len(b.Notes))
	for i, n := range b.Notes {
		notes[i] = NoteResponse{
			ID:        n.ID,
			Content:   n.Content,
			CreatedBy: n.CreatedBy,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
	}

	resp := BookingResponse{
		ID:              b.ID.String(),
		ReferenceCode:   b.ReferenceCode,
		CompanyID:       b.CompanyID.String(),
		PropertyGroupID: b.PropertyGroupID.String(),
		UnitID:          b.UnitID.String(),
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestID:         b.GuestID,
		GuestPhone:      b.GuestPhone,
		NumGuests:       b.NumGuests,
		CheckIn:         b.CheckIn.Format(dateutil.DateLayout),
		CheckOut:        b.CheckOut.Format(dateutil.DateLayout),
		Nights:          Nights(b.CheckIn, b.CheckOut),
		FullPrice:       b.FullPrice,
		Notes:           notes,
	}
	if b.CreatedBy != uuid.Nil {
		resp.CreatedBy = b.CreatedBy.String()
	}
	if !b.CreatedAt.IsZero() {
		resp.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(bookings []Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		res[i] = mapToResponse(b)
	}
	return res
}
