package owner_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"aparthotel/internal/booking"
	bookingMock "aparthotel/internal/booking/mock"
	"aparthotel/internal/owner"
	ownererrors "aparthotel/internal/owner/errors"
	ownerMock "aparthotel/internal/owner/mock"
	"aparthotel/internal/propertygroup"
	pgMock "aparthotel/internal/propertygroup/mock"
	"aparthotel/internal/report"
	reportMock "aparthotel/internal/report/mock"
	"aparthotel/internal/shared/apperror"
	"aparthotel/internal/unit"
	unitMock "aparthotel/internal/unit/mock"
	"aparthotel/internal/user"
	userMock "aparthotel/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service     owner.Service
	repo        *ownerMock.MockRepository
	userRepo    *userMock.MockRepository
	pgRepo      *pgMock.MockRepository
	unitService *unitMock.MockService
	bookingRepo *bookingMock.MockRepository
	reportRepo  *reportMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		repo:        ownerMock.NewMockRepository(ctrl),
		userRepo:    userMock.NewMockRepository(ctrl),
		pgRepo:      pgMock.NewMockRepository(ctrl),
		unitService: unitMock.NewMockService(ctrl),
		bookingRepo: bookingMock.NewMockRepository(ctrl),
		reportRepo:  reportMock.NewMockRepository(ctrl),
	}
	deps.service = owner.NewService(deps.repo, deps.userRepo, deps.pgRepo, deps.unitService, deps.bookingRepo, deps.reportRepo)
	return deps
}

type ownerFixture struct {
	companyID uuid.UUID
	pgID      uuid.UUID
	owner     *user.User
}

func newOwnerFixture() ownerFixture {
	pgID := uuid.New()
	return ownerFixture{
		companyID: uuid.New(),
		pgID:      pgID,
		owner:     &user.User{ID: uuid.New(), Role: "owner", PropertyGroupID: &pgID},
	}
}

func (f ownerFixture) self() owner.Actor {
	return owner.Actor{UserID: f.owner.ID.String(), CompanyID: f.companyID.String(), Role: "owner"}
}

func TestOwnerService_Access(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cannot read another owner", func(t *testing.T) {
		deps := setupServiceTest(t)
		f := newOwnerFixture()

		_, err := deps.service.Apartments(ctx, f.self(), uuid.NewString())

		assert.ErrorIs(t, err, ownererrors.ErrForbidden)
		assert.Equal(t, http.StatusForbidden, apperror.ToHTTP(err).Status)
	})

	t.Run("manager reads any owner of the company", func(t *testing.T) {
		deps := setupServiceTest(t)
		f := newOwnerFixture()
		manager := owner.Actor{UserID: uuid.NewString(), CompanyID: f.companyID.String(), Role: "manager"}

		deps.userRepo.EXPECT().FindByID(ctx, manager.CompanyID, f.owner.ID.String()).Return(f.owner, nil)
		deps.unitService.EXPECT().GetAll(ctx, manager.CompanyID, f.pgID.String()).
			Return([]unit.UnitResponse{{ID: "u-1"}}, nil)

		res, err := deps.service.Apartments(ctx, manager, f.owner.ID.String())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("id of a non-owner user", func(t *testing.T) {
		deps := setupServiceTest(t)
		f := newOwnerFixture()
		manager := owner.Actor{UserID: uuid.NewString(), CompanyID: f.companyID.String(), Role: "manager"}
		f.owner.Role = "housekeeping"

		deps.userRepo.EXPECT().FindByID(ctx, manager.CompanyID, f.owner.ID.String()).Return(f.owner, nil)

		_, err := deps.service.Apartments(ctx, manager, f.owner.ID.String())

		assert.ErrorIs(t, err, ownererrors.ErrOwnerNotFound)
	})

	t.Run("unknown owner", func(t *testing.T) {
		deps := setupServiceTest(t)
		f := newOwnerFixture()

		deps.userRepo.EXPECT().FindByID(ctx, f.companyID.String(), f.owner.ID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Reports(ctx, f.self(), f.owner.ID.String())

		assert.ErrorIs(t, err, ownererrors.ErrOwnerNotFound)
	})
}

func TestOwnerService_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := newOwnerFixture()
	deps := setupServiceTest(t)

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	pg := &propertygroup.PropertyGroup{ID: f.pgID, CompanyID: f.companyID, Name: "Beach", CompanyShare: 30, OwnerShare: 70}
	latest := &report.FinancialReport{ID: uuid.New(), PropertyGroupID: f.pgID, Month: 5, Year: 2025, NetIncome: 800}

	deps.userRepo.EXPECT().FindByID(ctx, f.companyID.String(), f.owner.ID.String()).Return(f.owner, nil)
	deps.pgRepo.EXPECT().FindByIDAndCompany(ctx, f.companyID.String(), f.pgID.String()).Return(pg, nil)
	deps.unitService.EXPECT().GetAll(ctx, f.companyID.String(), f.pgID.String()).
		Return([]unit.UnitResponse{{ID: "u-1"}, {ID: "u-2"}}, nil)
	deps.bookingRepo.EXPECT().FindByCompany(ctx, f.companyID.String(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, filter booking.Filter) ([]booking.Booking, error) {
			assert.Equal(t, f.pgID.String(), filter.PropertyGroupID)
			assert.Nil(t, filter.From)
			assert.Equal(t, monthStart.AddDate(0, 1, 0), *filter.To)
			return []booking.Booking{
				{CheckIn: monthStart, CheckOut: monthStart.AddDate(0, 0, 2), FullPrice: 200},
				{CheckIn: monthStart.AddDate(0, -1, 0), CheckOut: monthStart.AddDate(0, -1, 3), FullPrice: 300},
			}, nil
		})
	deps.reportRepo.EXPECT().FindLatestByPropertyGroup(ctx, f.companyID.String(), f.pgID.String()).Return(latest, nil)

	dash, err := deps.service.Dashboard(ctx, f.self(), f.owner.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, "Beach", dash.PropertyGroup.Name)
	assert.Equal(t, 2, dash.UnitCount)
	assert.Equal(t, 1, dash.BookingsThisMonth)
	assert.Equal(t, 200.0, dash.IncomeThisMonth)
	assert.Greater(t, dash.OccupancyRateThisMonth, 0.0)
	assert.Equal(t, 800.0, dash.LatestReport.NetIncome)
	assert.Equal(t, "Beach", dash.LatestReport.PropertyGroupName)
}

func TestOwnerService_DashboardWithoutReports(t *testing.T) {
	ctx := context.Background()
	f := newOwnerFixture()
	deps := setupServiceTest(t)

	deps.userRepo.EXPECT().FindByID(ctx, f.companyID.String(), f.owner.ID.String()).Return(f.owner, nil)
	deps.pgRepo.EXPECT().FindByIDAndCompany(ctx, f.companyID.String(), f.pgID.String()).
		Return(&propertygroup.PropertyGroup{ID: f.pgID, CompanyID: f.companyID}, nil)
	deps.unitService.EXPECT().GetAll(ctx, f.companyID.String(), f.pgID.String()).Return(nil, nil)
	deps.bookingRepo.EXPECT().FindByCompany(ctx, f.companyID.String(), gomock.Any()).Return(nil, nil)
	deps.reportRepo.EXPECT().FindLatestByPropertyGroup(ctx, f.companyID.String(), f.pgID.String()).Return(nil, gorm.ErrRecordNotFound)

	dash, err := deps.service.Dashboard(ctx, f.self(), f.owner.ID.String())

	assert.NoError(t, err)
	assert.Nil(t, dash.LatestReport)
	assert.Zero(t, dash.OccupancyRateThisMonth)
}

func TestOwnerService_Bookings(t *testing.T) {
	ctx := context.Background()
	f := newOwnerFixture()
	deps := setupServiceTest(t)

	deps.userRepo.EXPECT().FindByID(ctx, f.companyID.String(), f.owner.ID.String()).Return(f.owner, nil)
	deps.bookingRepo.EXPECT().FindByCompany(ctx, f.companyID.String(), booking.Filter{PropertyGroupID: f.pgID.String()}).
		Return([]booking.Booking{{ID: uuid.New(), GuestName: "Ana", CheckIn: day("2025-06-01"), CheckOut: day("2025-06-04"), FullPrice: 300}}, nil)

	res, err := deps.service.Bookings(ctx, f.self(), f.owner.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, 3, res[0].Nights)
	assert.Equal(t, "2025-06-01", res[0].CheckIn)
}

func TestOwnerService_Notes(t *testing.T) {
	ctx := context.Background()
	f := newOwnerFixture()
	manager := owner.Actor{UserID: uuid.NewString(), CompanyID: f.companyID.String(), Role: "manager"}

	t.Run("add", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.userRepo.EXPECT().FindByID(ctx, manager.CompanyID, f.owner.ID.String()).Return(f.owner, nil)
		deps.repo.EXPECT().CreateNote(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, n *owner.OwnerNote) error {
				assert.Equal(t, f.owner.ID, n.OwnerID)
				assert.Equal(t, "Call about renovation", n.Content)
				return nil
			})

		res, err := deps.service.AddNote(ctx, manager, f.owner.ID.String(), owner.AddNoteRequest{Content: "Call about renovation"})

		assert.NoError(t, err)
		assert.Equal(t, manager.UserID, res.CreatedBy)
	})

	t.Run("delete missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		noteID := uuid.NewString()
		deps.repo.EXPECT().DeleteNote(ctx, manager.CompanyID, f.owner.ID.String(), noteID).Return(gorm.ErrRecordNotFound)

		err := deps.service.DeleteNote(ctx, manager, f.owner.ID.String(), noteID)

		assert.ErrorIs(t, err, ownererrors.ErrNoteNotFound)
	})

	t.Run("list for owner without property", func(t *testing.T) {
		deps := setupServiceTest(t)
		f.owner.PropertyGroupID = nil
		deps.userRepo.EXPECT().FindByID(ctx, manager.CompanyID, f.owner.ID.String()).Return(f.owner, nil)
		deps.repo.EXPECT().FindNotes(ctx, manager.CompanyID, f.owner.ID.String()).
			Return([]owner.OwnerNote{{ID: uuid.New(), OwnerID: f.owner.ID, Content: "x"}}, nil)

		res, err := deps.service.ListNotes(ctx, manager, f.owner.ID.String())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})
}
