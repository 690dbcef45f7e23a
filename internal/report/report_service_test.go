package report_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"aparthotel/internal/booking"
	bookingMock "aparthotel/internal/booking/mock"
	"aparthotel/internal/propertygroup"
	pgMock "aparthotel/internal/propertygroup/mock"
	"aparthotel/internal/report"
	reporterrors "aparthotel/internal/report/errors"
	reportMock "aparthotel/internal/report/mock"
	"aparthotel/internal/shared/apperror"
	"aparthotel/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock     sqlmock.Sqlmock
	service     report.Service
	repo        *reportMock.MockRepository
	bookingRepo *bookingMock.MockRepository
	pgRepo      *pgMock.MockRepository
	exporter    *reportMock.MockExporter
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewMockDB(t)

	deps := &serviceDeps{
		sqlMock:     sqlMock,
		repo:        reportMock.NewMockRepository(ctrl),
		bookingRepo: bookingMock.NewMockRepository(ctrl),
		pgRepo:      pgMock.NewMockRepository(ctrl),
		exporter:    reportMock.NewMockExporter(ctrl),
	}
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.service = report.NewService(db, deps.repo, deps.bookingRepo, deps.pgRepo, deps.exporter)
	return deps
}

func sampleGroup(companyID uuid.UUID) *propertygroup.PropertyGroup {
	return &propertygroup.PropertyGroup{ID: uuid.New(), CompanyID: companyID, Name: "Beach", CompanyShare: 30, OwnerShare: 70}
}

func TestReportService_CreateFinancial(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actorID := uuid.NewString()

	t.Run("snapshot is computed and stored", func(t *testing.T) {
		deps := setupServiceTest(t)
		pg := sampleGroup(companyID)
		req := report.CreateFinancialReportRequest{PropertyGroupID: pg.ID.String(), Month: 6, Year: 2025, TotalExpenses: 200}
		testutil.ExpectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().PeriodExists(ctx, pg.ID.String(), 6, 2025).Return(false, nil)
		deps.pgRepo.EXPECT().FindByIDAndCompany(ctx, companyID.String(), pg.ID.String()).Return(pg, nil)
		deps.bookingRepo.EXPECT().FindByCompany(ctx, companyID.String(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, f booking.Filter) ([]booking.Booking, error) {
				assert.Equal(t, pg.ID.String(), f.PropertyGroupID)
				assert.Equal(t, "2025-06-01", f.From.Format("2006-01-02"))
				assert.Equal(t, "2025-07-01", f.To.Format("2006-01-02"))
				return []booking.Booking{{FullPrice: 400}, {FullPrice: 600}}, nil
			})
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, fr *report.FinancialReport) error {
				assert.Equal(t, actorID, fr.CreatedBy.String())
				assert.False(t, fr.DateGenerated.IsZero())
				return nil
			})

		res, err := deps.service.CreateFinancial(ctx, companyID.String(), actorID, req)

		assert.NoError(t, err)
		assert.Equal(t, 1000.0, res.RentalIncome)
		assert.Equal(t, 800.0, res.NetIncome)
		assert.Equal(t, 240.0, res.CompanyShare)
		assert.Equal(t, 560.0, res.OwnerShare)
		assert.Equal(t, "Beach", res.PropertyGroupName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("second report for the period", func(t *testing.T) {
		deps := setupServiceTest(t)
		pgID := uuid.NewString()
		testutil.ExpectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().PeriodExists(ctx, pgID, 6, 2025).Return(true, nil)

		_, err := deps.service.CreateFinancial(ctx, companyID.String(), actorID,
			report.CreateFinancialReportRequest{PropertyGroupID: pgID, Month: 6, Year: 2025})

		assert.ErrorIs(t, err, reporterrors.ErrReportExists)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "Report already exists for this period", httpErr.Message)
	})

	t.Run("unique index race maps to the same error", func(t *testing.T) {
		deps := setupServiceTest(t)
		pg := sampleGroup(companyID)
		testutil.ExpectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().PeriodExists(ctx, pg.ID.String(), 1, 2025).Return(false, nil)
		deps.pgRepo.EXPECT().FindByIDAndCompany(ctx, companyID.String(), pg.ID.String()).Return(pg, nil)
		deps.bookingRepo.EXPECT().FindByCompany(ctx, companyID.String(), gomock.Any()).Return(nil, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: report.UniqueFinancialPeriodIndex})

		_, err := deps.service.CreateFinancial(ctx, companyID.String(), actorID,
			report.CreateFinancialReportRequest{PropertyGroupID: pg.ID.String(), Month: 1, Year: 2025})

		assert.ErrorIs(t, err, reporterrors.ErrReportExists)
	})

	t.Run("unknown property group", func(t *testing.T) {
		deps := setupServiceTest(t)
		pgID := uuid.NewString()
		testutil.ExpectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().PeriodExists(ctx, pgID, 1, 2025).Return(false, nil)
		deps.pgRepo.EXPECT().FindByIDAndCompany(ctx, companyID.String(), pgID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CreateFinancial(ctx, companyID.String(), actorID,
			report.CreateFinancialReportRequest{PropertyGroupID: pgID, Month: 1, Year: 2025})

		assert.ErrorIs(t, err, reporterrors.ErrPropertyGroupNotFound)
	})
}

func TestReportService_PreviewFinancial(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	deps := setupServiceTest(t)
	pg := sampleGroup(companyID)

	deps.pgRepo.EXPECT().FindByIDAndCompany(ctx, companyID.String(), pg.ID.String()).Return(pg, nil)
	deps.bookingRepo.EXPECT().FindByCompany(ctx, companyID.String(), gomock.Any()).
		Return([]booking.Booking{{FullPrice: 500}}, nil)

	res, err := deps.service.PreviewFinancial(ctx, companyID.String(),
		report.PreviewFinancialReportQuery{PropertyGroupID: pg.ID.String(), Month: 3, Year: 2025, TotalExpenses: 100})

	assert.NoError(t, err)
	assert.Empty(t, res.ID)
	assert.Equal(t, 400.0, res.NetIncome)
	assert.Equal(t, 280.0, res.OwnerShare)
}

func TestReportService_General(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("month requires year", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.General(ctx, companyID, report.GeneralReportQuery{Month: 6})
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	})

	t.Run("year window with names", func(t *testing.T) {
		deps := setupServiceTest(t)
		pgID := uuid.New()

		deps.bookingRepo.EXPECT().FindByCompany(ctx, companyID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, f booking.Filter) ([]booking.Booking, error) {
				assert.Equal(t, "2025-01-01", f.From.Format("2006-01-02"))
				assert.Equal(t, "2026-01-01", f.To.Format("2006-01-02"))
				return []booking.Booking{{PropertyGroupID: pgID, CheckIn: day("2025-03-01"), CheckOut: day("2025-03-03"), NumGuests: 2, FullPrice: 200}}, nil
			})
		deps.pgRepo.EXPECT().FindByIDs(ctx, companyID, []string{pgID.String()}).
			Return([]propertygroup.PropertyGroup{{ID: pgID, Name: "Beach"}}, nil)

		rep, err := deps.service.General(ctx, companyID, report.GeneralReportQuery{Year: 2025})

		assert.NoError(t, err)
		assert.Equal(t, 200.0, rep.TotalIncome)
		assert.Equal(t, 4, rep.GuestNights)
		assert.Equal(t, "Beach", rep.ByProperty[0].Name)
		assert.Equal(t, "2025-01-01", rep.From)
	})
}

func TestReportService_GetFinancial(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetFinancial(ctx, companyID, id)

		assert.ErrorIs(t, err, reporterrors.ErrReportNotFound)
	})

	t.Run("export uses requested format", func(t *testing.T) {
		deps := setupServiceTest(t)
		fr := &report.FinancialReport{ID: uuid.MustParse(id), PropertyGroupID: uuid.New(), Month: 6, Year: 2025}
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(fr, nil)
		deps.pgRepo.EXPECT().FindByIDAndCompany(ctx, companyID, fr.PropertyGroupID.String()).Return(nil, errors.New("gone"))
		deps.exporter.EXPECT().Financial(gomock.Any(), report.FormatExcel).Return(report.Export{Filename: "f.xlsx"}, nil)

		out, err := deps.service.ExportFinancial(ctx, companyID, id, "XLSX")

		assert.NoError(t, err)
		assert.Equal(t, "f.xlsx", out.Filename)
	})
}
