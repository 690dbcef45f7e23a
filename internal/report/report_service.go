package report

import (
	"context"
	"errors"
	"strings"
	"time"

	"aparthotel/internal/booking"
	"aparthotel/internal/propertygroup"
	reporterrors "aparthotel/internal/report/errors"
	"aparthotel/internal/shared/apperror"
	"aparthotel/internal/shared/contextutil"
	"aparthotel/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	General(ctx context.Context, companyID string, query GeneralReportQuery) (GeneralReport, error)
	ExportGeneral(ctx context.Context, companyID string, query GeneralReportQuery) (Export, error)
	CreateFinancial(ctx context.Context, companyID, actorID string, req CreateFinancialReportRequest) (FinancialReportResponse, error)
	PreviewFinancial(ctx context.Context, companyID string, query PreviewFinancialReportQuery) (FinancialReportResponse, error)
	ListFinancial(ctx context.Context, companyID string, query ListFinancialReportsQuery) ([]FinancialReportResponse, error)
	GetFinancial(ctx context.Context, companyID, id string) (FinancialReportResponse, error)
	ExportFinancial(ctx context.Context, companyID, id, format string) (Export, error)
}

type service struct {
	db          *gorm.DB
	repo        Repository
	bookingRepo booking.Repository
	pgRepo      propertygroup.Repository
	exporter    Exporter
	now         func() time.Time
	logger      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	bookingRepo booking.Repository,
	pgRepo propertygroup.Repository,
	exporter Exporter,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		bookingRepo: bookingRepo,
		pgRepo:      pgRepo,
		exporter:    exporter,
		now:         time.Now,
		logger:      l,
	}
}

// General is recomputed on every call; nothing is cached or stored.
func (s *service) General(ctx context.Context, companyID string, query GeneralReportQuery) (GeneralReport, error) {
	window, ok, err := dateutil.PeriodWindow(query.Day, query.Month, query.Year)
	if err != nil {
		return GeneralReport{}, apperror.Wrap(err, apperror.CodeInvalidInput, err.Error(), reporterrors.ErrInvalidPeriod.HTTPStatus)
	}

	filter := booking.Filter{PropertyGroupID: query.PropertyGroupID}
	if ok {
		filter.From = &window.From
		filter.To = &window.To
	}

	bookings, err := s.bookingRepo.FindByCompany(ctx, companyID, filter)
	if err != nil {
		return GeneralReport{}, err
	}

	names, err := s.groupNames(ctx, companyID, bookings)
	if err != nil {
		return GeneralReport{}, err
	}

	rep := BuildGeneralReport(bookings, names)
	if ok {
		rep.From = window.From.Format(dateutil.DateLayout)
		rep.To = window.To.Format(dateutil.DateLayout)
	}
	return rep, nil
}

func (s *service) ExportGeneral(ctx context.Context, companyID string, query GeneralReportQuery) (Export, error) {
	rep, err := s.General(ctx, companyID, query)
	if err != nil {
		return Export{}, err
	}
	return s.exporter.General(rep, normalizeFormat(query.Format))
}

func (s *service) CreateFinancial(
	ctx context.Context,
	companyID, actorID string,
	req CreateFinancialReportRequest,
) (FinancialReportResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("create financial report requested",
		zap.String("property_group_id", req.PropertyGroupID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return FinancialReportResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.PeriodExists(ctx, req.PropertyGroupID, req.Month, req.Year)
	if err != nil {
		return FinancialReportResponse{}, err
	}
	if exists {
		l.Warn("create financial report rejected: period exists")
		return FinancialReportResponse{}, reporterrors.ErrReportExists
	}

	pg, fin, err := s.compute(ctx, companyID, req.PropertyGroupID, req.Month, req.Year, req.TotalExpenses)
	if err != nil {
		return FinancialReportResponse{}, err
	}

	fr := &FinancialReport{
		ID:              uuid.New(),
		CompanyID:       pg.CompanyID,
		PropertyGroupID: pg.ID,
		Month:           req.Month,
		Year:            req.Year,
		RentalIncome:    fin.RentalIncome,
		TotalExpenses:   fin.TotalExpenses,
		NetIncome:       fin.NetIncome,
		CompanyShare:    fin.CompanyShare,
		OwnerShare:      fin.OwnerShare,
		BookingCount:    fin.BookingCount,
		DateGenerated:   s.now().UTC(),
	}
	if id, err := uuid.Parse(actorID); err == nil {
		fr.CreatedBy = id
	}

	if err := qtx.Create(ctx, fr); err != nil {
		if apperror.IsUniqueViolation(err, UniqueFinancialPeriodIndex) {
			return FinancialReportResponse{}, reporterrors.ErrReportExists
		}
		l.Error("create financial report persist failed", zap.Error(err))
		return FinancialReportResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return FinancialReportResponse{}, err
	}

	l.Info("create financial report success", zap.String("report_id", fr.ID.String()))
	resp := mapToResponse(*fr)
	resp.PropertyGroupName = pg.Name
	return resp, nil
}

func (s *service) PreviewFinancial(
	ctx context.Context,
	companyID string,
	query PreviewFinancialReportQuery,
) (FinancialReportResponse, error) {
	pg, fin, err := s.compute(ctx, companyID, query.PropertyGroupID, query.Month, query.Year, query.TotalExpenses)
	if err != nil {
		return FinancialReportResponse{}, err
	}

	return FinancialReportResponse{
		CompanyID:         pg.CompanyID.String(),
		PropertyGroupID:   pg.ID.String(),
		PropertyGroupName: pg.Name,
		Month:             query.Month,
		Year:              query.Year,
		RentalIncome:      fin.RentalIncome,
		TotalExpenses:     fin.TotalExpenses,
		NetIncome:         fin.NetIncome,
		CompanyShare:      fin.CompanyShare,
		OwnerShare:        fin.OwnerShare,
		BookingCount:      fin.BookingCount,
		DateGenerated:     s.now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *service) ListFinancial(
	ctx context.Context,
	companyID string,
	query ListFinancialReportsQuery,
) ([]FinancialReportResponse, error) {
	reports, err := s.repo.FindAllByCompany(ctx, companyID, query)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(reports))
	for _, r := range reports {
		ids = append(ids, r.PropertyGroupID.String())
	}
	groups, err := s.pgRepo.FindByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(groups))
	for _, g := range groups {
		names[g.ID.String()] = g.Name
	}

	resp := make([]FinancialReportResponse, len(reports))
	for i, r := range reports {
		resp[i] = mapToResponse(r)
		resp[i].PropertyGroupName = names[r.PropertyGroupID.String()]
	}
	return resp, nil
}

func (s *service) GetFinancial(ctx context.Context, companyID, id string) (FinancialReportResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return FinancialReportResponse{}, reporterrors.ErrInvalidReportID
	}

	fr, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FinancialReportResponse{}, reporterrors.ErrReportNotFound
		}
		return FinancialReportResponse{}, err
	}

	resp := mapToResponse(*fr)
	if pg, err := s.pgRepo.FindByIDAndCompany(ctx, companyID, fr.PropertyGroupID.String()); err == nil {
		resp.PropertyGroupName = pg.Name
	}
	return resp, nil
}

func (s *service) ExportFinancial(ctx context.Context, companyID, id, format string) (Export, error) {
	rep, err := s.GetFinancial(ctx, companyID, id)
	if err != nil {
		return Export{}, err
	}
	return s.exporter.Financial(rep, normalizeFormat(format))
}

// compute selects the property's bookings checking in during month/year and
// splits their income.
func (s *service) compute(
	ctx context.Context,
	companyID, propertyGroupID string,
	month, year int,
	totalExpenses float64,
) (*propertygroup.PropertyGroup, Financials, error) {
	pg, err := s.pgRepo.FindByIDAndCompany(ctx, companyID, propertyGroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, Financials{}, reporterrors.ErrPropertyGroupNotFound
		}
		return nil, Financials{}, err
	}

	window, _, err := dateutil.PeriodWindow(0, month, year)
	if err != nil {
		return nil, Financials{}, reporterrors.ErrInvalidPeriod
	}

	bookings, err := s.bookingRepo.FindByCompany(ctx, companyID, booking.Filter{
		PropertyGroupID: propertyGroupID,
		From:            &window.From,
		To:              &window.To,
	})
	if err != nil {
		return nil, Financials{}, err
	}

	return pg, ComputeFinancials(bookings, totalExpenses, pg.CompanyShare, pg.OwnerShare), nil
}

func (s *service) groupNames(ctx context.Context, companyID string, bookings []booking.Booking) (map[string]string, error) {
	seen := map[string]struct{}{}
	ids := make([]string, 0)
	for _, b := range bookings {
		id := b.PropertyGroupID.String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	groups, err := s.pgRepo.FindByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(groups))
	for _, g := range groups {
		names[g.ID.String()] = g.Name
	}
	return names, nil
}

func normalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatPDF:
		return FormatPDF
	case "excel", "xls", FormatExcel:
		return FormatExcel
	default:
		return format
	}
}

func mapToResponse(fr FinancialReport) FinancialReportResponse {
	resp := FinancialReportResponse{
		ID:              fr.ID.String(),
		CompanyID:       fr.CompanyID.String(),
		PropertyGroupID: fr.PropertyGroupID.String(),
		Month:           fr.Month,
		Year:            fr.Year,
		RentalIncome:    fr.RentalIncome,
		TotalExpenses:   fr.TotalExpenses,
		NetIncome:       fr.NetIncome,
		CompanyShare:    fr.CompanyShare,
		OwnerShare:      fr.OwnerShare,
		BookingCount:    fr.BookingCount,
		DateGenerated:   fr.DateGenerated.Format(time.RFC3339),
	}
	if fr.CreatedBy != uuid.Nil {
		resp.CreatedBy = fr.CreatedBy.String()
	}
	return resp
}

// ToResponse exposes the public view to other packages.
func ToResponse(fr FinancialReport) FinancialReportResponse {
	return mapToResponse(fr)
}
