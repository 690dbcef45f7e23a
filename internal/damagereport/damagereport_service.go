package damagereport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	damagereporterrors "aparthotel/internal/damagereport/errors"
	"aparthotel/internal/shared/contextutil"
	"aparthotel/internal/shared/dateutil"
	"aparthotel/internal/shared/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

//go:generate mockgen -source=damagereport_service.go -destination=mock/damagereport_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor Actor, req CreateDamageReportRequest, image *Image) (DamageReportResponse, error)
	List(ctx context.Context, actor Actor) ([]DamageReportResponse, error)
	GetByID(ctx context.Context, actor Actor, id string) (DamageReportResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, id string, req UpdateStatusRequest) (DamageReportResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
}

type service struct {
	repo   Repository
	store  storage.Store
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, store storage.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("damagereport.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("damagereport.service")
	}
	return &service{repo: repo, store: store, now: time.Now, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	actor Actor,
	req CreateDamageReportRequest,
	image *Image,
) (DamageReportResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	date, err := dateutil.Parse(req.Date)
	if err != nil {
		return DamageReportResponse{}, damagereporterrors.ErrInvalidDate
	}

	d := &DamageReport{
		ID:          uuid.New(),
		CompanyID:   parseUUID(actor.CompanyID),
		UnitNumber:  req.UnitNumber,
		Owner:       req.Owner,
		Description: req.Description,
		Date:        date,
		ReportedBy:  parseUUID(actor.UserID),
		Status:      StatusOpen,
		CreatedAt:   s.now().UTC(),
	}
	if pg, err := uuid.Parse(actor.PropertyGroupID); err == nil {
		d.PropertyGroupID = &pg
	}

	if image != nil {
		info, err := s.saveImage(ctx, actor.CompanyID, d.ID.String(), image)
		if err != nil {
			l.Warn("damage report image rejected", zap.Error(err))
			return DamageReportResponse{}, err
		}
		d.ImagePath = info.Path
		d.ImageURL = info.URL
	}

	if err := s.repo.Create(ctx, d); err != nil {
		l.Error("create damage report persist failed", zap.Error(err))
		s.removeImage(ctx, d.ImagePath)
		return DamageReportResponse{}, err
	}

	l.Info("create damage report success",
		zap.String("damage_report_id", d.ID.String()),
		zap.String("unit_number", d.UnitNumber),
	)
	return mapToResponse(*d), nil
}

// saveImage checks size and sniffed content type before handing the stream
// to the store.
func (s *service) saveImage(ctx context.Context, companyID, reportID string, image *Image) (*storage.FileInfo, error) {
	if image.Size > MaxImageSize {
		return nil, damagereporterrors.ErrImageTooLarge
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(image.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, damagereporterrors.ErrUploadFailed
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, damagereporterrors.ErrUnsupportedImage
	}

	body := io.LimitReader(io.MultiReader(bytes.NewReader(head), image.Body), MaxImageSize+1)
	name := storage.SanitizeFilename(image.Filename)
	path := fmt.Sprintf("damage/%s/%s_%d_%s", companyID, reportID, s.now().Unix(), name)
	if !hasExt(name, contentType) {
		path += ext
	}

	info, err := s.store.Save(ctx, path, body, contentType)
	if err != nil {
		s.logger.Error("damage report image upload failed", zap.String("path", path), zap.Error(err))
		return nil, damagereporterrors.ErrUploadFailed
	}
	if info.FileSize > MaxImageSize {
		s.removeImage(ctx, info.Path)
		return nil, damagereporterrors.ErrImageTooLarge
	}
	return info, nil
}

func (s *service) List(ctx context.Context, actor Actor) ([]DamageReportResponse, error) {
	reports, err := s.repo.FindByCompany(ctx, actor.CompanyID, actor.PropertyGroupID)
	if err != nil {
		return nil, err
	}

	resp := make([]DamageReportResponse, len(reports))
	for i, d := range reports {
		resp[i] = mapToResponse(d)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actor Actor, id string) (DamageReportResponse, error) {
	d, err := s.findScoped(ctx, actor, id)
	if err != nil {
		return DamageReportResponse{}, err
	}
	return mapToResponse(*d), nil
}

func (s *service) UpdateStatus(
	ctx context.Context,
	actor Actor,
	id string,
	req UpdateStatusRequest,
) (DamageReportResponse, error) {
	d, err := s.findScoped(ctx, actor, id)
	if err != nil {
		return DamageReportResponse{}, err
	}

	if err := s.repo.UpdateStatus(ctx, actor.CompanyID, id, req.Status); err != nil {
		return DamageReportResponse{}, mapNotFound(err)
	}

	contextutil.GetLogger(ctx, s.logger).Info("damage report status changed",
		zap.String("damage_report_id", id),
		zap.String("from", d.Status),
		zap.String("to", req.Status),
	)
	d.Status = req.Status
	return mapToResponse(*d), nil
}

func (s *service) Delete(ctx context.Context, actor Actor, id string) error {
	d, err := s.findScoped(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, actor.CompanyID, id); err != nil {
		return mapNotFound(err)
	}

	s.removeImage(ctx, d.ImagePath)
	contextutil.GetLogger(ctx, s.logger).Info("delete damage report success", zap.String("damage_report_id", id))
	return nil
}

func (s *service) findScoped(ctx context.Context, actor Actor, id string) (*DamageReport, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, damagereporterrors.ErrInvalidDamageReportID
	}

	d, err := s.repo.FindByIDAndCompany(ctx, actor.CompanyID, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if actor.PropertyGroupID != "" && (d.PropertyGroupID == nil || d.PropertyGroupID.String() != actor.PropertyGroupID) {
		return nil, damagereporterrors.ErrDamageReportNotFound
	}
	return d, nil
}

// removeImage is best effort; a leftover file does not fail the request.
func (s *service) removeImage(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.store.Delete(ctx, path); err != nil {
		s.logger.Warn("delete damage report image failed", zap.String("path", path), zap.Error(err))
	}
}

func hasExt(name, contentType string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return contentType == "image/jpeg"
	case ".png":
		return contentType == "image/png"
	}
	return false
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
		return damagereporterrors.ErrDamageReportNotFound
	}
	return err
}

func mapToResponse(d DamageReport) DamageReportResponse {
	resp := DamageReportResponse{
		ID:          d.ID.String(),
		UnitNumber:  d.UnitNumber,
		Owner:       d.Owner,
		Description: d.Description,
		Date:        d.Date.Format(dateutil.DateLayout),
		ImageURL:    d.ImageURL,
		ReportedBy:  d.ReportedBy.String(),
		Status:      d.Status,
		CreatedAt:   d.CreatedAt.Format(time.RFC3339),
	}
	if d.PropertyGroupID != nil {
		resp.PropertyGroupID = d.PropertyGroupID.String()
	}
	return resp
}
