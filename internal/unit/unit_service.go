package unit

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"aparthotel/internal/shared/apperror"
	"aparthotel/internal/shared/contextutil"
	"aparthotel/internal/shared/dateutil"
	uniterrors "aparthotel/internal/unit/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	UnitAllKeyPrefix = "units:all:"
	CacheTTL         = 30 * time.Minute
)

func GetUnitAllKey(companyID string) string {
	return UnitAllKeyPrefix + companyID
}

// InvalidateCache drops the company-wide unit list. A nil client is a no-op.
func InvalidateCache(ctx context.Context, rdb *redis.Client, companyID string) error {
	if rdb == nil {
		return nil
	}
	return rdb.Del(ctx, GetUnitAllKey(companyID)).Err()
}

//go:generate mockgen -source=unit_service.go -destination=mock/unit_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateUnitRequest) (UnitResponse, error)
	GetAll(ctx context.Context, companyID, propertyGroupID string) ([]UnitResponse, error)
	GetByID(ctx context.Context, companyID, id string) (UnitResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateUnitRequest) (UnitResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("unit.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("unit.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateUnitRequest) (UnitResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("create unit requested", zap.String("property_group_id", req.PropertyGroupID))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UnitResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ok, err := qtx.PropertyGroupBelongsToCompany(ctx, companyID, req.PropertyGroupID)
	if err != nil {
		return UnitResponse{}, err
	}
	if !ok {
		return UnitResponse{}, uniterrors.ErrPropertyGroupNotFound
	}

	unitNumber := strings.TrimSpace(req.UnitNumber)
	exists, err := qtx.UnitNumberExists(ctx, req.PropertyGroupID, unitNumber, "")
	if err != nil {
		return UnitResponse{}, err
	}
	if exists {
		l.Warn("create unit rejected: duplicate unit number", zap.String("unit_number", unitNumber))
		return UnitResponse{}, uniterrors.ErrUnitNumberTaken
	}

	u := &Unit{
		ID:              uuid.New(),
		CompanyID:       uuid.MustParse(companyID),
		PropertyGroupID: uuid.MustParse(req.PropertyGroupID),
		UnitNumber:      unitNumber,
		Floor:           req.Floor,
		Beds:            req.Beds,
		PricePerNight:   req.PricePerNight,
	}

	if err := qtx.Create(ctx, u); err != nil {
		if apperror.IsUniqueViolation(err, UniqueUnitNumberIndex) {
			return UnitResponse{}, uniterrors.ErrUnitNumberTaken
		}
		l.Error("create unit persist failed", zap.Error(err))
		return UnitResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return UnitResponse{}, err
	}

	s.invalidate(ctx, companyID)
	l.Info("create unit success", zap.String("unit_id", u.ID.String()))
	return mapToResponse(*u), nil
}

// GetAll serves the company's unit list from the cache and narrows it to
// propertyGroupID when one is given.
func (s *service) GetAll(ctx context.Context, companyID, propertyGroupID string) ([]UnitResponse, error) {
	all, err := s.listCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if propertyGroupID == "" {
		return all, nil
	}

	filtered := make([]UnitResponse, 0, len(all))
	for _, u := range all {
		if u.PropertyGroupID == propertyGroupID {
			filtered = append(filtered, u)
		}
	}
	return filtered, nil
}

func (s *service) listCompany(ctx context.Context, companyID string) ([]UnitResponse, error) {
	cacheKey := GetUnitAllKey(companyID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []UnitResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		units, err := s.repo.FindAllByCompany(ctx, companyID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(units)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, CacheTTL).Err(); err != nil {
					s.logger.Warn("unit cache write failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]UnitResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (UnitResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UnitResponse{}, uniterrors.ErrInvalidUnitID
	}

	u, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return UnitResponse{}, mapNotFound(err)
	}

	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateUnitRequest) (UnitResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UnitResponse{}, uniterrors.ErrInvalidUnitID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UnitResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return UnitResponse{}, mapNotFound(err)
	}

	unitNumber := strings.TrimSpace(req.UnitNumber)
	if unitNumber != u.UnitNumber {
		exists, err := qtx.UnitNumberExists(ctx, u.PropertyGroupID.String(), unitNumber, id)
		if err != nil {
			return UnitResponse{}, err
		}
		if exists {
			return UnitResponse{}, uniterrors.ErrUnitNumberTaken
		}
	}

	u.UnitNumber = unitNumber
	u.Floor = req.Floor
	u.Beds = req.Beds
	u.PricePerNight = req.PricePerNight

	if err := qtx.Update(ctx, u); err != nil {
		if apperror.IsUniqueViolation(err, UniqueUnitNumberIndex) {
			return UnitResponse{}, uniterrors.ErrUnitNumberTaken
		}
		return UnitResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return UnitResponse{}, err
	}

	s.invalidate(ctx, companyID)
	s.logger.Info("update unit success", zap.String("unit_id", id))
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return uniterrors.ErrInvalidUnitID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return mapNotFound(err)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.invalidate(ctx, companyID)
	s.logger.Info("delete unit success", zap.String("unit_id", id))
	return nil
}

func (s *service) invalidate(ctx context.Context, companyID string) {
	if err := InvalidateCache(ctx, s.rdb, companyID); err != nil {
		s.logger.Error("failed to invalidate unit cache",
			zap.String("key", GetUnitAllKey(companyID)),
			zap.Error(err),
		)
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uniterrors.ErrUnitNotFound
	}
	return err
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.UTC().Format(dateutil.DateLayout)
	return &v
}

func mapToResponse(u Unit) UnitResponse {
	resp := UnitResponse{
		ID:              u.ID.String(),
		CompanyID:       u.CompanyID.String(),
		PropertyGroupID: u.PropertyGroupID.String(),
		UnitNumber:      u.UnitNumber,
		Floor:           u.Floor,
		Beds:            u.Beds,
		PricePerNight:   u.PricePerNight,
		LastCleaned:     formatDate(u.LastCleaned),
		LastMaintenance: formatDate(u.LastMaintenance),
	}
	if !u.CreatedAt.IsZero() {
		resp.CreatedAt = u.CreatedAt.Format(time.RFC3339)
	}
	if !u.UpdatedAt.IsZero() {
		resp.UpdatedAt = u.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(units []Unit) []UnitResponse {
	res := make([]UnitResponse, len(units))
	for i, u := range units {
		res[i] = mapToResponse(u)
	}
	return res
}

// ToResponse exposes the public view to other packages.
func ToResponse(u Unit) UnitResponse {
	return mapToResponse(u)
}
