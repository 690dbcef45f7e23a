package propertygroup

import (
	"context"
	"errors"
	"strings"
	"time"

	propertygrouperrors "aparthotel/internal/propertygroup/errors"
	"aparthotel/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=propertygroup_service.go -destination=mock/propertygroup_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req PropertyGroupRequest) (PropertyGroupResponse, error)
	GetAllByCompany(ctx context.Context, companyID, scopePropertyGroupID string) ([]PropertyGroupResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PropertyGroupResponse, error)
	Update(ctx context.Context, companyID, id string, req PropertyGroupRequest) (PropertyGroupResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("propertygroup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("propertygroup.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req PropertyGroupRequest) (PropertyGroupResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if err := req.Validate(); err != nil {
		l.Warn("create property group validation failed", zap.Error(err))
		return PropertyGroupResponse{}, err
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return PropertyGroupResponse{}, err
	}

	pg := &PropertyGroup{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		CreatedAt: time.Now().UTC(),
	}
	apply(pg, req)

	if err := s.repo.Create(ctx, pg); err != nil {
		l.Error("create property group persist failed", zap.Error(err))
		return PropertyGroupResponse{}, err
	}

	l.Info("create property group success", zap.String("property_group_id", pg.ID.String()))
	return mapToResponse(*pg), nil
}

// GetAllByCompany lists the company's property groups. A non-empty
// scopePropertyGroupID narrows the list to that group.
func (s *service) GetAllByCompany(ctx context.Context, companyID, scopePropertyGroupID string) ([]PropertyGroupResponse, error) {
	groups, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]PropertyGroupResponse, 0, len(groups))
	for _, pg := range groups {
		if scopePropertyGroupID != "" && pg.ID.String() != scopePropertyGroupID {
			continue
		}
		resp = append(resp, mapToResponse(pg))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PropertyGroupResponse, error) {
	pg, err := s.find(ctx, companyID, id)
	if err != nil {
		return PropertyGroupResponse{}, err
	}
	return mapToResponse(*pg), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req PropertyGroupRequest) (PropertyGroupResponse, error) {
	if err := req.Validate(); err != nil {
		return PropertyGroupResponse{}, err
	}

	pg, err := s.find(ctx, companyID, id)
	if err != nil {
		return PropertyGroupResponse{}, err
	}

	apply(pg, req)
	if err := s.repo.Update(ctx, pg); err != nil {
		s.logger.Error("update property group persist failed", zap.String("property_group_id", id), zap.Error(err))
		return PropertyGroupResponse{}, err
	}

	s.logger.Info("update property group success", zap.String("property_group_id", id))
	return mapToResponse(*pg), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return propertygrouperrors.ErrInvalidPropertyGroupID
	}
	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return propertygrouperrors.ErrPropertyGroupNotFound
		}
		return err
	}
	s.logger.Info("delete property group success", zap.String("property_group_id", id))
	return nil
}

func (s *service) find(ctx context.Context, companyID, id string) (*PropertyGroup, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, propertygrouperrors.ErrInvalidPropertyGroupID
	}
	pg, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, propertygrouperrors.ErrPropertyGroupNotFound
		}
		return nil, err
	}
	return pg, nil
}

func apply(pg *PropertyGroup, req PropertyGroupRequest) {
	pg.Name = strings.TrimSpace(req.Name)
	pg.Location = strings.TrimSpace(req.Location)
	pg.Address = strings.TrimSpace(req.Address)
	pg.Type = req.Type
	pg.CompanyShare = *req.CompanyShare
	pg.OwnerShare = *req.OwnerShare
}

func mapToResponse(pg PropertyGroup) PropertyGroupResponse {
	return PropertyGroupResponse{
		ID:           pg.ID.String(),
		CompanyID:    pg.CompanyID.String(),
		Name:         pg.Name,
		Location:     pg.Location,
		Address:      pg.Address,
		Type:         pg.Type,
		CompanyShare: pg.CompanyShare,
		OwnerShare:   pg.OwnerShare,
		CreatedAt:    pg.CreatedAt.Format(time.RFC3339),
	}
}

// ToResponse exposes the public view to other packages.
func ToResponse(pg PropertyGroup) PropertyGroupResponse {
	return mapToResponse(pg)
}
