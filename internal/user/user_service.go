package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"aparthotel/internal/rbac"
	"aparthotel/internal/shared/apperror"
	"aparthotel/internal/shared/contextutil"
	usererrors "aparthotel/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, companyID string, filter ListUsersFilter) ([]UserResponse, error)
	GetByID(ctx context.Context, companyID, id string) (UserResponse, error)
	Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, companyID, actorID, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListUsersFilter) ([]UserResponse, error) {
	users, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}
	return mapToResponse(*u), nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("create user requested",
		zap.String("company_id", companyID),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidCompanyID
	}

	role := rbac.Role(req.Role)
	pgID, err := s.resolvePropertyGroup(ctx, companyID, role, req.PropertyGroupID)
	if err != nil {
		return UserResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing != nil {
		return UserResponse{}, usererrors.ErrUserAlreadyExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		PropertyGroupID: pgID,
		Name:            strings.TrimSpace(req.Name),
		Email:           email,
		Password:        string(hashed),
		Role:            string(role),
		FirstLogin:      true,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if apperror.IsUniqueViolation(err, "idx_users_email") {
			return UserResponse{}, usererrors.ErrUserAlreadyExists
		}
		l.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("create user success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateUserRequest) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	role := rbac.Role(req.Role)
	pgID, err := s.resolvePropertyGroup(ctx, companyID, role, req.PropertyGroupID)
	if err != nil {
		return UserResponse{}, err
	}

	u.Name = strings.TrimSpace(req.Name)
	u.Role = string(role)
	u.PropertyGroupID = pgID

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("update user success", zap.String("user_id", id))
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, companyID, actorID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}
	if id == actorID {
		return usererrors.ErrCannotDeleteSelf
	}

	if err := s.repo.Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	s.logger.Info("delete user success", zap.String("user_id", id), zap.String("actor_id", actorID))
	return nil
}

// resolvePropertyGroup enforces that non-manager roles are bound to a
// property group of the caller's company.
func (s *service) resolvePropertyGroup(ctx context.Context, companyID string, role rbac.Role, raw string) (*uuid.UUID, error) {
	if !role.Valid() {
		return nil, usererrors.ErrInvalidRole
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		if role.ScopedToProperty() {
			return nil, usererrors.ErrPropertyGroupRequired
		}
		return nil, nil
	}

	pgID, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.InvalidField("Property Group Id")
	}

	ok, err := s.repo.PropertyGroupBelongsToCompany(ctx, companyID, raw)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, usererrors.ErrPropertyGroupNotInCompany
	}
	return &pgID, nil
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:         u.ID.String(),
		CompanyID:  u.CompanyID.String(),
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		FirstLogin: u.FirstLogin,
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
	}
	if u.PropertyGroupID != nil {
		v := u.PropertyGroupID.String()
		resp.PropertyGroupID = &v
	}
	return resp
}

// ToResponse exposes the public view of a user to other packages.
func ToResponse(u User) UserResponse {
	return mapToResponse(u)
}
