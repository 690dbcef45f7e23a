package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	autherrors "aparthotel/internal/auth/errors"
	"aparthotel/internal/shared/contextutil"
	"aparthotel/internal/shared/token"
	"aparthotel/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Config carries the token settings of the auth service.
type Config struct {
	JWTSecret     string
	TokenTTL      time.Duration
	ResetTokenTTL time.Duration
	FrontendURL   string
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (user.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) (ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
	CleanupExpiredResets(ctx context.Context) (int64, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	cfg    Config
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.ResetTokenTTL <= 0 {
		cfg.ResetTokenTTL = time.Hour
	}
	return &service{db: db, repo: repo, cfg: cfg, now: time.Now, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login unknown email", zap.String("email", email))
			return LoginResponse{}, autherrors.ErrUserNotFound
		}
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		l.Warn("login wrong password", zap.String("user_id", u.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidPassword
	}

	claims := token.Claims{
		ID:        u.ID.String(),
		Role:      u.Role,
		CompanyID: u.CompanyID.String(),
	}
	if u.PropertyGroupID != nil {
		claims.PropertyGroupID = u.PropertyGroupID.String()
	}

	signed, err := token.Issue(s.cfg.JWTSecret, claims, s.now(), s.cfg.TokenTTL)
	if err != nil {
		l.Error("login token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	l.Info("login success", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return LoginResponse{Token: signed, User: user.ToResponse(*u)}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (user.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return user.UserResponse{}, autherrors.ErrInvalidToken
	}

	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.UserResponse{}, autherrors.ErrUserNotFound
		}
		return user.UserResponse{}, err
	}
	return user.ToResponse(*u), nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return autherrors.ErrInvalidToken
	}

	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return autherrors.ErrWrongCurrentPassword
	}
	if req.CurrentPassword == req.NewPassword {
		return autherrors.ErrSamePassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, string(hashed)); err != nil {
		s.logger.Error("change password persist failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	s.logger.Info("change password success", zap.String("user_id", userID))
	return nil
}

func (s *service) ForgotPassword(ctx context.Context, email string) (ForgotPasswordResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ForgotPasswordResponse{}, autherrors.ErrUserNotFound
		}
		return ForgotPasswordResponse{}, err
	}

	raw, err := newResetToken()
	if err != nil {
		return ForgotPasswordResponse{}, err
	}

	now := s.now().UTC()
	reset := &PasswordReset{
		UserID:    u.ID,
		TokenHash: hashToken(raw),
		ExpiresAt: now.Add(s.cfg.ResetTokenTTL),
		CreatedAt: now,
	}
	if err := s.repo.SaveReset(ctx, reset); err != nil {
		l.Error("forgot password persist failed", zap.Error(err))
		return ForgotPasswordResponse{}, err
	}

	l.Info("forgot password token issued", zap.String("user_id", u.ID.String()))
	return ForgotPasswordResponse{
		Message:   "Password reset link generated",
		ResetLink: strings.TrimRight(s.cfg.FrontendURL, "/") + "/reset-password/" + raw,
		ExpiresAt: reset.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (s *service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return autherrors.ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	reset, err := qtx.FindResetByHash(ctx, hashToken(rawToken))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrInvalidResetToken
		}
		return err
	}
	if !s.now().Before(reset.ExpiresAt) {
		return autherrors.ErrInvalidResetToken
	}

	if err := qtx.UpdatePassword(ctx, reset.UserID, string(hashed)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrInvalidResetToken
		}
		return err
	}
	if err := qtx.DeleteReset(ctx, reset.UserID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("reset password commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("reset password success", zap.String("user_id", reset.UserID.String()))
	return nil
}

func (s *service) CleanupExpiredResets(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpiredResets(ctx, s.now().UTC())
	if err != nil {
		s.logger.Error("cleanup expired resets failed", zap.Error(err))
		return 0, err
	}
	s.logger.Info("cleanup expired resets", zap.Int64("deleted", n))
	return n, nil
}

func newResetToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
