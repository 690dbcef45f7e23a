package app

import (
	"context"
	"errors"
	"strings"

	"aparthotel/internal/config"
	"aparthotel/internal/rbac"
	"aparthotel/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// seedManager creates the first manager account when SEED_MANAGER_EMAIL is
// set and no user with that email exists yet.
func seedManager(ctx context.Context, repo user.Repository, cfg *config.Config, logger *zap.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.SeedManagerEmail))
	if email == "" || cfg.SeedManagerPassword == "" {
		return nil
	}

	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	companyID := uuid.New()
	if cfg.SeedCompanyID != "" {
		if companyID, err = uuid.Parse(cfg.SeedCompanyID); err != nil {
			return err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.SeedManagerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u := &user.User{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Name:       "Manager",
		Email:      email,
		Password:   string(hashed),
		Role:       string(rbac.RoleManager),
		FirstLogin: true,
	}
	if err := repo.Create(ctx, u); err != nil {
		return err
	}

	logger.Info("seeded manager account",
		zap.String("user_id", u.ID.String()),
		zap.String("company_id", companyID.String()),
	)
	return nil
}
