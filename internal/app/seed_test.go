package app

import (
	"context"
	"errors"
	"testing"

	"aparthotel/internal/config"
	"aparthotel/internal/rbac"
	"aparthotel/internal/user"
	mock_user "aparthotel/internal/user/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestSeedManager(t *testing.T) {
	ctx := context.Background()
	companyID := "7b1f3c2e-8f4a-4d7e-9a51-2c0e6d9b4f10"

	t.Run("skips when not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_user.NewMockRepository(ctrl)

		err := seedManager(ctx, repo, &config.Config{}, zap.NewNop())
		assert.NoError(t, err)
	})

	t.Run("keeps existing account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_user.NewMockRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "boss@hotel.com").Return(&user.User{Email: "boss@hotel.com"}, nil)

		err := seedManager(ctx, repo, &config.Config{
			SeedManagerEmail:    "Boss@Hotel.com",
			SeedManagerPassword: "secret123",
		}, zap.NewNop())
		assert.NoError(t, err)
	})

	t.Run("creates manager with hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_user.NewMockRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "boss@hotel.com").Return(nil, gorm.ErrRecordNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
			assert.Equal(t, string(rbac.RoleManager), u.Role)
			assert.Equal(t, companyID, u.CompanyID.String())
			assert.True(t, u.FirstLogin)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
			return nil
		})

		err := seedManager(ctx, repo, &config.Config{
			SeedManagerEmail:    "boss@hotel.com",
			SeedManagerPassword: "secret123",
			SeedCompanyID:       companyID,
		}, zap.NewNop())
		assert.NoError(t, err)
	})

	t.Run("lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_user.NewMockRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "boss@hotel.com").Return(nil, errors.New("db down"))

		err := seedManager(ctx, repo, &config.Config{
			SeedManagerEmail:    "boss@hotel.com",
			SeedManagerPassword: "secret123",
		}, zap.NewNop())
		assert.EqualError(t, err, "db down")
	})
}
