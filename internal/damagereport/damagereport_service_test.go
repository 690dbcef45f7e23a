package damagereport_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"aparthotel/internal/damagereport"
	damagereporterrors "aparthotel/internal/damagereport/errors"
	damageMock "aparthotel/internal/damagereport/mock"
	"aparthotel/internal/shared/storage"
	storageMock "aparthotel/internal/shared/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

type serviceDeps struct {
	service damagereport.Service
	repo    *damageMock.MockRepository
	store   *storageMock.MockStore
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		repo:  damageMock.NewMockRepository(ctrl),
		store: storageMock.NewMockStore(ctrl),
	}
	deps.service = damagereport.NewService(deps.repo, deps.store)
	return deps
}

func request() damagereport.CreateDamageReportRequest {
	return damagereport.CreateDamageReportRequest{
		UnitNumber:  "101",
		Owner:       "Maria",
		Description: "Broken lamp",
		Date:        "2025-06-03",
	}
}

func TestDamageReportService_Create(t *testing.T) {
	ctx := context.Background()
	actor := damagereport.Actor{UserID: uuid.NewString(), CompanyID: uuid.NewString(), PropertyGroupID: uuid.NewString()}

	t.Run("png is stored and linked", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.store.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), "image/png").
			DoAndReturn(func(_ context.Context, path string, r io.Reader, _ string) (*storage.FileInfo, error) {
				assert.True(t, strings.HasPrefix(path, "damage/"+actor.CompanyID+"/"))
				assert.True(t, strings.HasSuffix(path, "lamp.png"))
				body, _ := io.ReadAll(r)
				assert.Equal(t, pngHeader+"rest", string(body))
				return &storage.FileInfo{Path: path, URL: "/uploads/" + path, FileSize: int64(len(body))}, nil
			})
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, d *damagereport.DamageReport) error {
				assert.Equal(t, damagereport.StatusOpen, d.Status)
				assert.Equal(t, actor.PropertyGroupID, d.PropertyGroupID.String())
				return nil
			})

		res, err := deps.service.Create(ctx, actor, request(), &damagereport.Image{
			Filename: "lamp.png",
			Size:     int64(len(pngHeader) + 4),
			Body:     strings.NewReader(pngHeader + "rest"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "open", res.Status)
		assert.True(t, strings.HasPrefix(res.ImageURL, "/uploads/damage/"))
	})

	t.Run("report without image", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		res, err := deps.service.Create(ctx, actor, request(), nil)

		assert.NoError(t, err)
		assert.Empty(t, res.ImageURL)
	})

	t.Run("text file is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, actor, request(), &damagereport.Image{
			Filename: "lamp.png",
			Size:     5,
			Body:     strings.NewReader("hello"),
		})

		assert.ErrorIs(t, err, damagereporterrors.ErrUnsupportedImage)
	})

	t.Run("oversized image is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Create(ctx, actor, request(), &damagereport.Image{
			Filename: "lamp.png",
			Size:     damagereport.MaxImageSize + 1,
			Body:     strings.NewReader(pngHeader),
		})

		assert.ErrorIs(t, err, damagereporterrors.ErrImageTooLarge)
	})

	t.Run("stored image is removed when the insert fails", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.store.EXPECT().Save(ctx, gomock.Any(), gomock.Any(), "image/png").
			Return(&storage.FileInfo{Path: "damage/x.png"}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))
		deps.store.EXPECT().Delete(ctx, "damage/x.png").Return(nil)

		_, err := deps.service.Create(ctx, actor, request(), &damagereport.Image{
			Filename: "x.png",
			Size:     int64(len(pngHeader)),
			Body:     strings.NewReader(pngHeader),
		})

		assert.Error(t, err)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := request()
		req.Date = "yesterday"

		_, err := deps.service.Create(ctx, actor, req, nil)

		assert.ErrorIs(t, err, damagereporterrors.ErrInvalidDate)
	})
}

func TestDamageReportService_ListScoping(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()

	t.Run("owner sees own property", func(t *testing.T) {
		deps := setupServiceTest(t)
		pg := uuid.NewString()
		deps.repo.EXPECT().FindByCompany(ctx, companyID, pg).Return([]damagereport.DamageReport{{ID: uuid.New()}}, nil)

		res, err := deps.service.List(ctx, damagereport.Actor{CompanyID: companyID, PropertyGroupID: pg})

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("manager sees company", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByCompany(ctx, companyID, "").Return(nil, nil)

		_, err := deps.service.List(ctx, damagereport.Actor{CompanyID: companyID})

		assert.NoError(t, err)
	})

	t.Run("report of another property is hidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		other := uuid.New()
		id := uuid.NewString()
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).
			Return(&damagereport.DamageReport{PropertyGroupID: &other}, nil)

		_, err := deps.service.GetByID(ctx, damagereport.Actor{CompanyID: companyID, PropertyGroupID: uuid.NewString()}, id)

		assert.ErrorIs(t, err, damagereporterrors.ErrDamageReportNotFound)
	})
}

func TestDamageReportService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	t.Run("moves to resolved", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).
			Return(&damagereport.DamageReport{ID: uuid.MustParse(id), Status: damagereport.StatusOpen}, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, companyID, id, "resolved").Return(nil)

		res, err := deps.service.UpdateStatus(ctx, damagereport.Actor{CompanyID: companyID}, id, damagereport.UpdateStatusRequest{Status: "resolved"})

		assert.NoError(t, err)
		assert.Equal(t, "resolved", res.Status)
	})

	t.Run("unknown report", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateStatus(ctx, damagereport.Actor{CompanyID: companyID}, id, damagereport.UpdateStatusRequest{Status: "resolved"})

		assert.ErrorIs(t, err, damagereporterrors.ErrDamageReportNotFound)
	})
}

func TestDamageReportService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	id := uuid.NewString()

	deps := setupServiceTest(t)
	deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID, id).
		Return(&damagereport.DamageReport{ID: uuid.MustParse(id), ImagePath: "damage/a.png"}, nil)
	deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)
	deps.store.EXPECT().Delete(ctx, "damage/a.png").Return(errors.New("already gone"))

	err := deps.service.Delete(ctx, damagereport.Actor{CompanyID: companyID}, id)

	assert.NoError(t, err)
}
