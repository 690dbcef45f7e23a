package propertygroup_test

import (
	"context"
	"errors"
	"testing"

	"aparthotel/internal/propertygroup"
	propertygrouperrors "aparthotel/internal/propertygroup/errors"
	mock_propertygroup "aparthotel/internal/propertygroup/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func ptr(f float64) *float64 { return &f }

func validRequest() propertygroup.PropertyGroupRequest {
	return propertygroup.PropertyGroupRequest{
		Name:         "Sea View",
		Location:     "Lisbon",
		Address:      "Rua Augusta 10",
		Type:         propertygroup.TypeHotel,
		CompanyShare: ptr(30),
		OwnerShare:   ptr(70),
	}
}

func setupService(t *testing.T) (*mock_propertygroup.MockRepository, propertygroup.Service) {
	ctrl := gomock.NewController(t)
	repo := mock_propertygroup.NewMockRepository(ctrl)
	return repo, propertygroup.NewService(repo)
}

func TestPropertyGroupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *propertygroup.PropertyGroupRequest)
		wantErr error
	}{
		{name: "valid hotel", mutate: func(r *propertygroup.PropertyGroupRequest) {}},
		{
			name:   "apartment without address",
			mutate: func(r *propertygroup.PropertyGroupRequest) { r.Type = propertygroup.TypeApartment; r.Address = "" },
		},
		{
			name:    "hotel without address",
			mutate:  func(r *propertygroup.PropertyGroupRequest) { r.Address = "  " },
			wantErr: propertygrouperrors.ErrAddressRequired,
		},
		{
			name:    "shares do not sum to 100",
			mutate:  func(r *propertygroup.PropertyGroupRequest) { r.OwnerShare = ptr(60) },
			wantErr: propertygrouperrors.ErrSharesMustSum100,
		},
		{
			name:   "zero company share",
			mutate: func(r *propertygroup.PropertyGroupRequest) { r.CompanyShare = ptr(0); r.OwnerShare = ptr(100) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPropertyGroupService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pg *propertygroup.PropertyGroup) error {
				assert.Equal(t, companyID, pg.CompanyID.String())
				assert.Equal(t, 70.0, pg.OwnerShare)
				return nil
			})

		res, err := svc.Create(ctx, companyID, validRequest())

		assert.NoError(t, err)
		assert.Equal(t, "Sea View", res.Name)
		assert.Equal(t, companyID, res.CompanyID)
	})

	t.Run("invalid shares never reach the repository", func(t *testing.T) {
		_, svc := setupService(t)
		req := validRequest()
		req.CompanyShare = ptr(50)

		_, err := svc.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, propertygrouperrors.ErrSharesMustSum100)
	})

	t.Run("repository error", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Create(ctx, companyID, validRequest())

		assert.Error(t, err)
	})
}

func TestPropertyGroupService_GetAllByCompany(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	a, b := uuid.New(), uuid.New()

	t.Run("manager sees every group", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().FindAllByCompany(gomock.Any(), companyID).
			Return([]propertygroup.PropertyGroup{{ID: a}, {ID: b}}, nil)

		res, err := svc.GetAllByCompany(ctx, companyID, "")

		assert.NoError(t, err)
		assert.Len(t, res, 2)
	})

	t.Run("scoped caller sees own group", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().FindAllByCompany(gomock.Any(), companyID).
			Return([]propertygroup.PropertyGroup{{ID: a}, {ID: b}}, nil)

		res, err := svc.GetAllByCompany(ctx, companyID, b.String())

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, b.String(), res[0].ID)
	})
}

func TestPropertyGroupService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("invalid id", func(t *testing.T) {
		_, svc := setupService(t)
		_, err := svc.GetByID(ctx, companyID, "nope")
		assert.ErrorIs(t, err, propertygrouperrors.ErrInvalidPropertyGroupID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, companyID, id)

		assert.ErrorIs(t, err, propertygrouperrors.ErrPropertyGroupNotFound)
	})
}

func TestPropertyGroupService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New()

	repo, svc := setupService(t)
	existing := &propertygroup.PropertyGroup{ID: id, Name: "Old", Type: propertygroup.TypeApartment}
	repo.EXPECT().FindByIDAndCompany(gomock.Any(), companyID, id.String()).Return(existing, nil)
	repo.EXPECT().Update(gomock.Any(), existing).Return(nil)

	res, err := svc.Update(ctx, companyID, id.String(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, "Sea View", res.Name)
	assert.Equal(t, propertygroup.TypeHotel, res.Type)
}

func TestPropertyGroupService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().Delete(gomock.Any(), companyID, id).Return(nil)
		assert.NoError(t, svc.Delete(ctx, companyID, id))
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupService(t)
		repo.EXPECT().Delete(gomock.Any(), companyID, id).Return(gorm.ErrRecordNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, companyID, id), propertygrouperrors.ErrPropertyGroupNotFound)
	})
}
