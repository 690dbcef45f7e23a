package unit_test

import (
	"context"
	"testing"

	"aparthotel/internal/shared/testutil"
	"aparthotel/internal/unit"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUnitRepository_LockByIDAndCompany(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	id := uuid.New()
	const lockQuery = `^SELECT \* FROM "units" WHERE id = \$1 AND company_id = \$2 ORDER BY "units"\."id" LIMIT \$3 FOR UPDATE$`

	t.Run("selects the row for update", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		mock.ExpectQuery(lockQuery).
			WithArgs(id.String(), companyID.String(), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "company_id", "unit_number", "beds", "price_per_night"}).
				AddRow(id.String(), companyID.String(), "101", 2, 80.0))

		u, err := unit.NewRepository(db).LockByIDAndCompany(ctx, companyID.String(), id.String())

		assert.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.Equal(t, 2, u.Beds)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing unit", func(t *testing.T) {
		db, mock := testutil.NewMockDB(t)
		mock.ExpectQuery(lockQuery).
			WithArgs(id.String(), companyID.String(), 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := unit.NewRepository(db).LockByIDAndCompany(ctx, companyID.String(), id.String())

		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
