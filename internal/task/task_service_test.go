package task_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"aparthotel/internal/events"
	"aparthotel/internal/messaging/kafka"
	outboxMock "aparthotel/internal/messaging/kafka/mock"
	"aparthotel/internal/shared/apperror"
	"aparthotel/internal/shared/testutil"
	"aparthotel/internal/task"
	taskerrors "aparthotel/internal/task/errors"
	taskMock "aparthotel/internal/task/mock"
	"aparthotel/internal/unit"
	unitMock "aparthotel/internal/unit/mock"
	"aparthotel/internal/user"
	userMock "aparthotel/internal/user/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	redisMock redismock.ClientMock
	service   task.Service
	repo      *taskMock.MockRepository
	unitRepo  *unitMock.MockRepository
	userRepo  *userMock.MockRepository
	outbox    *outboxMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock := testutil.NewMockDB(t)
	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		sqlMock:   sqlMock,
		redisMock: redisMock,
		repo:      taskMock.NewMockRepository(ctrl),
		unitRepo:  unitMock.NewMockRepository(ctrl),
		userRepo:  userMock.NewMockRepository(ctrl),
		outbox:    outboxMock.NewMockOutboxRepository(ctrl),
	}
	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo).AnyTimes()
	deps.unitRepo.EXPECT().WithTx(gomock.Any()).Return(deps.unitRepo).AnyTimes()
	deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox).AnyTimes()

	deps.service = task.NewService(db, deps.repo, deps.unitRepo, deps.userRepo, deps.outbox, rdb)
	return deps
}

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func pendingTask(companyID uuid.UUID, taskType string) *task.Task {
	return &task.Task{
		ID:              uuid.New(),
		CompanyID:       companyID,
		PropertyGroupID: uuid.New(),
		UnitID:          uuid.New(),
		AssignedTo:      uuid.New(),
		Type:            taskType,
		Date:            day("2025-06-03"),
		Status:          task.StatusPending,
	}
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := task.Actor{UserID: uuid.NewString(), CompanyID: companyID.String()}
	u := &unit.Unit{ID: uuid.New(), CompanyID: companyID, PropertyGroupID: uuid.New(), UnitNumber: "101"}
	req := task.CreateTaskRequest{UnitID: u.ID.String(), AssignedTo: uuid.NewString(), Type: task.TypeCleaning, Date: "2025-06-03"}

	t.Run("pending task inherits the unit property", func(t *testing.T) {
		deps := setupServiceTest(t)
		testutil.ExpectTx(t, deps.sqlMock, true)

		deps.unitRepo.EXPECT().FindByIDAndCompany(ctx, actor.CompanyID, req.UnitID).Return(u, nil)
		deps.userRepo.EXPECT().FindByID(ctx, actor.CompanyID, req.AssignedTo).
			Return(&user.User{ID: uuid.MustParse(req.AssignedTo), Role: "housekeeping"}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, tk *task.Task) error {
				assert.Equal(t, u.PropertyGroupID, tk.PropertyGroupID)
				assert.Equal(t, task.StatusPending, tk.Status)
				return nil
			})
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.TaskLifecycleTopic, e.Topic)
				assert.Equal(t, events.TaskCreated, e.EventType)
				return nil
			})

		res, err := deps.service.Create(ctx, actor, req)

		assert.NoError(t, err)
		assert.Equal(t, "pending", res.Status)
		assert.Equal(t, "2025-06-03", res.Date)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("front office user cannot hold tasks", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.unitRepo.EXPECT().FindByIDAndCompany(ctx, actor.CompanyID, req.UnitID).Return(u, nil)
		deps.userRepo.EXPECT().FindByID(ctx, actor.CompanyID, req.AssignedTo).
			Return(&user.User{Role: "frontoffice"}, nil)

		_, err := deps.service.Create(ctx, actor, req)

		assert.ErrorIs(t, err, taskerrors.ErrInvalidAssignee)
	})

	t.Run("unknown unit", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.unitRepo.EXPECT().FindByIDAndCompany(ctx, actor.CompanyID, req.UnitID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, actor, req)

		assert.ErrorIs(t, err, taskerrors.ErrUnitNotFound)
	})

	t.Run("assignee outside company", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.unitRepo.EXPECT().FindByIDAndCompany(ctx, actor.CompanyID, req.UnitID).Return(u, nil)
		deps.userRepo.EXPECT().FindByID(ctx, actor.CompanyID, req.AssignedTo).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, actor, req)

		assert.ErrorIs(t, err, taskerrors.ErrAssigneeNotFound)
	})
}

func TestTaskService_Complete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := task.Actor{UserID: uuid.NewString(), CompanyID: companyID.String()}

	t.Run("cleaning sets lastCleaned to the task date", func(t *testing.T) {
		deps := setupServiceTest(t)
		tk := pendingTask(companyID, task.TypeCleaning)
		testutil.ExpectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().LockByIDAndCompany(ctx, actor.CompanyID, tk.ID.String()).Return(tk, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, got *task.Task) error {
				assert.Equal(t, task.StatusDone, got.Status)
				assert.Equal(t, "deep", *got.CleaningType)
				assert.NotNil(t, got.CompletedAt)
				return nil
			})
		deps.unitRepo.EXPECT().SetLastCleaned(ctx, tk.UnitID.String(), day("2025-06-03")).Return(nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.TaskCompleted, e.EventType)
				return nil
			})
		deps.redisMock.ExpectDel(unit.GetUnitAllKey(companyID.String())).SetVal(1)

		res, err := deps.service.Complete(ctx, actor, tk.ID.String(), task.CompleteTaskRequest{CleaningType: "deep"})

		assert.NoError(t, err)
		assert.Equal(t, "done", res.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("maintenance sets lastMaintenance", func(t *testing.T) {
		deps := setupServiceTest(t)
		tk := pendingTask(companyID, task.TypeMaintenance)
		testutil.ExpectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().LockByIDAndCompany(ctx, actor.CompanyID, tk.ID.String()).Return(tk, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(nil)
		deps.unitRepo.EXPECT().SetLastMaintenance(ctx, tk.UnitID.String(), day("2025-06-03")).Return(nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redisMock.ExpectDel(unit.GetUnitAllKey(companyID.String())).SetVal(1)

		res, err := deps.service.Complete(ctx, actor, tk.ID.String(), task.CompleteTaskRequest{})

		assert.NoError(t, err)
		assert.Nil(t, res.CleaningType)
	})

	t.Run("cleaning without a type is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		tk := pendingTask(companyID, task.TypeCleaning)
		testutil.ExpectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().LockByIDAndCompany(ctx, actor.CompanyID, tk.ID.String()).Return(tk, nil)

		_, err := deps.service.Complete(ctx, actor, tk.ID.String(), task.CompleteTaskRequest{})

		assert.ErrorIs(t, err, taskerrors.ErrCleaningTypeRequired)
		assert.Equal(t, http.StatusBadRequest, apperror.ToHTTP(err).Status)
	})

	t.Run("already done", func(t *testing.T) {
		deps := setupServiceTest(t)
		tk := pendingTask(companyID, task.TypeCleaning)
		tk.Status = task.StatusDone
		testutil.ExpectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().LockByIDAndCompany(ctx, actor.CompanyID, tk.ID.String()).Return(tk, nil)

		_, err := deps.service.Complete(ctx, actor, tk.ID.String(), task.CompleteTaskRequest{CleaningType: "regular"})

		assert.ErrorIs(t, err, taskerrors.ErrTaskAlreadyDone)
	})

	t.Run("missing task", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()
		testutil.ExpectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().LockByIDAndCompany(ctx, actor.CompanyID, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Complete(ctx, actor, id, task.CompleteTaskRequest{CleaningType: "regular"})

		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
		assert.Equal(t, http.StatusNotFound, apperror.ToHTTP(err).Status)
	})

	t.Run("task in another property", func(t *testing.T) {
		deps := setupServiceTest(t)
		tk := pendingTask(companyID, task.TypeCleaning)
		scoped := actor
		scoped.PropertyGroupID = uuid.NewString()
		testutil.ExpectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().LockByIDAndCompany(ctx, actor.CompanyID, tk.ID.String()).Return(tk, nil)

		_, err := deps.service.Complete(ctx, scoped, tk.ID.String(), task.CompleteTaskRequest{CleaningType: "regular"})

		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})
}

func TestTaskService_SetStatus(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := task.Actor{UserID: uuid.NewString(), CompanyID: companyID.String()}

	t.Run("toggle to done defaults to a regular clean", func(t *testing.T) {
		deps := setupServiceTest(t)
		tk := pendingTask(companyID, task.TypeCleaning)
		testutil.ExpectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().LockByIDAndCompany(ctx, actor.CompanyID, tk.ID.String()).Return(tk, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, gomock.Any()).Return(nil)
		deps.unitRepo.EXPECT().SetLastCleaned(ctx, tk.UnitID.String(), tk.Date).Return(nil)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redisMock.ExpectDel(unit.GetUnitAllKey(companyID.String())).SetVal(1)

		res, err := deps.service.SetStatus(ctx, actor, tk.ID.String(), task.UpdateStatusRequest{Status: "done"})

		assert.NoError(t, err)
		assert.Equal(t, "regular", *res.CleaningType)
	})

	t.Run("toggle back to pending leaves the unit alone", func(t *testing.T) {
		deps := setupServiceTest(t)
		tk := pendingTask(companyID, task.TypeCleaning)
		tk.Status = task.StatusDone
		regular := task.CleaningRegular
		tk.CleaningType = &regular
		testutil.ExpectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().LockByIDAndCompany(ctx, actor.CompanyID, tk.ID.String()).Return(tk, nil)
		deps.repo.EXPECT().UpdateStatus(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, got *task.Task) error {
				assert.Nil(t, got.CleaningType)
				assert.Nil(t, got.CompletedAt)
				return nil
			})
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
				assert.Equal(t, events.TaskReopened, e.EventType)
				return nil
			})

		res, err := deps.service.SetStatus(ctx, actor, tk.ID.String(), task.UpdateStatusRequest{Status: "pending"})

		assert.NoError(t, err)
		assert.Equal(t, "pending", res.Status)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t)
		tk := pendingTask(companyID, task.TypeMaintenance)
		testutil.ExpectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().LockByIDAndCompany(ctx, actor.CompanyID, tk.ID.String()).Return(tk, nil)

		res, err := deps.service.SetStatus(ctx, actor, tk.ID.String(), task.UpdateStatusRequest{Status: "pending"})

		assert.NoError(t, err)
		assert.Equal(t, "pending", res.Status)
	})
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("scoped caller only sees own property", func(t *testing.T) {
		deps := setupServiceTest(t)
		own := uuid.NewString()
		actor := task.Actor{UserID: uuid.NewString(), CompanyID: companyID.String(), PropertyGroupID: own}

		deps.repo.EXPECT().FindByCompany(ctx, actor.CompanyID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, f task.Filter) ([]task.Task, error) {
				assert.Equal(t, own, f.PropertyGroupID)
				assert.Equal(t, "done", f.Status)
				assert.Equal(t, day("2025-06-01"), *f.From)
				return []task.Task{*pendingTask(companyID, task.TypeCleaning)}, nil
			})

		res, err := deps.service.List(ctx, actor, task.ListTasksQuery{PropertyGroupID: uuid.NewString(), Status: "done", From: "2025-06-01"})

		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("my tasks filter by caller", func(t *testing.T) {
		deps := setupServiceTest(t)
		actor := task.Actor{UserID: uuid.NewString(), CompanyID: companyID.String()}

		deps.repo.EXPECT().FindByCompany(ctx, actor.CompanyID, task.Filter{AssignedTo: actor.UserID}).Return(nil, nil)

		res, err := deps.service.ListMine(ctx, actor)

		assert.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.List(ctx, task.Actor{CompanyID: companyID.String()}, task.ListTasksQuery{To: "June"})
		assert.ErrorIs(t, err, taskerrors.ErrInvalidDate)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	actor := task.Actor{UserID: uuid.NewString(), CompanyID: companyID.String()}
	tk := pendingTask(companyID, task.TypeCleaning)

	deps := setupServiceTest(t)
	testutil.ExpectTx(t, deps.sqlMock, true)

	deps.repo.EXPECT().FindByIDAndCompany(ctx, actor.CompanyID, tk.ID.String()).Return(tk, nil)
	deps.repo.EXPECT().Delete(ctx, actor.CompanyID, tk.ID.String()).Return(nil)
	deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	err := deps.service.Delete(ctx, actor, tk.ID.String())

	assert.NoError(t, err)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
