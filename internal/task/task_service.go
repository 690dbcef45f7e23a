package task

import (
	"context"
	"errors"
	"time"

	"aparthotel/internal/events"
	"aparthotel/internal/messaging/kafka"
	"aparthotel/internal/shared/contextutil"
	"aparthotel/internal/shared/dateutil"
	taskerrors "aparthotel/internal/task/errors"
	"aparthotel/internal/unit"
	"aparthotel/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const aggregateType = "task"

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor Actor, req CreateTaskRequest) (TaskResponse, error)
	List(ctx context.Context, actor Actor, query ListTasksQuery) ([]TaskResponse, error)
	ListMine(ctx context.Context, actor Actor) ([]TaskResponse, error)
	GetByID(ctx context.Context, actor Actor, id string) (TaskResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	Complete(ctx context.Context, actor Actor, id string, req CompleteTaskRequest) (TaskResponse, error)
	SetStatus(ctx context.Context, actor Actor, id string, req UpdateStatusRequest) (TaskResponse, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	unitRepo   unit.Repository
	userRepo   user.Repository
	outboxRepo kafka.OutboxRepository
	rdb        *redis.Client
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	unitRepo unit.Repository,
	userRepo user.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		unitRepo:   unitRepo,
		userRepo:   userRepo,
		outboxRepo: outboxRepo,
		rdb:        rdb,
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) Create(ctx context.Context, actor Actor, req CreateTaskRequest) (TaskResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)
	l.Debug("create task requested",
		zap.String("unit_id", req.UnitID),
		zap.String("assigned_to", req.AssignedTo),
		zap.String("type", req.Type),
	)

	date, err := dateutil.Parse(req.Date)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidDate
	}

	u, err := s.unitRepo.FindByIDAndCompany(ctx, actor.CompanyID, req.UnitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrUnitNotFound
		}
		return TaskResponse{}, err
	}
	if actor.PropertyGroupID != "" && u.PropertyGroupID.String() != actor.PropertyGroupID {
		return TaskResponse{}, taskerrors.ErrUnitNotFound
	}

	assignee, err := s.userRepo.FindByID(ctx, actor.CompanyID, req.AssignedTo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrAssigneeNotFound
		}
		return TaskResponse{}, err
	}
	if !CanBeAssigned(assignee.Role) {
		l.Warn("create task rejected: assignee role",
			zap.String("assigned_to", req.AssignedTo),
			zap.String("role", assignee.Role),
		)
		return TaskResponse{}, taskerrors.ErrInvalidAssignee
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return TaskResponse{}, tx.Error
	}
	defer tx.Rollback()

	t := &Task{
		ID:              uuid.New(),
		CompanyID:       u.CompanyID,
		PropertyGroupID: u.PropertyGroupID,
		UnitID:          u.ID,
		AssignedTo:      assignee.ID,
		Type:            req.Type,
		Date:            date,
		Status:          StatusPending,
		CreatedBy:       parseUUID(actor.UserID),
		CreatedAt:       s.now().UTC(),
	}

	if err := s.repo.WithTx(tx).Create(ctx, t); err != nil {
		l.Error("create task persist failed", zap.Error(err))
		return TaskResponse{}, err
	}

	if err := s.writeEvent(ctx, tx, events.TaskCreated, actor, t); err != nil {
		return TaskResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return TaskResponse{}, err
	}

	l.Info("create task success", zap.String("task_id", t.ID.String()))
	return mapToResponse(*t), nil
}

func (s *service) List(ctx context.Context, actor Actor, query ListTasksQuery) ([]TaskResponse, error) {
	filter := Filter{
		PropertyGroupID: query.PropertyGroupID,
		AssignedTo:      query.AssignedTo,
		Status:          query.Status,
	}
	if actor.PropertyGroupID != "" {
		filter.PropertyGroupID = actor.PropertyGroupID
	}

	if query.From != "" {
		from, err := dateutil.Parse(query.From)
		if err != nil {
			return nil, taskerrors.ErrInvalidDate
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := dateutil.Parse(query.To)
		if err != nil {
			return nil, taskerrors.ErrInvalidDate
		}
		filter.To = &to
	}

	tasks, err := s.repo.FindByCompany(ctx, actor.CompanyID, filter)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(tasks), nil
}

func (s *service) ListMine(ctx context.Context, actor Actor) ([]TaskResponse, error) {
	tasks, err := s.repo.FindByCompany(ctx, actor.CompanyID, Filter{AssignedTo: actor.UserID})
	if err != nil {
		return nil, err
	}
	return mapToListResponse(tasks), nil
}

func (s *service) GetByID(ctx context.Context, actor Actor, id string) (TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	t, err := s.findScoped(ctx, s.repo, actor, id, false)
	if err != nil {
		return TaskResponse{}, err
	}
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, actor Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return taskerrors.ErrInvalidTaskID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := s.findScoped(ctx, qtx, actor, id, false)
	if err != nil {
		return err
	}

	if err := qtx.Delete(ctx, actor.CompanyID, id); err != nil {
		return mapNotFound(err)
	}

	if err := s.writeEvent(ctx, tx, events.TaskDeleted, actor, t); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	contextutil.GetLogger(ctx, s.logger).Info("delete task success", zap.String("task_id", id))
	return nil
}

// Complete is the one-way pending -> done transition. A task that is
// already done is rejected.
func (s *service) Complete(ctx context.Context, actor Actor, id string, req CompleteTaskRequest) (TaskResponse, error) {
	return s.transition(ctx, actor, id, StatusDone, req.CleaningType, "", true)
}

// SetStatus backs the weekly-view toggle. Setting the current status is a
// no-op; moving to done defaults cleaning tasks to a regular clean.
func (s *service) SetStatus(ctx context.Context, actor Actor, id string, req UpdateStatusRequest) (TaskResponse, error) {
	return s.transition(ctx, actor, id, req.Status, req.CleaningType, CleaningRegular, false)
}

func (s *service) transition(
	ctx context.Context,
	actor Actor,
	id, status, cleaningType, fallback string,
	strict bool,
) (TaskResponse, error) {
	l := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return TaskResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := s.findScoped(ctx, qtx, actor, id, true)
	if err != nil {
		return TaskResponse{}, err
	}

	if t.Status == status {
		if strict {
			l.Warn("complete task rejected: already done", zap.String("task_id", id))
			return TaskResponse{}, taskerrors.ErrTaskAlreadyDone
		}
		return mapToResponse(*t), nil
	}

	eventType := events.TaskReopened
	if status == StatusDone {
		ct, err := ResolveCleaningType(t.Type, cleaningType, fallback)
		if err != nil {
			return TaskResponse{}, err
		}
		now := s.now().UTC()
		t.Status = StatusDone
		t.CleaningType = ct
		t.CompletedAt = &now
		eventType = events.TaskCompleted
	} else {
		t.Status = StatusPending
		t.CleaningType = nil
		t.CompletedAt = nil
	}

	if err := qtx.UpdateStatus(ctx, t); err != nil {
		l.Error("update task status failed", zap.String("task_id", id), zap.Error(err))
		return TaskResponse{}, mapNotFound(err)
	}

	if t.Status == StatusDone {
		if err := s.stampUnit(ctx, tx, t); err != nil {
			l.Error("update unit after task completion failed",
				zap.String("task_id", id),
				zap.String("unit_id", t.UnitID.String()),
				zap.Error(err),
			)
			return TaskResponse{}, err
		}
	}

	if err := s.writeEvent(ctx, tx, eventType, actor, t); err != nil {
		return TaskResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		return TaskResponse{}, err
	}

	if t.Status == StatusDone {
		if err := unit.InvalidateCache(ctx, s.rdb, t.CompanyID.String()); err != nil {
			l.Error("failed to invalidate unit cache", zap.Error(err))
		}
	}

	l.Info("task status changed",
		zap.String("task_id", id),
		zap.String("status", t.Status),
	)
	return mapToResponse(*t), nil
}

// stampUnit copies the task date onto the unit it was done for.
func (s *service) stampUnit(ctx context.Context, tx *gorm.DB, t *Task) error {
	urepo := s.unitRepo.WithTx(tx)

	var err error
	if t.Type == TypeCleaning {
		err = urepo.SetLastCleaned(ctx, t.UnitID.String(), t.Date)
	} else {
		err = urepo.SetLastMaintenance(ctx, t.UnitID.String(), t.Date)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrUnitNotFound
	}
	return err
}

func (s *service) findScoped(ctx context.Context, repo Repository, actor Actor, id string, lock bool) (*Task, error) {
	find := repo.FindByIDAndCompany
	if lock {
		find = repo.LockByIDAndCompany
	}

	t, err := find(ctx, actor.CompanyID, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if actor.PropertyGroupID != "" && t.PropertyGroupID.String() != actor.PropertyGroupID {
		return nil, taskerrors.ErrTaskNotFound
	}
	return t, nil
}

func (s *service) writeEvent(ctx context.Context, tx *gorm.DB, eventType string, actor Actor, t *Task) error {
	payload := events.TaskEvent{
		EventType:  eventType,
		TaskID:     t.ID.String(),
		CompanyID:  t.CompanyID.String(),
		UnitID:     t.UnitID.String(),
		Type:       t.Type,
		Status:     t.Status,
		ActorID:    actor.UserID,
		OccurredAt: s.now().UTC(),
	}
	if t.CleaningType != nil {
		payload.CleaningType = *t.CleaningType
	}

	event, err := kafka.NewOutboxEvent(ctx, aggregateType, t.ID.String(), eventType, events.TaskLifecycleTopic, payload)
	if err != nil {
		return err
	}

	if err := s.outboxRepo.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("write task outbox event failed",
			zap.String("task_id", t.ID.String()),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func parseUUID(v string) uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return taskerrors.ErrTaskNotFound
	}
	return err
}

func mapToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:              t.ID.String(),
		PropertyGroupID: t.PropertyGroupID.String(),
		UnitID:          t.UnitID.String(),
		AssignedTo:      t.AssignedTo.String(),
		Type:            t.Type,
		Date:            t.Date.Format(dateutil.DateLayout),
		Status:          t.Status,
		CleaningType:    t.CleaningType,
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
	if t.CompletedAt != nil {
		v := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &v
	}
	return resp
}

func mapToListResponse(tasks []Task) []TaskResponse {
	resp := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = mapToResponse(t)
	}
	return resp
}
