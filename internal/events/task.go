package events

import "time"

const TaskLifecycleTopic = "aparthotel.task.lifecycle.v1"

const (
	TaskCreated   = "task.created"
	TaskCompleted = "task.completed"
	TaskReopened  = "task.reopened"
	TaskDeleted   = "task.deleted"
)

type TaskEvent struct {
	EventType    string    `json:"event_type"`
	TaskID       string    `json:"task_id"`
	CompanyID    string    `json:"company_id"`
	UnitID       string    `json:"unit_id"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	CleaningType string    `json:"cleaning_type,omitempty"`
	ActorID      string    `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
