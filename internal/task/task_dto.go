package task

// Actor is the caller a task operation runs for. An empty PropertyGroupID
// means the caller sees every property of the company.
type Actor struct {
	UserID          string
	CompanyID       string
	PropertyGroupID string
}

type CreateTaskRequest struct {
	UnitID     string `json:"unitId" binding:"required,uuid"`
	AssignedTo string `json:"assignedTo" binding:"required,uuid"`
	Type       string `json:"type" binding:"required,oneof=cleaning maintenance"`
	Date       string `json:"date" binding:"required"`
}

type CompleteTaskRequest struct {
	CleaningType string `json:"cleaningType" binding:"omitempty,oneof=regular deep"`
}

type UpdateStatusRequest struct {
	Status       string `json:"status" binding:"required,oneof=pending done"`
	CleaningType string `json:"cleaningType" binding:"omitempty,oneof=regular deep"`
}

type ListTasksQuery struct {
	PropertyGroupID string `form:"propertyGroupId" binding:"omitempty,uuid"`
	AssignedTo      string `form:"assignedTo" binding:"omitempty,uuid"`
	Status          string `form:"status" binding:"omitempty,oneof=pending done"`
	From            string `form:"from"`
	To              string `form:"to"`
}

type TaskResponse struct {
	ID              string  `json:"id"`
	PropertyGroupID string  `json:"propertyGroupId"`
	UnitID          string  `json:"unitId"`
	AssignedTo      string  `json:"assignedTo"`
	Type            string  `json:"type"`
	Date            string  `json:"date"`
	Status          string  `json:"status"`
	CleaningType    *string `json:"cleaningType,omitempty"`
	CompletedAt     *string `json:"completedAt,omitempty"`
	CreatedAt       string  `json:"createdAt"`
}
