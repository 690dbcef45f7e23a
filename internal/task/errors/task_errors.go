package taskerrors

import (
	"net/http"

	"aparthotel/internal/shared/apperror"
)

var (
	ErrTaskNotFound = apperror.New(
		apperror.CodeNotFound,
		"Task not found",
		http.StatusNotFound,
	)
	ErrInvalidTaskID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid task id",
		http.StatusBadRequest,
	)
	ErrUnitNotFound = apperror.New(
		apperror.CodeNotFound,
		"Unit not found",
		http.StatusNotFound,
	)
	ErrAssigneeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Assignee not found",
		http.StatusNotFound,
	)
	ErrInvalidAssignee = apperror.New(
		apperror.CodeInvalidInput,
		"Tasks can only be assigned to housekeeping staff or managers",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD or RFC3339",
		http.StatusBadRequest,
	)
	ErrTaskAlreadyDone = apperror.New(
		apperror.CodeInvalidState,
		"Task is already done",
		http.StatusBadRequest,
	)
	ErrCleaningTypeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Cleaning type is required for cleaning tasks",
		http.StatusBadRequest,
	)
	ErrInvalidCleaningType = apperror.New(
		apperror.CodeInvalidInput,
		"Cleaning type must be regular or deep",
		http.StatusBadRequest,
	)
)
