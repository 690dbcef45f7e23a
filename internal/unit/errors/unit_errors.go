package uniterrors

import (
	"net/http"

	"aparthotel/internal/shared/apperror"
)

var (
	ErrUnitNotFound = apperror.New(
		apperror.CodeNotFound,
		"Unit not found",
		http.StatusNotFound,
	)
	ErrInvalidUnitID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid unit id",
		http.StatusBadRequest,
	)
	ErrUnitNumberTaken = apperror.New(
		apperror.CodeConflict,
		"Unit number already exists in this property group",
		http.StatusConflict,
	)
	ErrPropertyGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Property group not found",
		http.StatusNotFound,
	)
)
