package reporterrors

import (
	"net/http"

	"aparthotel/internal/shared/apperror"
)

var (
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Financial report not found",
		http.StatusNotFound,
	)
	ErrReportExists = apperror.New(
		apperror.CodeInvalidInput,
		"Report already exists for this period",
		http.StatusBadRequest,
	)
	ErrPropertyGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Property group not found",
		http.StatusNotFound,
	)
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid report id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid period",
		http.StatusBadRequest,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported export format, use pdf or xlsx",
		http.StatusBadRequest,
	)
)
