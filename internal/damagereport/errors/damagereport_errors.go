package damagereporterrors

import (
	"net/http"

	"aparthotel/internal/shared/apperror"
)

var (
	ErrDamageReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Damage report not found",
		http.StatusNotFound,
	)
	ErrInvalidDamageReportID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid damage report id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD or RFC3339",
		http.StatusBadRequest,
	)
	ErrImageTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Image must be 5 MB or smaller",
		http.StatusBadRequest,
	)
	ErrUnsupportedImage = apperror.New(
		apperror.CodeInvalidInput,
		"Image must be a JPEG or PNG",
		http.StatusBadRequest,
	)
	ErrUploadFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to save image",
		http.StatusInternalServerError,
	)
)
