package propertygrouperrors

import (
	"net/http"

	"aparthotel/internal/shared/apperror"
)

var (
	ErrPropertyGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Property group not found",
		http.StatusNotFound,
	)
	ErrInvalidPropertyGroupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid property group id",
		http.StatusBadRequest,
	)
	ErrAddressRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Address is required for hotels",
		http.StatusBadRequest,
	)
	ErrSharesMustSum100 = apperror.New(
		apperror.CodeInvalidInput,
		"Company and owner share must sum to 100",
		http.StatusBadRequest,
	)
	ErrCompanyMismatch = apperror.New(
		apperror.CodeForbidden,
		"You can only access property groups of your own company",
		http.StatusForbidden,
	)
)
