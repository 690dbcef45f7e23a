package bookingerrors

import (
	"net/http"

	"aparthotel/internal/shared/apperror"
)

var (
	ErrBookingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Booking not found",
		http.StatusNotFound,
	)
	ErrInvalidBookingID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid booking id",
		http.StatusBadRequest,
	)
	ErrInvalidUnitID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid unit id",
		http.StatusBadRequest,
	)
	ErrInvalidPropertyGroupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid property group id",
		http.StatusBadRequest,
	)
	ErrUnitNotFound = apperror.New(
		apperror.CodeNotFound,
		"Unit not found",
		http.StatusNotFound,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD or RFC3339",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Check-out must be after check-in",
		http.StatusBadRequest,
	)
	ErrCheckInInPast = apperror.New(
		apperror.CodeInvalidInput,
		"Check-in date cannot be in the past",
		http.StatusBadRequest,
	)
	ErrCapacityExceeded = apperror.New(
		apperror.CodeInvalidInput,
		"Number of guests exceeds unit capacity",
		http.StatusBadRequest,
	)
	ErrUnitAlreadyBooked = apperror.New(
		apperror.CodeConflict,
		"Unit is already booked for these dates",
		http.StatusConflict,
	)
	ErrEmptyNote = apperror.New(
		apperror.CodeInvalidInput,
		"Note content cannot be empty",
		http.StatusBadRequest,
	)
	ErrNoteNotFound = apperror.New(
		apperror.CodeNotFound,
		"Note not found",
		http.StatusNotFound,
	)
	ErrPropertyForbidden = apperror.New(
		apperror.CodeForbidden,
		"You can only access bookings of your own property",
		http.StatusForbidden,
	)
	ErrCompanyRequired = apperror.New(
		apperror.CodeInvalidInput,
		"companyId is required",
		http.StatusBadRequest,
	)
)
