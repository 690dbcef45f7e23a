package ownererrors

import (
	"net/http"

	"aparthotel/internal/shared/apperror"
)

var (
	ErrOwnerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Owner not found",
		http.StatusNotFound,
	)
	ErrInvalidOwnerID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid owner id",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Owners can only view their own data",
		http.StatusForbidden,
	)
	ErrNoProperty = apperror.New(
		apperror.CodeNotFound,
		"Owner is not linked to a property",
		http.StatusNotFound,
	)
	ErrNoteNotFound = apperror.New(
		apperror.CodeNotFound,
		"Note not found",
		http.StatusNotFound,
	)
	ErrInvalidNoteID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid note id",
		http.StatusBadRequest,
	)
)
