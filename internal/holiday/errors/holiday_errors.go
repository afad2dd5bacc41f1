package holidayerrors

import (
	"net/http"

	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/apperror"
)

var (
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"Holiday not found",
		http.StatusNotFound,
	)
	ErrHolidayAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A holiday already exists on that date",
		http.StatusConflict,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidHolidayID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid holiday ID",
		http.StatusBadRequest,
	)
)
