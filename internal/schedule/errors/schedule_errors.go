package scheduleerrors

import (
	"net/http"

	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/apperror"
)

var (
	ErrScheduleNotFound = apperror.New(
		apperror.CodeNotFound,
		"No schedule configured",
		http.StatusNotFound,
	)
	ErrInvalidWeekday = apperror.New(
		apperror.CodeInvalidInput,
		"Weekday must be between 0 (Sunday) and 6 (Saturday)",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Time must use the HH:MM 24-hour format",
		http.StatusBadRequest,
	)
	ErrStartAfterEnd = apperror.New(
		apperror.CodeInvalidInput,
		"Start time must be before end time",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
