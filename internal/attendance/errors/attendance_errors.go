package attendanceerrors

import (
	"net/http"

	"github.com/Urbancode-IT/INOUT-sub000/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrDuplicateCheckIn = apperror.New(
		apperror.CodeConflict,
		"already checked in, check out first",
		http.StatusConflict,
	)
	ErrNoOpenCheckIn = apperror.New(
		apperror.CodeInvalidState,
		"no open check-in to check out from",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date range, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrPersistence = apperror.New(
		apperror.CodeServiceUnavailable,
		"attendance store unavailable",
		http.StatusServiceUnavailable,
	)
)
